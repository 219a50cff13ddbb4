package request

import (
	"fmt"
	"strings"
)

type CreateFormRequest struct {
	Title      string `json:"title"` // @required
	URLSegment string `json:"url_segment"`
}

func (r *CreateFormRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
