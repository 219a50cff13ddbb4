package request

import (
	"fmt"
	"strings"
)

type VerifyTokenRequest struct {
	Token string `json:"token"` // @required
}

func (r *VerifyTokenRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return fmt.Errorf("token is required")
	}
	return nil
}
