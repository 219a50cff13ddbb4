package response

import "github.com/NeuralTrust/FormGuard/pkg/domain/verification"

// RuntimeFieldResponse is what the browser needs to render the widget and
// request a token.
type RuntimeFieldResponse struct {
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	SiteKey        string  `json:"site_key"`
	Threshold      float64 `json:"threshold"`
	Action         string  `json:"action"`
	ActionLocked   bool    `json:"action_locked"`
	Template       string  `json:"template"`
	HolderTemplate string  `json:"holder_template"`
}

func NewRuntimeFieldResponse(f verification.Field, siteKey string) RuntimeFieldResponse {
	return RuntimeFieldResponse{
		Name:           f.Name(),
		Title:          f.Title(),
		SiteKey:        siteKey,
		Threshold:      f.Score(),
		Action:         f.ExecuteAction(),
		ActionLocked:   f.ActionLocked(),
		Template:       f.Template(),
		HolderTemplate: f.FieldHolderTemplate(),
	}
}
