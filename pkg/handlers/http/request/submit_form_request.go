package request

type SubmitFormRequest struct {
	Data map[string]interface{} `json:"data"`
}
