package response

import domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"

type ListFieldTypesResponse struct {
	FieldTypes []domainField.Definition `json:"field_types"`
	Count      int                      `json:"count"`
}
