package request

import "fmt"

// FieldSettingsRequest is the raw settings payload of a field. Values are
// kept untyped so that each field type can coerce them itself.
type FieldSettingsRequest map[string]interface{}

// Validate rejects keys that identify the field rather than configure it.
func (r FieldSettingsRequest) Validate() error {
	for _, key := range []string{"id", "form_id"} {
		if _, ok := r[key]; ok {
			return fmt.Errorf("%s cannot be set", key)
		}
	}
	return nil
}
