package field

import (
	"context"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/google/uuid"
)

// FindInForm loads a field and reports it as missing when it belongs to
// another form.
func FindInForm(ctx context.Context, fields domainField.Repository, formID, fieldID uuid.UUID) (domainField.Editable, error) {
	entity, err := fields.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if entity.Base().FormID != formID {
		return nil, domain.NewNotFoundError("field", fieldID)
	}
	return entity, nil
}
