package field

import (
	"context"

	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
	"github.com/google/uuid"
)

// Description is what the admin UI needs to edit a field.
type Description struct {
	Definition domainField.Definition `json:"definition"`
	Field      domainField.Editable   `json:"field"`
	Controls   []domainField.Control  `json:"controls"`
}

//go:generate mockery --name=Describer --dir=. --output=./mocks --filename=field_describer_mock.go --case=underscore --with-expecter
type Describer interface {
	Describe(ctx context.Context, formID, fieldID uuid.UUID) (*Description, error)
}

type describer struct {
	registry   *domainField.Registry
	fields     domainField.Repository
	translator i18n.Translator
}

func NewDescriber(registry *domainField.Registry, fields domainField.Repository, translator i18n.Translator) Describer {
	return &describer{
		registry:   registry,
		fields:     fields,
		translator: i18n.OrNoop(translator),
	}
}

func (d *describer) Describe(ctx context.Context, formID, fieldID uuid.UUID) (*Description, error) {
	entity, err := FindInForm(ctx, d.fields, formID, fieldID)
	if err != nil {
		return nil, err
	}
	def, _ := d.registry.Definition(entity.FieldType())
	return &Description{
		Definition: def,
		Field:      entity,
		Controls:   entity.CMSFields(d.translator),
	}, nil
}
