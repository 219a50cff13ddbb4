package field

import (
	"context"
	"fmt"

	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Saver --dir=. --output=./mocks --filename=field_saver_mock.go --case=underscore --with-expecter
type Saver interface {
	Create(ctx context.Context, formID uuid.UUID, fieldType string, settings map[string]interface{}) (domainField.Editable, error)
	Update(ctx context.Context, formID, fieldID uuid.UUID, settings map[string]interface{}) (domainField.Editable, error)
}

type saver struct {
	logger     *logrus.Logger
	registry   *domainField.Registry
	forms      form.Repository
	fields     domainField.Repository
	rules      domainField.DisplayRuleRepository
	translator i18n.Translator
}

func NewSaver(
	logger *logrus.Logger,
	registry *domainField.Registry,
	forms form.Repository,
	fields domainField.Repository,
	rules domainField.DisplayRuleRepository,
	translator i18n.Translator,
) Saver {
	return &saver{
		logger:     logger,
		registry:   registry,
		forms:      forms,
		fields:     fields,
		rules:      rules,
		translator: i18n.OrNoop(translator),
	}
}

func (s *saver) Create(
	ctx context.Context,
	formID uuid.UUID,
	fieldType string,
	settings map[string]interface{},
) (domainField.Editable, error) {
	if _, err := s.forms.Get(ctx, formID); err != nil {
		return nil, err
	}
	entity, err := s.registry.New(fieldType)
	if err != nil {
		return nil, err
	}
	entity.Base().FormID = formID
	return s.write(ctx, entity, settings)
}

func (s *saver) Update(
	ctx context.Context,
	formID, fieldID uuid.UUID,
	settings map[string]interface{},
) (domainField.Editable, error) {
	entity, err := FindInForm(ctx, s.fields, formID, fieldID)
	if err != nil {
		return nil, err
	}
	return s.write(ctx, entity, settings)
}

func (s *saver) write(ctx context.Context, entity domainField.Editable, settings map[string]interface{}) (domainField.Editable, error) {
	if err := entity.Apply(settings); err != nil {
		return nil, err
	}
	entity.OnBeforeWrite(s.translator)

	if err := s.fields.Save(ctx, entity); err != nil {
		s.logger.WithError(err).WithField("field_type", entity.FieldType()).Error("failed to save field")
		return nil, err
	}
	if err := entity.OnAfterWrite(ctx, s.rules); err != nil {
		s.logger.WithError(err).WithField("field_id", entity.Base().ID).Error("field after-write hook failed")
		return nil, fmt.Errorf("field saved but post-save cleanup failed: %w", err)
	}

	prometheus.FieldSavesTotal.WithLabelValues(entity.FieldType()).Inc()
	s.logger.WithFields(logrus.Fields{
		"field_id":   entity.Base().ID,
		"field_type": entity.FieldType(),
		"form_id":    entity.Base().FormID,
	}).Info("field saved")
	return entity, nil
}
