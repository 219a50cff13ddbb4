package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotVerifiable = errors.New("field does not support verification")

//go:generate mockery --name=RuntimeBuilder --dir=. --output=./mocks --filename=runtime_builder_mock.go --case=underscore --with-expecter
type RuntimeBuilder interface {
	Build(ctx context.Context, urlSegment string, fieldID uuid.UUID, sessionID string) (verification.Field, error)
	Verify(ctx context.Context, urlSegment string, fieldID uuid.UUID, sessionID, token, remoteIP string) (verification.Response, error)
}

type runtimeBuilder struct {
	logger     *logrus.Logger
	forms      form.Repository
	fields     domainField.Repository
	verifiers  verification.Factory
	extensions []domainField.Extension
}

func NewRuntimeBuilder(
	logger *logrus.Logger,
	forms form.Repository,
	fields domainField.Repository,
	verifiers verification.Factory,
	extensions ...domainField.Extension,
) RuntimeBuilder {
	return &runtimeBuilder{
		logger:     logger,
		forms:      forms,
		fields:     fields,
		verifiers:  verifiers,
		extensions: extensions,
	}
}

func (b *runtimeBuilder) Build(
	ctx context.Context,
	urlSegment string,
	fieldID uuid.UUID,
	sessionID string,
) (verification.Field, error) {
	parent, err := b.forms.GetByURLSegment(ctx, urlSegment)
	if err != nil {
		return nil, err
	}
	entity, err := FindInForm(ctx, b.fields, parent.ID, fieldID)
	if err != nil {
		return nil, err
	}

	runtime, err := entity.FormField(ctx, domainField.Env{
		Form:       parent,
		SessionID:  sessionID,
		Verifiers:  b.verifiers,
		Extensions: b.extensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build runtime field: %w", err)
	}
	vf, ok := runtime.(verification.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotVerifiable, entity.FieldType())
	}
	return vf, nil
}

func (b *runtimeBuilder) Verify(
	ctx context.Context,
	urlSegment string,
	fieldID uuid.UUID,
	sessionID, token, remoteIP string,
) (verification.Response, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}
	vf, err := b.Build(ctx, urlSegment, fieldID, sessionID)
	if err != nil {
		return nil, err
	}
	response, err := vf.Verify(ctx, token, remoteIP)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"field":  vf.Name(),
			"action": vf.ExecuteAction(),
		}).WithError(err).Warn("token verification failed")
		return nil, err
	}
	return response.WithoutToken(), nil
}
