package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	domainSubmission "github.com/NeuralTrust/FormGuard/pkg/domain/submission"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=submission_recorder_mock.go --case=underscore --with-expecter
type Recorder interface {
	Record(ctx context.Context, urlSegment, sessionID string, data map[string]interface{}) (*domainSubmission.SubmittedForm, error)
}

type RecorderConfig struct {
	// AllowUnverified stores a submission whose verification fields have no
	// response for the session instead of rejecting it. Those fields are
	// stored empty and listed as unverified.
	AllowUnverified bool
}

type recorder struct {
	logger      *logrus.Logger
	forms       form.Repository
	fields      domainField.Repository
	submissions domainSubmission.Repository
	verifiers   verification.Factory
	cfg         RecorderConfig
}

func NewRecorder(
	logger *logrus.Logger,
	forms form.Repository,
	fields domainField.Repository,
	submissions domainSubmission.Repository,
	verifiers verification.Factory,
	cfg RecorderConfig,
) Recorder {
	return &recorder{
		logger:      logger,
		forms:       forms,
		fields:      fields,
		submissions: submissions,
		verifiers:   verifiers,
		cfg:         cfg,
	}
}

// Record stores one value per field of the form. A verification field with no
// response recorded for the session rejects the submission with
// verification.ErrVerificationFailed unless AllowUnverified is set. Once
// stored, every consumed verification is cleared from the session.
func (r *recorder) Record(
	ctx context.Context,
	urlSegment, sessionID string,
	data map[string]interface{},
) (*domainSubmission.SubmittedForm, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}
	parent, err := r.forms.GetByURLSegment(ctx, urlSegment)
	if err != nil {
		return nil, err
	}
	fields, err := r.fields.ListByForm(ctx, parent.ID)
	if err != nil {
		return nil, err
	}

	env := domainField.Env{
		Form:      parent,
		SessionID: sessionID,
		Verifiers: r.verifiers,
	}
	submitted := &domainSubmission.SubmittedForm{
		FormID:    parent.ID,
		SessionID: sessionID,
		Values:    make([]*domainSubmission.SubmittedFormField, 0, len(fields)),
	}
	for _, f := range fields {
		base := f.Base()
		value, err := f.ValueFromData(ctx, env, data)
		if err != nil {
			if !errors.Is(err, verification.ErrResponseNotFound) {
				return nil, err
			}
			if !r.cfg.AllowUnverified {
				prometheus.SubmissionsTotal.WithLabelValues("rejected").Inc()
				r.logger.WithFields(logrus.Fields{
					"form_id": parent.ID,
					"field":   base.Name,
				}).Info("submission rejected, no verification response for session")
				return nil, fmt.Errorf("%w: %w", verification.ErrVerificationFailed, err)
			}
			r.logger.WithFields(logrus.Fields{
				"form_id": parent.ID,
				"field":   base.Name,
			}).Warn("no verification response for session, storing empty value")
			submitted.Unverified = append(submitted.Unverified, base.Name)
			value = ""
		}
		submitted.Values = append(submitted.Values, &domainSubmission.SubmittedFormField{
			Name:  base.Name,
			Title: base.Title,
			Value: value,
		})
	}

	if err := r.submissions.Create(ctx, submitted); err != nil {
		prometheus.SubmissionsTotal.WithLabelValues("error").Inc()
		r.logger.WithError(err).WithField("form_id", parent.ID).Error("failed to record submission")
		return nil, err
	}

	r.consume(ctx, env, fields, submitted.Unverified)

	status := "verified"
	if len(submitted.Unverified) > 0 {
		status = "unverified"
	}
	prometheus.SubmissionsTotal.WithLabelValues(status).Inc()
	return submitted, nil
}

// consume clears the verification responses backing a stored submission. A
// failure leaves the response until its TTL expires, so it is only logged.
func (r *recorder) consume(ctx context.Context, env domainField.Env, fields []domainField.Editable, unverified []string) {
	skip := make(map[string]struct{}, len(unverified))
	for _, name := range unverified {
		skip[name] = struct{}{}
	}
	for _, f := range fields {
		c, ok := f.(domainField.Consumable)
		if !ok {
			continue
		}
		if _, ok := skip[f.Base().Name]; ok {
			continue
		}
		if err := c.ConsumeVerification(ctx, env); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"form_id": env.Form.ID,
				"field":   f.Base().Name,
			}).Error("failed to clear verification response")
		}
	}
}
