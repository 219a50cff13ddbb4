package recaptcha

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const (
	DefaultTemplate       = "RecaptchaV3Field"
	DefaultHolderTemplate = "RecaptchaV3Field_holder"
	DefaultThreshold      = 0.5
)

// Field is the per-request verification field handed out by Factory.
type Field struct {
	sessionID string
	name      string
	title     string

	threshold      float64
	action         string
	actionLocked   bool
	template       string
	holderTemplate string

	client           Client
	store            ResponseStore
	allowedHostnames map[string]struct{}
	responseTTL      time.Duration
	logger           *logrus.Logger
}

var _ verification.Field = (*Field)(nil)

func (f *Field) Name() string  { return f.name }
func (f *Field) Title() string { return f.title }

// Score returns the minimum provider score, in [0,1], a response needs to pass.
func (f *Field) Score() float64 { return f.threshold }

func (f *Field) SetScore(threshold float64) {
	switch {
	case threshold < 0:
		threshold = 0
	case threshold > 1:
		threshold = 1
	}
	f.threshold = threshold
}

func (f *Field) ExecuteAction() string { return f.action }
func (f *Field) ActionLocked() bool    { return f.actionLocked }

func (f *Field) SetExecuteAction(action string, lock bool) {
	f.action = verification.FormatAction(action)
	f.actionLocked = lock
}

func (f *Field) Template() string                   { return f.template }
func (f *Field) SetTemplate(name string)            { f.template = name }
func (f *Field) FieldHolderTemplate() string        { return f.holderTemplate }
func (f *Field) SetFieldHolderTemplate(name string) { f.holderTemplate = name }

// Verify checks token with the provider and records a passing response for
// the session. Rejections wrap verification.ErrVerificationFailed.
func (f *Field) Verify(ctx context.Context, token, remoteIP string) (verification.Response, error) {
	if token == "" {
		prometheus.VerificationsTotal.WithLabelValues(prometheus.ResultRejected).Inc()
		return nil, fmt.Errorf("%w: missing token", verification.ErrVerificationFailed)
	}

	response, err := f.client.Verify(ctx, token, remoteIP)
	if err != nil {
		prometheus.VerificationsTotal.WithLabelValues(prometheus.ResultError).Inc()
		return nil, err
	}

	if err := f.check(response); err != nil {
		prometheus.VerificationsTotal.WithLabelValues(prometheus.ResultRejected).Inc()
		f.logger.WithFields(logrus.Fields{
			"field":   f.name,
			"action":  f.action,
			"session": f.sessionID,
		}).WithError(err).Info("verification rejected")
		return response, err
	}

	if err := f.store.Save(ctx, f.sessionID, f.name, response, f.responseTTL); err != nil {
		prometheus.VerificationsTotal.WithLabelValues(prometheus.ResultError).Inc()
		return nil, fmt.Errorf("failed to store verification response: %w", err)
	}
	prometheus.VerificationsTotal.WithLabelValues(prometheus.ResultPassed).Inc()
	return response, nil
}

func (f *Field) check(response verification.Response) error {
	if !cast.ToBool(response[KeySuccess]) {
		return fmt.Errorf("%w: provider reported failure %v", verification.ErrVerificationFailed, response[KeyErrorCodes])
	}

	score := cast.ToFloat64(response[KeyScore])
	prometheus.VerificationScore.Observe(score)
	if score < f.threshold {
		return fmt.Errorf("%w: score %.2f below threshold %.2f", verification.ErrVerificationFailed, score, f.threshold)
	}

	if f.actionLocked {
		if got := cast.ToString(response[KeyAction]); got != f.action {
			return fmt.Errorf("%w: action %q does not match %q", verification.ErrVerificationFailed, got, f.action)
		}
	}

	if len(f.allowedHostnames) > 0 {
		host := strings.ToLower(cast.ToString(response[KeyHostname]))
		if _, ok := f.allowedHostnames[host]; !ok {
			return fmt.Errorf("%w: hostname %q not allowed", verification.ErrVerificationFailed, host)
		}
	}
	return nil
}

// ResponseFromSession returns the response recorded by the last passing
// Verify of this session, or verification.ErrResponseNotFound.
func (f *Field) ResponseFromSession(ctx context.Context) (verification.Response, error) {
	if f.sessionID == "" {
		return nil, verification.ErrResponseNotFound
	}
	return f.store.Get(ctx, f.sessionID, f.name)
}

func (f *Field) ClearResponseFromSession(ctx context.Context) error {
	if f.sessionID == "" {
		return nil
	}
	if err := f.store.Delete(ctx, f.sessionID, f.name); err != nil {
		return fmt.Errorf("failed to clear verification response: %w", err)
	}
	return nil
}
