// Package recaptchav3 provides the reCAPTCHA v3 editable form field: an
// invisible field whose submitted value is the provider's verdict for the
// visitor's session.
package recaptchav3

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
	"github.com/mitchellh/mapstructure"
)

const (
	FieldType      = "recaptcha_v3"
	DefaultScore   = 70
	DefaultAction  = "submit"
	Template       = "EditableRecaptchaV3Field"
	HolderTemplate = Template + "_holder"
	namePrefix     = "EditableRecaptchaV3Field"
	scoreKey       = "score"
)

var ErrNoVerifier = errors.New("no verification provider configured")

// Field stores the score threshold, as a bot likelihood percentage, and the
// analytics action of a reCAPTCHA v3 field.
type Field struct {
	field.EditableField `gorm:"embedded"`
	Score               int    `json:"score" gorm:"not null"`
	Action              string `json:"action" gorm:"type:varchar(255);not null;default:'submit'"`

	rawScore    interface{}
	hasRawScore bool
}

func (f *Field) TableName() string {
	return "editable_recaptcha_v3_fields"
}

func New() *Field {
	return &Field{Score: DefaultScore, Action: DefaultAction}
}

// Settings is the admin payload accepted by Apply. The score is not decoded
// here: it goes to SetRawScore untouched so any candidate can be corrected.
type Settings struct {
	field.BaseSettings `mapstructure:",squash"`
	Action             string `mapstructure:"action"`
}

var (
	_ field.Editable   = (*Field)(nil)
	_ field.Consumable = (*Field)(nil)
)

func (f *Field) FieldType() string {
	return FieldType
}

// Apply overlays settings onto the field. Keys missing from settings keep
// their current value. The score is kept raw until OnBeforeWrite.
func (f *Field) Apply(settings map[string]interface{}) error {
	s := Settings{
		BaseSettings: f.EditableField.Settings(),
		Action:       f.Action,
	}
	if err := mapstructure.WeakDecode(settings, &s); err != nil {
		return fmt.Errorf("invalid %s settings: %w", FieldType, err)
	}
	f.ApplyBase(s.BaseSettings)
	f.Action = s.Action
	if raw, ok := settings[scoreKey]; ok {
		f.SetRawScore(raw)
	}
	return nil
}

// SetRawScore records an unvalidated score candidate for the next write.
func (f *Field) SetRawScore(v interface{}) {
	f.rawScore = v
	f.hasRawScore = true
}

// OnBeforeWrite normalizes the field. It never fails: bad input is replaced
// by defaults.
func (f *Field) OnBeforeWrite(tr i18n.Translator) {
	tr = i18n.OrNoop(tr)
	f.PrepareWrite(namePrefix)

	if f.hasRawScore {
		f.Score = NormalizeScore(f.rawScore)
		f.rawScore, f.hasRawScore = nil, false
	} else {
		f.Score = clampScore(f.Score)
	}

	f.Action = NormalizeAction(f.Action)

	// the field is invisible, frontend validators must never block on it
	f.Required = false
	f.Placeholder = ""

	if f.Title == "" {
		f.Title = tr.T("FormGuard.RECAPTCHAv3", "Recaptcha v3")
	}
}

// OnAfterWrite drops any display rule attached to the field, it is always shown.
func (f *Field) OnAfterWrite(ctx context.Context, rules field.DisplayRuleRepository) error {
	if rules == nil {
		return nil
	}
	if err := rules.DeleteByField(ctx, f.ID); err != nil {
		return fmt.Errorf("failed to clear display rules of field %s: %w", f.ID, err)
	}
	return nil
}

func (f *Field) FormField(ctx context.Context, env field.Env) (field.Runtime, error) {
	return f.runtimeField(ctx, env)
}

func (f *Field) runtimeField(ctx context.Context, env field.Env) (verification.Field, error) {
	if env.Verifiers == nil {
		return nil, ErrNoVerifier
	}
	segment := ""
	if env.Form != nil {
		segment = env.Form.URLSegment
	}

	rf := env.Verifiers.NewField(env.SessionID, f.Name, f.Title)
	rf.SetScore(Threshold(f.Score))
	rf.SetExecuteAction(segment+"/"+f.Action, true)
	rf.SetFieldHolderTemplate(HolderTemplate)
	rf.SetTemplate(Template)

	for _, ext := range env.Extensions {
		ext.UpdateFormField(ctx, rf)
	}
	return rf, nil
}

// ValueFromData returns the verification response recorded for the session
// as a JSON object, without the token. data is not consulted: the value comes
// from the verifier, not from the submitted form.
func (f *Field) ValueFromData(ctx context.Context, env field.Env, _ map[string]interface{}) (string, error) {
	rf, err := f.runtimeField(ctx, env)
	if err != nil {
		return "", err
	}
	response, err := rf.ResponseFromSession(ctx)
	if err != nil {
		return "", fmt.Errorf("field %s: %w", f.Name, err)
	}
	value, err := json.Marshal(response.WithoutToken())
	if err != nil {
		return "", fmt.Errorf("field %s: failed to encode response: %w", f.Name, err)
	}
	return string(value), nil
}

// ConsumeVerification clears the session response read by ValueFromData so a
// single passing token cannot back a second submission.
func (f *Field) ConsumeVerification(ctx context.Context, env field.Env) error {
	rf, err := f.runtimeField(ctx, env)
	if err != nil {
		return err
	}
	if err := rf.ClearResponseFromSession(ctx); err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	return nil
}

func Register(registry *field.Registry) error {
	return registry.Register(field.Definition{
		Type:        FieldType,
		Singular:    "reCAPTCHA v3 field",
		Plural:      "reCAPTCHA v3 fields",
		Description: "Invisible reCAPTCHA v3 verification for a user defined form",
	}, func() field.Editable { return New() })
}
