package field

import (
	"context"

	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
)

// Runtime is the transient field handed to the form renderer.
type Runtime interface {
	Name() string
	Title() string
}

// Extension lets callers adjust a runtime field before it is returned.
type Extension interface {
	UpdateFormField(ctx context.Context, f Runtime)
}

// ExtensionFunc adapts a plain function to Extension.
type ExtensionFunc func(ctx context.Context, f Runtime)

func (fn ExtensionFunc) UpdateFormField(ctx context.Context, f Runtime) {
	fn(ctx, f)
}

// Env carries the request scoped collaborators a field needs to build its
// runtime counterpart.
type Env struct {
	Form       *form.Form
	SessionID  string
	Verifiers  verification.Factory
	Extensions []Extension
}

// Editable is the capability every field type implements.
type Editable interface {
	FieldType() string
	Base() *EditableField
	// Apply copies raw admin settings onto the field. Invalid values are
	// corrected rather than rejected; only a malformed payload errors.
	Apply(settings map[string]interface{}) error
	CMSFields(tr i18n.Translator) []Control
	OnBeforeWrite(tr i18n.Translator)
	OnAfterWrite(ctx context.Context, rules DisplayRuleRepository) error
	FormField(ctx context.Context, env Env) (Runtime, error)
	ValueFromData(ctx context.Context, env Env, data map[string]interface{}) (string, error)
}

// Consumable is implemented by fields whose value is a one-time verification.
// ConsumeVerification is called once the submission holding that value has
// been stored.
type Consumable interface {
	ConsumeVerification(ctx context.Context, env Env) error
}
