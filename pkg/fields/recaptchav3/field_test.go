package recaptchav3

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	fieldmocks "github.com/NeuralTrust/FormGuard/pkg/domain/field/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	verificationmocks "github.com/NeuralTrust/FormGuard/pkg/domain/verification/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapTranslator map[string]string

func (m mapTranslator) T(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func save(t *testing.T, settings map[string]interface{}) *Field {
	t.Helper()
	f := New()
	require.NoError(t, f.Apply(settings))
	f.OnBeforeWrite(nil)
	return f
}

func TestNormalizeScore_NonNumeric(t *testing.T) {
	inputs := []interface{}{"abc", "", "  ", "70abc", nil, true, false, []int{1}, struct{}{}, "NaN", "Inf"}
	for _, in := range inputs {
		assert.Equal(t, DefaultScore, NormalizeScore(in), "input %#v", in)
	}
}

func TestNormalizeScore_Numeric(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int
	}{
		{0, 0},
		{55, 55},
		{100, 100},
		{150, 100},
		{-5, 0},
		{int64(42), 42},
		{uint8(90), 90},
		{42.4, 42},
		{42.6, 43},
		{"85", 85},
		{" 30 ", 30},
		{"42.6", 43},
		{"1e3", 100},
		{"-12", 0},
		{json.Number("65"), 65},
	}
	for _, tt := range tests {
		got := NormalizeScore(tt.in)
		assert.Equal(t, tt.want, got, "input %#v", tt.in)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "submit", NormalizeAction(""))
	assert.Equal(t, "signup", NormalizeAction("Sign-Up!"))
	assert.Equal(t, "a/b1", NormalizeAction("a/b 1"))
	assert.Equal(t, "submit", NormalizeAction("%%%"))

	for _, in := range []string{"Hello World", "ÜBER/über", "x_y.z", "<script>"} {
		assert.Regexp(t, `^[a-z0-9/]+$`, NormalizeAction(in))
	}
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 0.70, Threshold(70))
	assert.Equal(t, 1.00, Threshold(100))
	assert.Equal(t, 0.00, Threshold(0))
	assert.Equal(t, 0.55, Threshold(55))
	assert.Equal(t, 0.07, Threshold(7))
}

func TestOnBeforeWrite_InvalidScoreEmptyAction(t *testing.T) {
	f := save(t, map[string]interface{}{"score": "abc", "action": ""})

	assert.Equal(t, 70, f.Score)
	assert.Equal(t, "submit", f.Action)
	assert.False(t, f.Required)
}

func TestApply_ScoreCandidatesAreCorrectedNotRejected(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want int
	}{
		{"non-numeric string", "abc", 70},
		{"fractional string", "42.6", 43},
		{"padded string", " 85 ", 85},
		{"fractional number", 42.6, 43},
		{"json float", float64(55), 55},
		{"bool", true, 70},
		{"nil", nil, 70},
		{"slice", []interface{}{1}, 70},
		{"above range string", "250", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			require.NoError(t, f.Apply(map[string]interface{}{"score": tt.raw}))
			f.OnBeforeWrite(nil)
			assert.Equal(t, tt.want, f.Score)
		})
	}
}

func TestOnBeforeWrite_ClampsScore(t *testing.T) {
	assert.Equal(t, 100, save(t, map[string]interface{}{"score": 150}).Score)
	assert.Equal(t, 0, save(t, map[string]interface{}{"score": -5}).Score)
}

func TestOnBeforeWrite_ForcesRequiredAndPlaceholder(t *testing.T) {
	f := save(t, map[string]interface{}{
		"required":    true,
		"placeholder": "type here",
		"score":       40,
	})

	assert.False(t, f.Required)
	assert.Empty(t, f.Placeholder)
	assert.Equal(t, 40, f.Score)
}

func TestOnBeforeWrite_DefaultsTitleAndName(t *testing.T) {
	f := New()
	f.OnBeforeWrite(mapTranslator{"FormGuard.RECAPTCHAv3": "Vérification"})

	assert.Equal(t, "Vérification", f.Title)
	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Regexp(t, `^EditableRecaptchaV3Field_[0-9a-f]{12}$`, f.Name)

	f2 := save(t, map[string]interface{}{"title": "  Are you human?  "})
	assert.Equal(t, "Are you human?", f2.Title)
}

func TestOnBeforeWrite_KeepsStoredValuesWhenNoCandidate(t *testing.T) {
	f := New()
	f.Score = 300
	f.Action = "Checkout Now"
	f.OnBeforeWrite(nil)

	assert.Equal(t, 100, f.Score)
	assert.Equal(t, "checkoutnow", f.Action)
}

func TestApply_OverlaysExistingValues(t *testing.T) {
	f := save(t, map[string]interface{}{"score": "40", "action": "newsletter", "title": "Check", "sort": "3"})
	name := f.Name

	require.NoError(t, f.Apply(map[string]interface{}{"title": "Check again"}))
	f.OnBeforeWrite(nil)

	assert.Equal(t, 40, f.Score)
	assert.Equal(t, "newsletter", f.Action)
	assert.Equal(t, "Check again", f.Title)
	assert.Equal(t, 3, f.Sort)
	assert.Equal(t, name, f.Name)
}

func TestApply_MalformedPayload(t *testing.T) {
	f := New()
	err := f.Apply(map[string]interface{}{"sort": map[string]interface{}{"nested": 1}})
	assert.Error(t, err)
}

func TestOnAfterWrite_ClearsDisplayRules(t *testing.T) {
	f := save(t, nil)
	rules := new(fieldmocks.DisplayRuleRepository)
	rules.On("DeleteByField", mock.Anything, f.ID).Return(nil).Once()

	require.NoError(t, f.OnAfterWrite(context.Background(), rules))
	rules.AssertExpectations(t)
}

func TestOnAfterWrite_PropagatesError(t *testing.T) {
	f := save(t, nil)
	rules := new(fieldmocks.DisplayRuleRepository)
	rules.On("DeleteByField", mock.Anything, f.ID).Return(errors.New("db down")).Once()

	err := f.OnAfterWrite(context.Background(), rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCMSFields(t *testing.T) {
	f := save(t, map[string]interface{}{"score": 60, "action": "contact"})
	controls := f.CMSFields(nil)

	names := make([]string, 0, len(controls))
	for _, c := range controls {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		field.ControlName,
		field.ControlTitle,
		field.ControlCustomErrorMessage,
		ControlHeader,
		ControlScore,
		ControlAction,
	}, names)

	for _, hidden := range []string{
		field.ControlExtraClass, field.ControlDefault, field.ControlRightTitle,
		field.ControlRequired, field.ControlDisplayRulesName, field.ControlPlaceholder,
	} {
		assert.NotContains(t, names, hidden)
	}

	assert.Equal(t, field.ControlReadonly, controls[0].Kind)
	assert.Equal(t, "reCAPTCHA v3 settings", controls[3].Title)

	score := controls[4]
	require.NotNil(t, score.Range)
	assert.Equal(t, field.ControlRange, score.Kind)
	assert.Equal(t, 0, score.Range.Min)
	assert.Equal(t, 100, score.Range.Max)
	assert.Equal(t, 10, score.Range.Step)
	assert.True(t, score.Range.Snap)
	assert.Equal(t, 0, score.Range.DecimalPlaces)
	assert.True(t, score.Range.ShowPips)
	assert.Equal(t, []int{60}, score.Range.Start)
	require.Len(t, score.Range.Stops, 21)
	assert.Equal(t, field.RangeStop{Key: "0", Value: 0}, score.Range.Stops[0])
	assert.Equal(t, field.RangeStop{Key: "5.00", Value: 5}, score.Range.Stops[1])
	assert.Equal(t, field.RangeStop{Key: "100", Value: 100}, score.Range.Stops[20])
	assert.NotEmpty(t, score.Description)

	action := controls[5]
	assert.Equal(t, field.ControlText, action.Kind)
	assert.Equal(t, "contact", action.Value)
	assert.Contains(t, action.Description, "a-z 0-9 /")
}

func TestCMSFields_Translated(t *testing.T) {
	f := save(t, nil)
	controls := f.CMSFields(mapTranslator{"FormGuard.SCORE_HUMAN": "Choisir un score"})

	assert.Equal(t, "Choisir un score", controls[4].Title)
}

func runtimeMocks(t *testing.T, f *Field, sessionID string) (*verificationmocks.Factory, *verificationmocks.Field) {
	t.Helper()
	rf := new(verificationmocks.Field)
	factory := new(verificationmocks.Factory)
	factory.On("NewField", sessionID, f.Name, f.Title).Return(rf).Once()
	t.Cleanup(func() {
		factory.AssertExpectations(t)
		rf.AssertExpectations(t)
	})
	return factory, rf
}

func TestFormField(t *testing.T) {
	f := save(t, map[string]interface{}{"score": 70, "action": "submit"})
	factory, rf := runtimeMocks(t, f, "sess-1")

	var calls []string
	rf.On("SetScore", 0.70).Run(func(mock.Arguments) { calls = append(calls, "score") }).Once()
	rf.On("SetExecuteAction", "contact/submit", true).Run(func(mock.Arguments) { calls = append(calls, "action") }).Once()
	rf.On("SetFieldHolderTemplate", "EditableRecaptchaV3Field_holder").Once()
	rf.On("SetTemplate", "EditableRecaptchaV3Field").Once()

	env := field.Env{
		Form:      &form.Form{URLSegment: "contact"},
		SessionID: "sess-1",
		Verifiers: factory,
		Extensions: []field.Extension{
			field.ExtensionFunc(func(_ context.Context, r field.Runtime) {
				assert.Same(t, rf, r)
				calls = append(calls, "ext1")
			}),
			field.ExtensionFunc(func(context.Context, field.Runtime) { calls = append(calls, "ext2") }),
		},
	}

	got, err := f.FormField(context.Background(), env)
	require.NoError(t, err)
	assert.Same(t, rf, got)
	assert.Equal(t, []string{"score", "action", "ext1", "ext2"}, calls)
}

func TestFormField_NoParentForm(t *testing.T) {
	f := save(t, map[string]interface{}{"score": 100, "action": "login"})
	factory, rf := runtimeMocks(t, f, "")

	rf.On("SetScore", 1.0).Once()
	rf.On("SetExecuteAction", "/login", true).Once()
	rf.On("SetFieldHolderTemplate", HolderTemplate).Once()
	rf.On("SetTemplate", Template).Once()

	_, err := f.FormField(context.Background(), field.Env{Verifiers: factory})
	require.NoError(t, err)
}

func TestFormField_NoVerifier(t *testing.T) {
	f := save(t, nil)
	_, err := f.FormField(context.Background(), field.Env{})
	assert.ErrorIs(t, err, ErrNoVerifier)
}

func TestValueFromData_DropsToken(t *testing.T) {
	f := save(t, map[string]interface{}{"score": 70})
	factory, rf := runtimeMocks(t, f, "sess-1")
	rf.On("SetScore", mock.Anything).Once()
	rf.On("SetExecuteAction", mock.Anything, true).Once()
	rf.On("SetFieldHolderTemplate", mock.Anything).Once()
	rf.On("SetTemplate", mock.Anything).Once()
	rf.On("ResponseFromSession", mock.Anything).Return(verification.Response{
		"token":    "secret-token",
		"score":    0.9,
		"action":   "contact/submit",
		"hostname": "example.com",
	}, nil).Once()

	env := field.Env{Form: &form.Form{URLSegment: "contact"}, SessionID: "sess-1", Verifiers: factory}
	value, err := f.ValueFromData(context.Background(), env, map[string]interface{}{"token": "ignored"})
	require.NoError(t, err)

	assert.Equal(t, `{"action":"contact/submit","hostname":"example.com","score":0.9}`, value)
	assert.NotContains(t, value, "token")
}

func TestValueFromData_NoResponse(t *testing.T) {
	f := save(t, nil)
	factory, rf := runtimeMocks(t, f, "sess-1")
	rf.On("SetScore", mock.Anything).Once()
	rf.On("SetExecuteAction", mock.Anything, true).Once()
	rf.On("SetFieldHolderTemplate", mock.Anything).Once()
	rf.On("SetTemplate", mock.Anything).Once()
	rf.On("ResponseFromSession", mock.Anything).Return(nil, verification.ErrResponseNotFound).Once()

	_, err := f.ValueFromData(context.Background(), field.Env{SessionID: "sess-1", Verifiers: factory}, nil)
	assert.ErrorIs(t, err, verification.ErrResponseNotFound)
}

func TestConsumeVerification(t *testing.T) {
	f := save(t, nil)
	factory, rf := runtimeMocks(t, f, "sess-1")
	rf.On("SetScore", mock.Anything).Once()
	rf.On("SetExecuteAction", mock.Anything, true).Once()
	rf.On("SetFieldHolderTemplate", mock.Anything).Once()
	rf.On("SetTemplate", mock.Anything).Once()
	rf.On("ClearResponseFromSession", mock.Anything).Return(nil).Once()

	require.NoError(t, f.ConsumeVerification(context.Background(), field.Env{SessionID: "sess-1", Verifiers: factory}))
}

func TestConsumeVerification_NoVerifier(t *testing.T) {
	f := save(t, nil)
	assert.ErrorIs(t, f.ConsumeVerification(context.Background(), field.Env{}), ErrNoVerifier)
}

func TestRegister(t *testing.T) {
	registry := field.NewRegistry()
	require.NoError(t, Register(registry))

	def, ok := registry.Definition(FieldType)
	require.True(t, ok)
	assert.Equal(t, "reCAPTCHA v3 field", def.Singular)
	assert.Equal(t, "reCAPTCHA v3 fields", def.Plural)
	assert.Equal(t, field.GenerateTypeUUID(FieldType), def.UUID)

	f, err := registry.New(FieldType)
	require.NoError(t, err)
	assert.IsType(t, &Field{}, f)
	assert.Equal(t, DefaultScore, f.(*Field).Score)

	assert.ErrorIs(t, Register(registry), field.ErrFieldTypeRegistered)
}
