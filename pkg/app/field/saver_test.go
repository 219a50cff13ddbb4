package field

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	fieldmocks "github.com/NeuralTrust/FormGuard/pkg/domain/field/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	formmocks "github.com/NeuralTrust/FormGuard/pkg/domain/form/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/fields/recaptchav3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRegistry(t *testing.T) *domainField.Registry {
	t.Helper()
	registry := domainField.NewRegistry()
	require.NoError(t, recaptchav3.Register(registry))
	return registry
}

func TestSaver_Create(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	rules := new(fieldmocks.DisplayRuleRepository)

	forms.On("Get", ctx, formID).Return(&form.Form{ID: formID, URLSegment: "contact"}, nil).Once()
	fields.On("Save", ctx, mock.AnythingOfType("*recaptchav3.Field")).Return(nil).Once()
	rules.On("DeleteByField", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()

	s := NewSaver(testLogger(), testRegistry(t), forms, fields, rules, nil)
	saved, err := s.Create(ctx, formID, recaptchav3.FieldType, map[string]interface{}{
		"score":       "abc",
		"action":      "",
		"required":    true,
		"placeholder": "x",
	})
	require.NoError(t, err)

	f, ok := saved.(*recaptchav3.Field)
	require.True(t, ok)
	assert.Equal(t, formID, f.FormID)
	assert.Equal(t, 70, f.Score)
	assert.Equal(t, "submit", f.Action)
	assert.False(t, f.Required)
	assert.Empty(t, f.Placeholder)
	assert.Equal(t, "Recaptcha v3", f.Title)
	assert.NotEqual(t, uuid.Nil, f.ID)

	rules.AssertCalled(t, "DeleteByField", ctx, f.ID)
	forms.AssertExpectations(t)
	fields.AssertExpectations(t)
}

func TestSaver_Create_UnknownType(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	forms := new(formmocks.Repository)
	forms.On("Get", ctx, formID).Return(&form.Form{ID: formID}, nil).Once()

	s := NewSaver(testLogger(), testRegistry(t), forms, new(fieldmocks.Repository), new(fieldmocks.DisplayRuleRepository), nil)
	_, err := s.Create(ctx, formID, "captcha_v9", nil)
	assert.ErrorIs(t, err, domainField.ErrUnknownFieldType)
}

func TestSaver_Create_FormNotFound(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	forms := new(formmocks.Repository)
	forms.On("Get", ctx, formID).Return(nil, domain.NewNotFoundError("form", formID)).Once()

	s := NewSaver(testLogger(), testRegistry(t), forms, new(fieldmocks.Repository), new(fieldmocks.DisplayRuleRepository), nil)
	_, err := s.Create(ctx, formID, recaptchav3.FieldType, nil)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestSaver_Update(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	existing := recaptchav3.New()
	existing.FormID = formID
	existing.OnBeforeWrite(nil)
	existing.Score = 40

	fields := new(fieldmocks.Repository)
	rules := new(fieldmocks.DisplayRuleRepository)
	fields.On("Get", ctx, existing.ID).Return(existing, nil).Once()
	fields.On("Save", ctx, existing).Return(nil).Once()
	rules.On("DeleteByField", ctx, existing.ID).Return(nil).Once()

	s := NewSaver(testLogger(), testRegistry(t), new(formmocks.Repository), fields, rules, nil)
	saved, err := s.Update(ctx, formID, existing.ID, map[string]interface{}{"score": 150, "action": "Sign Up"})
	require.NoError(t, err)

	f := saved.(*recaptchav3.Field)
	assert.Equal(t, 100, f.Score)
	assert.Equal(t, "signup", f.Action)
	fields.AssertExpectations(t)
	rules.AssertExpectations(t)
}

func TestSaver_Update_OtherForm(t *testing.T) {
	ctx := context.Background()
	existing := recaptchav3.New()
	existing.FormID = uuid.New()
	existing.OnBeforeWrite(nil)

	fields := new(fieldmocks.Repository)
	fields.On("Get", ctx, existing.ID).Return(existing, nil).Once()

	s := NewSaver(testLogger(), testRegistry(t), new(formmocks.Repository), fields, new(fieldmocks.DisplayRuleRepository), nil)
	_, err := s.Update(ctx, uuid.New(), existing.ID, nil)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestSaver_SaveFails(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	rules := new(fieldmocks.DisplayRuleRepository)

	forms.On("Get", ctx, formID).Return(&form.Form{ID: formID}, nil).Once()
	fields.On("Save", ctx, mock.Anything).Return(errors.New("db down")).Once()

	s := NewSaver(testLogger(), testRegistry(t), forms, fields, rules, nil)
	_, err := s.Create(ctx, formID, recaptchav3.FieldType, nil)
	require.Error(t, err)
	rules.AssertNotCalled(t, "DeleteByField", mock.Anything, mock.Anything)
}

func TestSaver_AfterWriteFails(t *testing.T) {
	ctx := context.Background()
	formID := uuid.New()
	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	rules := new(fieldmocks.DisplayRuleRepository)

	forms.On("Get", ctx, formID).Return(&form.Form{ID: formID}, nil).Once()
	fields.On("Save", ctx, mock.Anything).Return(nil).Once()
	rules.On("DeleteByField", ctx, mock.Anything).Return(errors.New("db down")).Once()

	s := NewSaver(testLogger(), testRegistry(t), forms, fields, rules, nil)
	_, err := s.Create(ctx, formID, recaptchav3.FieldType, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post-save cleanup")
}
