package submission

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
	domainSubmission "github.com/NeuralTrust/FormGuard/pkg/domain/submission"
	submissionmocks "github.com/NeuralTrust/FormGuard/pkg/domain/submission/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	verificationmocks "github.com/NeuralTrust/FormGuard/pkg/domain/verification/mocks"
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

func savedField(t *testing.T, formID uuid.UUID, title string, sort int) *recaptchav3.Field {
	t.Helper()
	f := recaptchav3.New()
	f.FormID = formID
	require.NoError(t, f.Apply(map[string]interface{}{"title": title, "sort": sort}))
	f.OnBeforeWrite(nil)
	return f
}

func runtimeFor(factory *verificationmocks.Factory, f *recaptchav3.Field) *verificationmocks.Field {
	rf := new(verificationmocks.Field)
	rf.On("SetScore", mock.Anything)
	rf.On("SetExecuteAction", mock.Anything, true)
	rf.On("SetFieldHolderTemplate", mock.Anything)
	rf.On("SetTemplate", mock.Anything)
	factory.On("NewField", "sess-1", f.Name, f.Title).Return(rf)
	return rf
}

func TestRecorder_Record(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}
	verified := savedField(t, parent.ID, "Check one", 1)

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	factory := new(verificationmocks.Factory)

	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil).Once()
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{verified}, nil).Once()
	rf := runtimeFor(factory, verified)
	rf.On("ResponseFromSession", ctx).
		Return(verification.Response{"token": "t", "score": 0.8, "hostname": "example.com"}, nil).Once()
	rf.On("ClearResponseFromSession", ctx).Return(nil).Once()

	var stored *domainSubmission.SubmittedForm
	submissions.On("Create", ctx, mock.AnythingOfType("*submission.SubmittedForm")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domainSubmission.SubmittedForm) }).
		Return(nil).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, factory, RecorderConfig{})
	got, err := r.Record(ctx, "contact", "sess-1", map[string]interface{}{"g-recaptcha-response": "t"})
	require.NoError(t, err)

	assert.Same(t, stored, got)
	assert.Equal(t, parent.ID, got.FormID)
	assert.Equal(t, "sess-1", got.SessionID)
	require.Len(t, got.Values, 1)
	assert.Equal(t, verified.Name, got.Values[0].Name)
	assert.Equal(t, "Check one", got.Values[0].Title)
	assert.JSONEq(t, `{"score":0.8,"hostname":"example.com"}`, got.Values[0].Value)
	assert.NotContains(t, got.Values[0].Value, "token")
	assert.Empty(t, got.Unverified)

	forms.AssertExpectations(t)
	fields.AssertExpectations(t)
	submissions.AssertExpectations(t)
	rf.AssertExpectations(t)
}

func TestRecorder_Record_RejectsMissingVerification(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}
	missing := savedField(t, parent.ID, "Check", 1)

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	factory := new(verificationmocks.Factory)

	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil).Once()
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{missing}, nil).Once()
	rf := runtimeFor(factory, missing)
	rf.On("ResponseFromSession", ctx).Return(nil, verification.ErrResponseNotFound).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, factory, RecorderConfig{})
	_, err := r.Record(ctx, "contact", "sess-1", nil)

	assert.ErrorIs(t, err, verification.ErrVerificationFailed)
	assert.ErrorIs(t, err, verification.ErrResponseNotFound)
	submissions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	rf.AssertNotCalled(t, "ClearResponseFromSession", mock.Anything)
}

func TestRecorder_Record_AllowUnverified(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}
	verified := savedField(t, parent.ID, "Check one", 1)
	missing := savedField(t, parent.ID, "Check two", 2)

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	factory := new(verificationmocks.Factory)

	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil).Once()
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{verified, missing}, nil).Once()
	verifiedRF := runtimeFor(factory, verified)
	verifiedRF.On("ResponseFromSession", ctx).Return(verification.Response{"score": 0.8}, nil).Once()
	verifiedRF.On("ClearResponseFromSession", ctx).Return(nil).Once()
	missingRF := runtimeFor(factory, missing)
	missingRF.On("ResponseFromSession", ctx).Return(nil, verification.ErrResponseNotFound).Once()
	submissions.On("Create", ctx, mock.Anything).Return(nil).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, factory, RecorderConfig{AllowUnverified: true})
	got, err := r.Record(ctx, "contact", "sess-1", nil)
	require.NoError(t, err)

	require.Len(t, got.Values, 2)
	assert.JSONEq(t, `{"score":0.8}`, got.Values[0].Value)
	assert.Equal(t, "", got.Values[1].Value)
	assert.Equal(t, []string{missing.Name}, []string(got.Unverified))
	verifiedRF.AssertExpectations(t)
	missingRF.AssertNotCalled(t, "ClearResponseFromSession", mock.Anything)
}

func TestRecorder_Record_VerificationBacksOneSubmission(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}
	check := savedField(t, parent.ID, "Check", 1)

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	factory := new(verificationmocks.Factory)

	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil)
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{check}, nil)
	rf := runtimeFor(factory, check)
	rf.On("ResponseFromSession", ctx).Return(verification.Response{"score": 0.9}, nil).Once()
	rf.On("ClearResponseFromSession", ctx).Return(nil).Once()
	rf.On("ResponseFromSession", ctx).Return(nil, verification.ErrResponseNotFound).Once()
	submissions.On("Create", ctx, mock.Anything).Return(nil).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, factory, RecorderConfig{})

	first, err := r.Record(ctx, "contact", "sess-1", nil)
	require.NoError(t, err)
	assert.Empty(t, first.Unverified)

	_, err = r.Record(ctx, "contact", "sess-1", nil)
	assert.ErrorIs(t, err, verification.ErrVerificationFailed)

	submissions.AssertNumberOfCalls(t, "Create", 1)
	rf.AssertExpectations(t)
}

func TestRecorder_Record_ClearFailureKeepsSubmission(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}
	check := savedField(t, parent.ID, "Check", 1)

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	factory := new(verificationmocks.Factory)

	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil).Once()
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{check}, nil).Once()
	rf := runtimeFor(factory, check)
	rf.On("ResponseFromSession", ctx).Return(verification.Response{"score": 0.9}, nil).Once()
	rf.On("ClearResponseFromSession", ctx).Return(errors.New("redis down")).Once()
	submissions.On("Create", ctx, mock.Anything).Return(nil).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, factory, RecorderConfig{})
	got, err := r.Record(ctx, "contact", "sess-1", nil)
	require.NoError(t, err)
	require.Len(t, got.Values, 1)
	rf.AssertExpectations(t)
}

func TestRecorder_Record_NoSession(t *testing.T) {
	r := NewRecorder(testLogger(), new(formmocks.Repository), new(fieldmocks.Repository), new(submissionmocks.Repository), nil, RecorderConfig{})

	_, err := r.Record(context.Background(), "contact", "", nil)
	assert.ErrorIs(t, err, domain.ErrSessionRequired)
}

func TestRecorder_Record_UnknownForm(t *testing.T) {
	ctx := context.Background()
	forms := new(formmocks.Repository)
	forms.On("GetByURLSegment", ctx, "nope").Return(nil, domain.NewNotFoundByKeyError("form", "nope")).Once()

	r := NewRecorder(testLogger(), forms, new(fieldmocks.Repository), new(submissionmocks.Repository), nil, RecorderConfig{})
	_, err := r.Record(ctx, "nope", "sess-1", nil)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestRecorder_Record_StoreFails(t *testing.T) {
	ctx := context.Background()
	parent := &form.Form{ID: uuid.New(), URLSegment: "contact"}

	forms := new(formmocks.Repository)
	fields := new(fieldmocks.Repository)
	submissions := new(submissionmocks.Repository)
	forms.On("GetByURLSegment", ctx, "contact").Return(parent, nil).Once()
	fields.On("ListByForm", ctx, parent.ID).Return([]domainField.Editable{}, nil).Once()
	submissions.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

	r := NewRecorder(testLogger(), forms, fields, submissions, new(verificationmocks.Factory), RecorderConfig{})
	_, err := r.Record(ctx, "contact", "sess-1", nil)
	assert.Error(t, err)
}
