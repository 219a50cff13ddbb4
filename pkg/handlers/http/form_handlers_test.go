package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/FormGuard/pkg/app/form/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	fieldMocks "github.com/NeuralTrust/FormGuard/pkg/domain/field/mocks"
	domainForm "github.com/NeuralTrust/FormGuard/pkg/domain/form"
	formMocks "github.com/NeuralTrust/FormGuard/pkg/domain/form/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFiber() *fiber.App { return fiber.New() }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *nethttp.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestCreateForm_Success(t *testing.T) {
	creator := mocks.NewCreator(t)
	h := NewCreateFormHandler(quietLogger(), creator)
	app := newFiber()
	app.Post("/api/v1/forms", h.Handle)

	created := &domainForm.Form{ID: uuid.New(), Title: "Contact Us", URLSegment: "contact-us"}
	creator.On("Create", mock.Anything, "Contact Us", "").Return(created, nil)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/forms", map[string]string{"title": "Contact Us"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "contact-us", body["url_segment"])
}

func TestCreateForm_MissingTitle(t *testing.T) {
	creator := mocks.NewCreator(t)
	h := NewCreateFormHandler(quietLogger(), creator)
	app := newFiber()
	app.Post("/api/v1/forms", h.Handle)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/forms", map[string]string{"url_segment": "x"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateForm_SegmentTaken(t *testing.T) {
	creator := mocks.NewCreator(t)
	h := NewCreateFormHandler(quietLogger(), creator)
	app := newFiber()
	app.Post("/api/v1/forms", h.Handle)

	creator.On("Create", mock.Anything, "Contact", "contact").Return(nil, domain.ErrURLSegmentTaken)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/forms", map[string]string{"title": "Contact", "url_segment": "contact"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, domain.ErrURLSegmentTaken.Error(), decodeBody(t, resp.Body)["error"])
}

func TestGetForm(t *testing.T) {
	forms := formMocks.NewRepository(t)
	fields := new(fieldMocks.Repository)
	h := NewGetFormHandler(quietLogger(), forms, fields)
	app := newFiber()
	app.Get("/api/v1/forms/:form_id", h.Handle)

	t.Run("invalid id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/forms/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		forms.On("Get", mock.Anything, id).Return(nil, domain.NewNotFoundError("form", id)).Once()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/forms/"+id.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		forms.On("Get", mock.Anything, id).Return(&domainForm.Form{ID: id, Title: "Contact"}, nil).Once()
		fields.On("ListByForm", mock.Anything, id).Return([]domainField.Editable{}, nil).Once()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/forms/"+id.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Contains(t, body, "form")
		assert.Contains(t, body, "fields")
	})
}
