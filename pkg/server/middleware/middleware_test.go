package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/infra/jwt"
	"github.com/NeuralTrust/FormGuard/pkg/infra/jwt/mocks"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func echoSession(c *fiber.Ctx) error {
	return c.SendString(common.SessionIDFromLocals(c.Locals(string(common.SessionContextKey))))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestSessionMiddleware_IssuesAndReusesSession(t *testing.T) {
	manager, err := jwt.NewJwtManager("secret", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(NewSessionMiddleware(quietLogger(), manager, SessionConfig{CookieName: "fg"}).Middleware())
	app.Get("/", echoSession)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	first := readBody(t, resp)
	require.NotEmpty(t, first)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "fg" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "fg", Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, first, readBody(t, resp))
	assert.Empty(t, resp.Cookies(), "a valid session is not re-issued")
}

func TestSessionMiddleware_ReplacesInvalidCookie(t *testing.T) {
	manager := mocks.NewManager(t)
	manager.On("DecodeToken", "tampered").Return(nil, jwt.ErrInvalidToken)
	manager.On("CreateToken", mock.AnythingOfType("string")).Return("signed", nil)

	app := fiber.New()
	app.Use(NewSessionMiddleware(quietLogger(), manager, SessionConfig{}).Middleware())
	app.Get("/", echoSession)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: common.DefaultSessionCookieName, Value: "tampered"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, readBody(t, resp))

	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, "signed", resp.Cookies()[0].Value)
}

func TestMetricsMiddleware_CountsRoute(t *testing.T) {
	prometheus.Initialize(true)
	defer prometheus.Initialize(false)

	app := fiber.New()
	app.Use(NewMetricsMiddleware(quietLogger(), "public").Middleware())
	app.Get("/forms/:url_segment", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	counter := prometheus.HTTPRequestsTotal.WithLabelValues("public", "GET", "/forms/:url_segment", "204")
	before := promtest.ToFloat64(counter)

	resp, err := app.Test(httptest.NewRequest("GET", "/forms/contact", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, before+1, promtest.ToFloat64(counter))
}

func TestTransport(t *testing.T) {
	tr := NewTransport()
	assert.Empty(t, tr.GetMiddlewares())
	tr.RegisterMiddleware(NewMetricsMiddleware(quietLogger(), "admin"))
	assert.Len(t, tr.GetMiddlewares(), 1)
}
