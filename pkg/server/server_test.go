package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/FormGuard/pkg/config"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type panicRouter struct{}

func (panicRouter) BuildRoutes(app *fiber.App) error {
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })
	return nil
}

func TestBaseServer_RecoversPanics(t *testing.T) {
	cfg := &config.Config{}
	s := NewBaseServer(cfg, quietLogger()).WithRouters(panicRouter{})

	resp, err := s.Router.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestMetricsServer_ExposesRegistry(t *testing.T) {
	prometheus.SubmissionsTotal.WithLabelValues("verified").Inc()

	s := NewMetricsServer(&config.Config{}, quietLogger())
	resp, err := s.App().Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "formguard_submissions_total"))
}
