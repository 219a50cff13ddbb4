package server

import (
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/config"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const MetricsPath = "/metrics"

type MetricsServer struct {
	config *config.Config
	logger *logrus.Logger
	app    *fiber.App
}

// NewMetricsServer exposes the service registry in the Prometheus text
// format.
func NewMetricsServer(config *config.Config, logger *logrus.Logger) *MetricsServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(prometheus.Gatherer(), promhttp.HandlerOpts{}),
	)
	app.Get(MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})

	return &MetricsServer{
		config: config,
		logger: logger,
		app:    app,
	}
}

func (s *MetricsServer) App() *fiber.App {
	return s.app
}

func (s *MetricsServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.MetricsPort)
	s.logger.WithField("addr", addr).Info("starting metrics server")
	return s.app.Listen(addr)
}

func (s *MetricsServer) Shutdown() error {
	return s.app.Shutdown()
}
