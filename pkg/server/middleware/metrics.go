package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
	server string
}

// NewMetricsMiddleware counts requests and their latency per matched route.
// Nothing is recorded while metrics are disabled.
func NewMetricsMiddleware(logger *logrus.Logger, server string) Middleware {
	return &metricsMiddleware{
		logger: logger,
		server: server,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !prometheus.Enabled {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		prometheus.HTTPRequestsTotal.
			WithLabelValues(m.server, c.Method(), route, strconv.Itoa(status)).
			Inc()
		prometheus.HTTPRequestLatency.
			WithLabelValues(m.server, route).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
