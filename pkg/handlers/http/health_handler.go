package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type healthHandler struct {
	logger *logrus.Logger
	checks map[string]HealthCheck
}

func NewHealthHandler(logger *logrus.Logger, checks map[string]HealthCheck) Handler {
	return &healthHandler{
		logger: logger,
		checks: checks,
	}
}

// Handle @Summary Health check
// @Description Pings every dependency and reports its state
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "All dependencies healthy"
// @Failure 503 {object} map[string]interface{} "At least one dependency is down"
// @Router /health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := make(fiber.Map, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WithError(err).WithField("dependency", name).Warn("health check failed")
			deps[name] = err.Error()
			status = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	state := "ok"
	if status != fiber.StatusOK {
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":       state,
		"dependencies": deps,
	})
}
