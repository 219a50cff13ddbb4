package http

import (
	"errors"

	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/infra/recaptcha"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrURLSegmentRequired),
		errors.Is(err, domainField.ErrUnknownFieldType),
		errors.Is(err, appField.ErrNotVerifiable):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrURLSegmentTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrSessionRequired):
		return fiber.StatusUnauthorized
	case errors.Is(err, verification.ErrVerificationFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, recaptcha.ErrSiteVerifyUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, logger *logrus.Logger, msg string, err error) error {
	status := statusFor(err)
	entry := logger.WithError(err).WithField("path", c.Path())
	if status >= fiber.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Debug(msg)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
