package http

import (
	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listFieldTypesHandler struct {
	logger   *logrus.Logger
	registry *field.Registry
}

func NewListFieldTypesHandler(logger *logrus.Logger, registry *field.Registry) Handler {
	return &listFieldTypesHandler{
		logger:   logger,
		registry: registry,
	}
}

// Handle @Summary List registered field types
// @Tags Fields
// @Produce json
// @Success 200 {object} response.ListFieldTypesResponse "Registered field types"
// @Router /api/v1/field-types [get]
func (h *listFieldTypesHandler) Handle(c *fiber.Ctx) error {
	defs := h.registry.Definitions()
	return c.Status(fiber.StatusOK).JSON(response.ListFieldTypesResponse{
		FieldTypes: defs,
		Count:      len(defs),
	})
}
