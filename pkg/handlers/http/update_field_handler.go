package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updateFieldHandler struct {
	logger *logrus.Logger
	saver  appField.Saver
}

func NewUpdateFieldHandler(logger *logrus.Logger, saver appField.Saver) Handler {
	return &updateFieldHandler{
		logger: logger,
		saver:  saver,
	}
}

// Handle @Summary Update a Field
// @Description Overlays the given settings on the stored field. Omitted settings keep their value.
// @Tags Fields
// @Accept json
// @Produce json
// @Param form_id path string true "Form ID"
// @Param field_id path string true "Field ID"
// @Param settings body request.FieldSettingsRequest true "Field settings"
// @Success 200 {object} map[string]interface{} "Field updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Field not found"
// @Router /api/v1/forms/{form_id}/fields/{field_id} [put]
func (h *updateFieldHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}

	var req request.FieldSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.saver.Update(c.Context(), formID, fieldID, req)
	if err != nil {
		return respondError(c, h.logger, "failed to update field", err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
