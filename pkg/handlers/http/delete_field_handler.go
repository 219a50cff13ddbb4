package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteFieldHandler struct {
	logger *logrus.Logger
	fields field.Repository
}

func NewDeleteFieldHandler(logger *logrus.Logger, fields field.Repository) Handler {
	return &deleteFieldHandler{
		logger: logger,
		fields: fields,
	}
}

// Handle @Summary Delete a Field
// @Description Removes the field and its display rules
// @Tags Fields
// @Param form_id path string true "Form ID"
// @Param field_id path string true "Field ID"
// @Success 204 "Field deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Field not found"
// @Router /api/v1/forms/{form_id}/fields/{field_id} [delete]
func (h *deleteFieldHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}

	if _, err := appField.FindInForm(c.Context(), h.fields, formID, fieldID); err != nil {
		return respondError(c, h.logger, "failed to get field", err)
	}
	if err := h.fields.Delete(c.Context(), fieldID); err != nil {
		return respondError(c, h.logger, "failed to delete field", err)
	}

	h.logger.WithFields(logrus.Fields{
		"form_id":  formID,
		"field_id": fieldID,
	}).Info("field deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
