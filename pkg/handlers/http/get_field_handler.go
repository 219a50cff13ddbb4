package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getFieldHandler struct {
	logger *logrus.Logger
	fields field.Repository
}

func NewGetFieldHandler(logger *logrus.Logger, fields field.Repository) Handler {
	return &getFieldHandler{
		logger: logger,
		fields: fields,
	}
}

// Handle @Summary Retrieve a Field
// @Tags Fields
// @Produce json
// @Param form_id path string true "Form ID"
// @Param field_id path string true "Field ID"
// @Success 200 {object} map[string]interface{} "Field details"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Field not found"
// @Router /api/v1/forms/{form_id}/fields/{field_id} [get]
func (h *getFieldHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}

	entity, err := appField.FindInForm(c.Context(), h.fields, formID, fieldID)
	if err != nil {
		return respondError(c, h.logger, "failed to get field", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"type":  entity.FieldType(),
		"field": entity,
	})
}
