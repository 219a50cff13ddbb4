package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCMSFieldsHandler struct {
	logger    *logrus.Logger
	describer appField.Describer
}

func NewGetCMSFieldsHandler(logger *logrus.Logger, describer appField.Describer) Handler {
	return &getCMSFieldsHandler{
		logger:    logger,
		describer: describer,
	}
}

// Handle @Summary Get the admin controls of a Field
// @Description Returns the field type definition, the field and its admin controls in display order
// @Tags Fields
// @Produce json
// @Param form_id path string true "Form ID"
// @Param field_id path string true "Field ID"
// @Success 200 {object} field.Description "Field description"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Field not found"
// @Router /api/v1/forms/{form_id}/fields/{field_id}/cms-fields [get]
func (h *getCMSFieldsHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}

	desc, err := h.describer.Describe(c.Context(), formID, fieldID)
	if err != nil {
		return respondError(c, h.logger, "failed to describe field", err)
	}
	return c.Status(fiber.StatusOK).JSON(desc)
}
