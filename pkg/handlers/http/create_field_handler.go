package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createFieldHandler struct {
	logger    *logrus.Logger
	saver     appField.Saver
	fieldType string
}

// NewCreateFieldHandler returns a handler that adds fields of one registered
// type to a form.
func NewCreateFieldHandler(logger *logrus.Logger, saver appField.Saver, fieldType string) Handler {
	return &createFieldHandler{
		logger:    logger,
		saver:     saver,
		fieldType: fieldType,
	}
}

// Handle @Summary Add a reCAPTCHA v3 field to a Form
// @Description Creates the field from raw settings. Invalid score and action values are corrected, never rejected.
// @Tags Fields
// @Accept json
// @Produce json
// @Param form_id path string true "Form ID"
// @Param settings body request.FieldSettingsRequest true "Field settings (name, title, score, action, custom_error_message, sort)"
// @Success 201 {object} recaptchav3.Field "Field created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Form not found"
// @Router /api/v1/forms/{form_id}/fields/recaptcha-v3 [post]
func (h *createFieldHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}

	var req request.FieldSettingsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to bind request")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.saver.Create(c.Context(), formID, h.fieldType, req)
	if err != nil {
		return respondError(c, h.logger, "failed to create field", err)
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
