package http

import (
	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getFormHandler struct {
	logger *logrus.Logger
	forms  form.Repository
	fields field.Repository
}

func NewGetFormHandler(logger *logrus.Logger, forms form.Repository, fields field.Repository) Handler {
	return &getFormHandler{
		logger: logger,
		forms:  forms,
		fields: fields,
	}
}

// Handle @Summary Retrieve a Form by ID
// @Description Returns a form together with its fields in sort order
// @Tags Forms
// @Produce json
// @Param form_id path string true "Form ID"
// @Success 200 {object} map[string]interface{} "Form details"
// @Failure 400 {object} map[string]interface{} "Invalid form ID"
// @Failure 404 {object} map[string]interface{} "Form not found"
// @Router /api/v1/forms/{form_id} [get]
func (h *getFormHandler) Handle(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "form_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}

	entity, err := h.forms.Get(c.Context(), formID)
	if err != nil {
		return respondError(c, h.logger, "failed to get form", err)
	}
	fields, err := h.fields.ListByForm(c.Context(), formID)
	if err != nil {
		return respondError(c, h.logger, "failed to list form fields", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"form":   entity,
		"fields": fields,
	})
}
