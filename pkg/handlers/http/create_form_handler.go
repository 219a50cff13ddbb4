package http

import (
	"github.com/NeuralTrust/FormGuard/pkg/app/form"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createFormHandler struct {
	logger  *logrus.Logger
	creator form.Creator
}

func NewCreateFormHandler(logger *logrus.Logger, creator form.Creator) Handler {
	return &createFormHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Create a new Form
// @Description Creates a user defined form. The URL segment defaults to one derived from the title.
// @Tags Forms
// @Accept json
// @Produce json
// @Param form body request.CreateFormRequest true "Form data"
// @Success 201 {object} form.Form "Form created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "URL segment already in use"
// @Router /api/v1/forms [post]
func (h *createFormHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.creator.Create(c.Context(), req.Title, req.URLSegment)
	if err != nil {
		return respondError(c, h.logger, "failed to create form", err)
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
