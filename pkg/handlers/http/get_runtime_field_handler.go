package http

import (
	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getRuntimeFieldHandler struct {
	logger  *logrus.Logger
	builder appField.RuntimeBuilder
	siteKey string
}

func NewGetRuntimeFieldHandler(logger *logrus.Logger, builder appField.RuntimeBuilder, siteKey string) Handler {
	return &getRuntimeFieldHandler{
		logger:  logger,
		builder: builder,
		siteKey: siteKey,
	}
}

// Handle @Summary Get the runtime parameters of a verification Field
// @Description Returns the site key, score threshold, locked action and templates the browser needs
// @Tags Public
// @Produce json
// @Param url_segment path string true "Form URL segment"
// @Param field_id path string true "Field ID"
// @Success 200 {object} response.RuntimeFieldResponse "Runtime parameters"
// @Failure 400 {object} map[string]interface{} "Invalid field ID"
// @Failure 404 {object} map[string]interface{} "Form or field not found"
// @Router /forms/{url_segment}/fields/{field_id} [get]
func (h *getRuntimeFieldHandler) Handle(c *fiber.Ctx) error {
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}
	sessionID := common.SessionIDFromLocals(c.Locals(string(common.SessionContextKey)))

	vf, err := h.builder.Build(c.Context(), c.Params("url_segment"), fieldID, sessionID)
	if err != nil {
		return respondError(c, h.logger, "failed to build runtime field", err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewRuntimeFieldResponse(vf, h.siteKey))
}
