package http

import (
	"errors"

	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/FormGuard/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type verifyTokenHandler struct {
	logger  *logrus.Logger
	builder appField.RuntimeBuilder
}

func NewVerifyTokenHandler(logger *logrus.Logger, builder appField.RuntimeBuilder) Handler {
	return &verifyTokenHandler{
		logger:  logger,
		builder: builder,
	}
}

// Handle @Summary Verify a reCAPTCHA token
// @Description Checks the token with the verification provider and records the verdict for the visitor session
// @Tags Public
// @Accept json
// @Produce json
// @Param url_segment path string true "Form URL segment"
// @Param field_id path string true "Field ID"
// @Param token body request.VerifyTokenRequest true "Token issued to the browser"
// @Success 200 {object} map[string]interface{} "Verification response without the token"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Missing visitor session"
// @Failure 422 {object} map[string]interface{} "Verification failed"
// @Failure 503 {object} map[string]interface{} "Verification provider unavailable"
// @Router /forms/{url_segment}/fields/{field_id}/verify [post]
func (h *verifyTokenHandler) Handle(c *fiber.Ctx) error {
	fieldID, err := parseUUIDParam(c, "field_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field_id"})
	}

	var req request.VerifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sessionID := common.SessionIDFromLocals(c.Locals(string(common.SessionContextKey)))
	resp, err := h.builder.Verify(c.Context(), c.Params("url_segment"), fieldID, sessionID, req.Token, c.IP())
	if err != nil {
		if errors.Is(err, verification.ErrVerificationFailed) {
			ua := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage))
			h.logger.WithFields(ua.Fields()).WithField("ip", c.IP()).Info("visitor failed verification")
		}
		return respondError(c, h.logger, "failed to verify token", err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
