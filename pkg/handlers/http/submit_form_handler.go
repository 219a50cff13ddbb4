package http

import (
	"github.com/NeuralTrust/FormGuard/pkg/app/submission"
	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type submitFormHandler struct {
	logger   *logrus.Logger
	recorder submission.Recorder
}

func NewSubmitFormHandler(logger *logrus.Logger, recorder submission.Recorder) Handler {
	return &submitFormHandler{
		logger:   logger,
		recorder: recorder,
	}
}

// Handle @Summary Submit a Form
// @Description Records the value of every field. Verification fields store the verdict recorded for the session.
// @Tags Public
// @Accept json
// @Produce json
// @Param url_segment path string true "Form URL segment"
// @Param submission body request.SubmitFormRequest true "Submitted data"
// @Success 201 {object} submission.SubmittedForm "Submission recorded"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Form not found"
// @Router /forms/{url_segment}/submissions [post]
func (h *submitFormHandler) Handle(c *fiber.Ctx) error {
	var req request.SubmitFormRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to bind request")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	sessionID := common.SessionIDFromLocals(c.Locals(string(common.SessionContextKey)))
	submitted, err := h.recorder.Record(c.Context(), c.Params("url_segment"), sessionID, req.Data)
	if err != nil {
		return respondError(c, h.logger, "failed to record submission", err)
	}
	return c.Status(fiber.StatusCreated).JSON(submitted)
}
