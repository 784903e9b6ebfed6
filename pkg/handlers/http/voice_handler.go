package http

import (
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type voiceHandler struct {
	*BaseHandler
}

func NewVoiceHandler(logger *logrus.Logger, service ContentService) Handler {
	return &voiceHandler{BaseHandler: NewBaseHandler(logger, service)}
}

// Handle @Summary Crafts a persona voice reply
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request.VoiceRequest true "Voice request"
// @Success 200 {object} content.VoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /voice [post]
func (h *voiceHandler) Handle(c *fiber.Ctx) error {
	var req request.VoiceRequest
	if err := request.Decode(c.Body(), &req); err != nil {
		return h.HandleDecodeError(c, err)
	}
	resp := h.service.Voice(c.UserContext(), req.Domain())
	return h.HandleContentResponse(c, &resp.Verdict, resp)
}
