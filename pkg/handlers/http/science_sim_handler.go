package http

import (
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type scienceSimHandler struct {
	*BaseHandler
}

func NewScienceSimHandler(logger *logrus.Logger, service ContentService) Handler {
	return &scienceSimHandler{BaseHandler: NewBaseHandler(logger, service)}
}

// Handle @Summary Plans a kid-safe science experiment
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request.ScienceRequest true "Science request"
// @Success 200 {object} content.ScienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /science-sim [post]
func (h *scienceSimHandler) Handle(c *fiber.Ctx) error {
	var req request.ScienceRequest
	if err := request.Decode(c.Body(), &req); err != nil {
		return h.HandleDecodeError(c, err)
	}
	resp := h.service.Science(c.UserContext(), req.Domain())
	return h.HandleContentResponse(c, &resp.Verdict, resp)
}
