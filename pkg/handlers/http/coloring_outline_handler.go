package http

import (
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type coloringOutlineHandler struct {
	*BaseHandler
}

func NewColoringOutlineHandler(logger *logrus.Logger, service ContentService) Handler {
	return &coloringOutlineHandler{BaseHandler: NewBaseHandler(logger, service)}
}

// Handle @Summary Generates a coloring page outline
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request.ColoringRequest true "Coloring request"
// @Success 200 {object} content.ColoringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /coloring-outline [post]
func (h *coloringOutlineHandler) Handle(c *fiber.Ctx) error {
	var req request.ColoringRequest
	if err := request.Decode(c.Body(), &req); err != nil {
		return h.HandleDecodeError(c, err)
	}
	resp := h.service.Coloring(c.UserContext(), req.Domain())
	return h.HandleContentResponse(c, &resp.Verdict, resp)
}
