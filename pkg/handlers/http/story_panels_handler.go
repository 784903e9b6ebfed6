package http

import (
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type storyPanelsHandler struct {
	*BaseHandler
}

func NewStoryPanelsHandler(logger *logrus.Logger, service ContentService) Handler {
	return &storyPanelsHandler{BaseHandler: NewBaseHandler(logger, service)}
}

// Handle @Summary Plans comic story panels
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request.StoryRequest true "Story request"
// @Success 200 {object} content.StoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /story-panels [post]
func (h *storyPanelsHandler) Handle(c *fiber.Ctx) error {
	var req request.StoryRequest
	if err := request.Decode(c.Body(), &req); err != nil {
		return h.HandleDecodeError(c, err)
	}
	resp := h.service.Story(c.UserContext(), req.Domain())
	return h.HandleContentResponse(c, &resp.Verdict, resp)
}
