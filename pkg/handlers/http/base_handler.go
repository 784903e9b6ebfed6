package http

import (
	"context"
	"errors"

	domain "github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ContentService is the response router the content handlers delegate to.
type ContentService interface {
	Voice(ctx context.Context, req domain.VoiceRequest) *domain.VoiceResponse
	Story(ctx context.Context, req domain.StoryRequest) *domain.StoryResponse
	Coloring(ctx context.Context, req domain.ColoringRequest) *domain.ColoringResponse
	Science(ctx context.Context, req domain.ScienceRequest) *domain.ScienceResponse
}

type ErrorResponse struct {
	Error         string               `json:"error"`
	Message       string               `json:"message,omitempty"`
	Details       []request.FieldError `json:"details,omitempty"`
	CorrelationID string               `json:"correlationId"`
}

type BaseHandler struct {
	logger  *logrus.Logger
	service ContentService
}

func NewBaseHandler(logger *logrus.Logger, service ContentService) *BaseHandler {
	return &BaseHandler{logger: logger, service: service}
}

// HandleDecodeError answers 400 for validation problems. Anything else is
// passed on to the app's error handler.
func (h *BaseHandler) HandleDecodeError(c *fiber.Ctx, err error) error {
	var verr *request.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	id := middleware.CorrelationID(c)
	h.logger.WithFields(logrus.Fields{
		"correlation_id": id,
		"route":          c.Path(),
		"details":        verr.Details,
	}).Debug("rejected invalid request")
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:         "Bad Request",
		Details:       verr.Details,
		CorrelationID: id,
	})
}

// HandleContentResponse stamps the correlation id on an agent response and
// writes it.
func (h *BaseHandler) HandleContentResponse(c *fiber.Ctx, verdict *domain.Verdict, body any) error {
	verdict.CorrelationID = middleware.CorrelationID(c)
	return c.Status(fiber.StatusOK).JSON(body)
}
