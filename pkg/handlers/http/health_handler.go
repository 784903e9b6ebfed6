package http

import (
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/version"
	"github.com/gofiber/fiber/v2"
)

type HealthResponse struct {
	Status  string         `json:"status"`
	Mode    content.Source `json:"mode"`
	Auth    bool           `json:"auth"`
	Version string         `json:"version"`
}

type healthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) Handler {
	return &healthHandler{cfg: cfg}
}

// Handle @Summary Agent service health
// @Description Reports whether responses come from fixtures (stub) or the local generators
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	mode := content.SourceLocal
	if h.cfg.UseStub() {
		mode = content.SourceStub
	}
	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Status:  "ok",
		Mode:    mode,
		Auth:    h.cfg.AuthEnabled(),
		Version: version.Version,
	})
}
