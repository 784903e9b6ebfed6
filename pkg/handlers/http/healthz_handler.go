package http

import (
	"time"

	"github.com/NeuralTrust/KidBot/pkg/widget"
	"github.com/gofiber/fiber/v2"
)

// isoMillis matches the millisecond ISO-8601 form widget clients parse.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type HealthzResponse struct {
	OK   bool        `json:"ok"`
	Mode widget.Mode `json:"mode"`
	Time string      `json:"time"`
}

type healthzHandler struct {
	widget *widget.Widget
	now    func() time.Time
}

func NewHealthzHandler(w *widget.Widget) Handler {
	return &healthzHandler{widget: w, now: time.Now}
}

func (h *healthzHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthzResponse{
		OK:   true,
		Mode: h.widget.Mode,
		Time: h.now().UTC().Format(isoMillis),
	})
}
