package middleware

import (
	"errors"
	"time"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct {
	service string
}

// NewMetricsMiddleware records request count and latency per route template.
func NewMetricsMiddleware(service string) Middleware {
	return &metricsMiddleware{service: service}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, ok := c.Locals(common.StartTimeKey).(time.Time)
		if !ok {
			start = time.Now()
		}

		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = c.Path()
		}
		prometheus.RecordRequest(m.service, route, status, float64(time.Since(start).Milliseconds()))
		return err
	}
}
