package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				id := CorrelationID(c)
				m.logger.WithFields(logrus.Fields{
					"error":          r,
					"path":           c.Path(),
					"correlation_id": id,
				}).Error("HTTP server panic recovered")

				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":         "Internal Error",
					"correlationId": id,
				})
			}
		}()

		return c.Next()
	}
}
