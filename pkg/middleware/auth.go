package middleware

import (
	"crypto/subtle"

	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

type authMiddleware struct {
	logger *logrus.Logger
	cfg    *config.Config
}

// NewAuthMiddleware enforces the shared-secret bearer token. With no secret
// configured every request passes.
func NewAuthMiddleware(logger *logrus.Logger, cfg *config.Config) Middleware {
	return &authMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	expected := []byte(bearerPrefix + m.cfg.Auth.APIKey)
	return func(c *fiber.Ctx) error {
		if !m.cfg.AuthEnabled() {
			return c.Next()
		}

		header := []byte(c.Get(authorizationHeader))
		if subtle.ConstantTimeCompare(header, expected) != 1 {
			m.logger.WithFields(logrus.Fields{
				"correlation_id": CorrelationID(c),
				"path":           c.Path(),
				"has_header":     len(header) > 0,
			}).Debug("rejected request with missing or wrong bearer token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":         "Unauthorized",
				"correlationId": CorrelationID(c),
			})
		}
		return c.Next()
	}
}
