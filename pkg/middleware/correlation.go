package middleware

import (
	"time"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type correlationMiddleware struct{}

// NewCorrelationMiddleware tags every request with a fresh kb_<uuid> id. The
// id is stored in the fiber locals, in the user context and in the
// X-Correlation-Id response header.
func NewCorrelationMiddleware() Middleware {
	return &correlationMiddleware{}
}

func NewCorrelationID() string {
	return common.CorrelationIDPrefix + uuid.NewString()
}

func (m *correlationMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := NewCorrelationID()
		c.Locals(common.CorrelationIDKey, id)
		c.Locals(common.StartTimeKey, time.Now())
		c.SetUserContext(common.WithCorrelationID(c.UserContext(), id))
		c.Set(common.CorrelationIDHeader, id)
		return c.Next()
	}
}

// CorrelationID returns the request's id, minting one if the correlation
// middleware did not run.
func CorrelationID(c *fiber.Ctx) string {
	if id, ok := c.Locals(common.CorrelationIDKey).(string); ok && id != "" {
		return id
	}
	id := NewCorrelationID()
	c.Locals(common.CorrelationIDKey, id)
	c.Set(common.CorrelationIDHeader, id)
	return id
}
