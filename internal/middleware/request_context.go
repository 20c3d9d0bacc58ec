package middleware

import (
	"catalog/pkg/requestid"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewRequestContextMiddleware makes the caller's X-Request-Id (or a fresh one)
// available through requestid.FromContext and echoes it on the response.
func NewRequestContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := strings.TrimSpace(c.Get(requestid.Header))
		if reqID == "" {
			reqID = uuid.NewString()
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		c.SetUserContext(requestid.WithRequestID(userCtx, reqID))
		c.Set(requestid.Header, reqID)
		return c.Next()
	}
}
