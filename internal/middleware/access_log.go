package middleware

import (
	"catalog/pkg/metrics"
	"catalog/pkg/requestid"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewAccessLogMiddleware logs every completed request and records it in m.
// m may be nil.
func NewAccessLogMiddleware(m *metrics.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		status := responseStatus(c, err)
		route := c.Route().Path

		m.Observe(c.Method(), route, status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", elapsed.Milliseconds()),
			zap.String("requestId", requestid.FromContext(c.UserContext())),
			zap.String("ip", c.IP()),
		}
		if status >= fiber.StatusInternalServerError {
			zap.L().Error("request.complete", fields...)
		} else {
			zap.L().Info("request.complete", fields...)
		}

		return err
	}
}

// responseStatus accounts for errors that the app error handler has not
// written to the response yet.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
