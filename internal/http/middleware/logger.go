package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"pdfsettings/internal/logging"
)

// Logger writes one structured access-log entry per request through the global
// logger, read on every request so level and sink changes apply immediately.
func Logger() fiber.Handler {
	return accessLog(logging.Get, time.UTC)
}

// LoggerWithWriter is Logger with an explicit sink and timestamp location.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	l := zerolog.New(w)
	return accessLog(func() zerolog.Logger { return l }, loc)
}

// accessLog emits request_id, method, path, status, latency (ms) and ts.
// Status is read after the chain returns so errors mapped by the ErrorHandler
// are logged with their final code.
func accessLog(logger func() zerolog.Logger, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		l := logger()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("ts", time.Now().In(loc).Format(time.RFC3339Nano)).
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("request")

		return err
	}
}
