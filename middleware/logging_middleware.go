package middleware

import (
	"time"

	"folio/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware emits one structured log line per request. Health
// checks are skipped to keep the probe noise out of the logs.
func LoggingMiddleware(contextLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/v1/health" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			log := contextLogger.WithContext(c.Request().Context())
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", duration.Milliseconds(),
				"remote_ip", c.RealIP(),
			}

			if err != nil {
				log.Error("request failed", append(attrs, "error", err)...)
			} else if c.Response().Status >= 500 {
				log.Error("request completed", attrs...)
			} else {
				log.Info("request completed", attrs...)
			}

			return err
		}
	}
}
