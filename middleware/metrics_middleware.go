package middleware

import (
	"time"

	"folio/utils/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency. The route pattern
// is used as the path label so ids do not explode cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return err
		}
	}
}
