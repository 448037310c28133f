package middleware

import (
	"net/http"

	"folio/utils/rate_limiter"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles by client IP using a per-key token bucket.
// Intended for the unauthenticated analytics ingest endpoints.
func RateLimitMiddleware(limiter *rate_limiter.ClientRateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
