package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"folio/domain"
	"folio/port/auth_port"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards admin routes. It accepts a session token from the
// configured cookie or an Authorization: Bearer header and rejects the
// request with 401 when neither validates.
type AuthMiddleware struct {
	auth       auth_port.AuthPort
	cookieName string
	logger     *slog.Logger
}

func NewAuthMiddleware(auth auth_port.AuthPort, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		auth:       auth,
		cookieName: cookieName,
		logger:     slog.Default(),
	}
}

// RequireAuth returns an echo middleware that validates the session token
// and stores the resulting admin session in the request context.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.auth.ValidateSession(c.Request().Context(), token)
			if err != nil {
				m.logger.Warn("session validation failed",
					"path", c.Path(),
					"error", err,
				)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			ctx := domain.SetAdminSession(c.Request().Context(), session)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return ""
}
