package rest

import (
	"net/http"
	"time"

	"folio/config"
	"folio/domain"
	"folio/port/auth_port"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves admin login, logout and session introspection. The
// session token rides an HTTP-only cookie; the login response also carries
// it for non-browser clients.
type AuthHandler struct {
	auth       auth_port.AuthPort
	cookieName string
	secure     bool
}

func NewAuthHandler(auth auth_port.AuthPort, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		cookieName: cfg.Auth.CookieName,
		secure:     cfg.Auth.CookieSecure,
	}
}

// Login answers POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}
	if req.Password == "" {
		return handleError(c, apperrors.ValidationError("password is required",
			map[string]interface{}{"field": "password"}))
	}

	token, expiresAt, err := h.auth.IssueSession(c.Request().Context(), req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}

	c.SetCookie(h.sessionCookie(token, expiresAt))
	return c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

// Logout answers POST /v1/auth/logout by expiring the session cookie. The
// token itself stays valid until expiry; the server keeps no session state.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me answers GET /v1/auth/me with the validated session behind the auth
// gate.
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := domain.GetAdminSessionFromContext(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Subject:   session.Subject,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) sessionCookie(value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
