package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/config"
	"folio/mocks"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthPort(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			CookieName:   "folio_session",
			CookieSecure: true,
			SessionTTL:   time.Hour,
		},
	}

	return NewAuthHandler(auth, cfg), auth
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	handler, auth := newAuthHandler(t)

	expiresAt := time.Now().Add(time.Hour)
	auth.EXPECT().IssueSession(gomock.Any(), "hunter2").Return("signed-token", expiresAt, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "folio_session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	handler, auth := newAuthHandler(t)

	auth.EXPECT().IssueSession(gomock.Any(), "guess").
		Return("", time.Time{}, apperrors.ErrUnauthorized)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"password":"guess"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingPasswordIs400(t *testing.T) {
	handler, _ := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	handler, _ := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}
