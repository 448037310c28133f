package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultsApplied(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "folio_session", cfg.Auth.CookieName)
	assert.Equal(t, 5.0, cfg.RateLimit.AnalyticsRPS)
	assert.Equal(t, 10, cfg.RateLimit.AnalyticsBurst)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, 200, cfg.Search.MaxQueryLength)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "5")
	t.Setenv("AUTH_COOKIE_SECURE", "false")
	t.Setenv("RATE_LIMIT_ANALYTICS_RPS", "2.5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 2.5, cfg.RateLimit.AnalyticsRPS)
}

func TestNewConfig_SecretFileWinsOverEnv(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "session_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("file-secret-0123456789\n"), 0o600))

	t.Setenv("AUTH_SESSION_SECRET", "env-secret-0123456789")
	t.Setenv("AUTH_SESSION_SECRET_FILE", secretFile)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-secret-0123456789", cfg.Auth.SessionSecret)
}

func TestNewConfig_ShortSecretRejected(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "tooshort")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_InvalidPortRejected(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_MissingSecretIsAllowed(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.SessionSecret)
}
