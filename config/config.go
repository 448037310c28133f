package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Search    SearchConfig    `json:"search"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	AllowOrigins string        `json:"allow_origins" env:"SERVER_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"10s"`
}

type AuthConfig struct {
	SessionSecret     string        `json:"-" env:"AUTH_SESSION_SECRET"`
	SessionSecretFile string        `json:"-" env:"AUTH_SESSION_SECRET_FILE"`
	AdminPassword     string        `json:"-" env:"ADMIN_PASSWORD"`
	AdminPasswordFile string        `json:"-" env:"ADMIN_PASSWORD_FILE"`
	SessionTTL        time.Duration `json:"session_ttl" env:"AUTH_SESSION_TTL" default:"24h"`
	CookieName        string        `json:"cookie_name" env:"AUTH_COOKIE_NAME" default:"folio_session"`
	CookieSecure      bool          `json:"cookie_secure" env:"AUTH_COOKIE_SECURE" default:"true"`
}

type RateLimitConfig struct {
	AnalyticsRPS   float64 `json:"analytics_rps" env:"RATE_LIMIT_ANALYTICS_RPS" default:"5"`
	AnalyticsBurst int     `json:"analytics_burst" env:"RATE_LIMIT_ANALYTICS_BURST" default:"10"`
}

type SearchConfig struct {
	DefaultLimit   int `json:"default_limit" env:"SEARCH_DEFAULT_LIMIT" default:"20"`
	MaxLimit       int `json:"max_limit" env:"SEARCH_MAX_LIMIT" default:"100"`
	MaxQueryLength int `json:"max_query_length" env:"SEARCH_MAX_QUERY_LENGTH" default:"200"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker Secrets support: *_FILE variants win over plain env values
	if config.Auth.SessionSecretFile != "" {
		if content, err := os.ReadFile(config.Auth.SessionSecretFile); err == nil {
			config.Auth.SessionSecret = strings.TrimSpace(string(content))
		}
	}
	if config.Auth.AdminPasswordFile != "" {
		if content, err := os.ReadFile(config.Auth.AdminPasswordFile); err == nil {
			config.Auth.AdminPassword = strings.TrimSpace(string(content))
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
