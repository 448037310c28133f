package config

import "fmt"

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateAuthConfig(config *AuthConfig) error {
	if config.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %v", config.SessionTTL)
	}

	if config.CookieName == "" {
		return fmt.Errorf("cookie name must not be empty")
	}

	// Secret and password may legitimately be absent; without them the
	// admin surface rejects every request but public reads keep working.
	if config.SessionSecret != "" && len(config.SessionSecret) < 16 {
		return fmt.Errorf("session secret must be at least 16 bytes, got %d", len(config.SessionSecret))
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.AnalyticsRPS <= 0 {
		return fmt.Errorf("analytics RPS must be positive, got %v", config.AnalyticsRPS)
	}

	if config.AnalyticsBurst < 1 {
		return fmt.Errorf("analytics burst must be at least 1, got %d", config.AnalyticsBurst)
	}

	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	if config.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", config.DefaultLimit)
	}

	if config.MaxLimit < config.DefaultLimit {
		return fmt.Errorf("max limit must be >= default limit, got %d < %d", config.MaxLimit, config.DefaultLimit)
	}

	if config.MaxQueryLength < 1 {
		return fmt.Errorf("max query length must be at least 1, got %d", config.MaxQueryLength)
	}

	return nil
}
