package folio_db

import (
	"context"
	"fmt"
	"os"

	"folio/config"
	"folio/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitPool connects to the folio database. Connection parameters come from
// the environment (optionally via a .env file). A missing DB_HOST means the
// deployment runs without a store; callers treat a nil pool as "store
// unconfigured" and public reads degrade to static config.
func InitPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	// .env is a convenience for local development; absence is not an error.
	_ = godotenv.Load()

	if os.Getenv("DB_HOST") == "" {
		logger.Logger.Warn("DB_HOST not set, running without a store")
		return nil, nil
	}

	poolConfig, err := pgxpool.ParseConfig(connectionString())
	if err != nil {
		logger.Logger.Error("failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectionTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		logger.Logger.Error("failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(connectCtx); err != nil {
		logger.Logger.Error("failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func connectionString() string {
	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		sslMode,
	)
}
