package main

import (
	"context"
	"fmt"
	"os"

	"folio/config"
	"folio/di"
	"folio/driver/folio_db"
	"folio/rest"
	"folio/utils/logger"
)

func main() {
	log := logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// A failed or absent database connection is not fatal: public reads
	// resolve from static config, admin writes report the store as down.
	pool, err := folio_db.InitPool(ctx, cfg)
	if err != nil {
		log.Warn("database unavailable, serving static content only", "error", err)
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
	}

	components := di.NewApplicationComponents(pool, cfg)

	e := rest.NewServer(components)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("starting server", "address", address)
	if err := e.Start(address); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
