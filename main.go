// Package main is the entry point for the Pressroom API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"pressroom/src/app/server"
	"pressroom/src/infra/config"
	"pressroom/src/infra/db"
	"pressroom/src/infra/logger"
	"pressroom/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Apply pending migrations before serving traffic
	if err := pg.Migrate(cfg.Database.MigrationsPath); err != nil {
		return err
	}

	// Initialize repositories
	articleRepo := repo.NewArticleRepository(pg.Pool, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, articleRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
