// Package main implements the entry point for the todo API server, an
// in-memory task-list service exposed over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

func main() {
	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(cfg, slog.Default())

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server terminated with error: %v", err)
	}
}

// initializeApp loads configuration and sets up application-wide logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"max_body_bytes", cfg.Server.MaxBodyBytes)

	return cfg, nil
}
