package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/metrics"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/phrazzld/todo-api/internal/store/memory"
	"golang.org/x/time/rate"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// The single task store instance shared for the process lifetime.
	// It is constructed here and injected into the handler layer rather
	// than hidden behind a lazily-initialized global.
	taskStore store.TaskStore

	metrics *metrics.Metrics
	limiter *rate.Limiter
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration and logger
// that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewTaskStore(),
		metrics:   metrics.New(),
	}

	if cfg.Server.RateLimitRPS > 0 && cfg.Server.RateLimitBurst > 0 {
		app.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
		logger.Info("request rate limiting enabled",
			"rps", cfg.Server.RateLimitRPS,
			"burst", cfg.Server.RateLimitBurst)
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles shutdown of application resources. The store is
// memory-resident, so there is nothing to flush; the collection is gone
// with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
