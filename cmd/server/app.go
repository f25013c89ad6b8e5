package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/unitconv/internal/config"
	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/platform/metrics"
	"github.com/phrazzld/unitconv/internal/service/converter"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	registry  *units.Registry
	converter converter.Service
	metrics   *metrics.Metrics
}

// newApplication creates a new application instance over the built-in unit
// catalog.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		registry: units.Default(),
		metrics:  metrics.New(),
	}

	var err error
	app.converter, err = converter.NewService(app.registry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create converter service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"categories", len(app.registry.Categories()))
	return app, nil
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
