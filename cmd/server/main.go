// Package main implements the entry point for the unit conversion server,
// which exposes the conversion engine over a small JSON API.
package main

import (
	"context"
	"fmt"
	"log"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run wires configuration, logging and the engine, then serves until the
// context is canceled or the process receives SIGINT or SIGTERM.
func run(ctx context.Context, configPaths ...string) error {
	cfg, err := loadAppConfig(configPaths...)
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
