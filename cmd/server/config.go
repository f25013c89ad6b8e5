package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/unitconv/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig(searchPaths ...string) (*config.Config, error) {
	cfg, err := config.Load(searchPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, nil
}
