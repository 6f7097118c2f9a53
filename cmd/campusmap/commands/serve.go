package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"campusmap/internal/logger"
	"campusmap/pkg/api"
	"campusmap/pkg/metrics"
	"campusmap/pkg/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CampusMap API server",
	Long: `Start the CampusMap REST API server with the specified configuration.

The server exposes the map dataset (buildings, floors, rooms, staff, events,
walkpaths, drivepaths and settings) over HTTP. Read endpoints are public;
mutations require a JWT obtained via /api/auth/login.

Examples:
  # Start with default config location
  campusmap serve

  # Start with custom config file
  campusmap serve --config /etc/campusmap/config.yaml

  # Start with environment variable overrides
  CAMPUSMAP_LOGGING_LEVEL=DEBUG campusmap serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider := store.NewProvider(cfg.Database)
	st, err := provider.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	if err := bootstrapAdmin(ctx, st, cfg.Admin); err != nil {
		return err
	}

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = metrics.NewRegistry()
	}

	server, err := api.NewServer(cfg.Server, st, registry)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	logger.Info("starting CampusMap server",
		"version", Version,
		"port", cfg.Server.Port,
		"store", cfg.Database.Type,
		"metrics", cfg.Metrics.Enabled)

	return server.Start(ctx)
}
