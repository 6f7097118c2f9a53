package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campusmap/internal/logger"
	"campusmap/pkg/config"
	"campusmap/pkg/metrics"
	"campusmap/pkg/offline"
)

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Start the offline cache proxy",
	Long: `Start a local proxy that keeps the map usable without connectivity.

The proxy warms its caches from the upstream server on startup, then serves
map tiles and static assets cache-first and API data stale-while-revalidate.
Cached data from older cache versions is swept on activation.

Examples:
  # Proxy the configured upstream on the default port
  campusmap offline

  # Use an in-memory cache instead of the persistent one
  campusmap offline --memory`,
	RunE: runOffline,
}

var offlineMemory bool

func init() {
	offlineCmd.Flags().BoolVar(&offlineMemory, "memory", false, "Use an in-memory cache instead of the persistent one")
}

func newOfflineStorage(cfg config.OfflineConfig) (offline.Storage, error) {
	if offlineMemory || cfg.Backend == "memory" {
		return offline.NewMemoryStorage(), nil
	}

	storage, err := offline.NewBadgerStorage(offline.BadgerConfig{Path: cfg.CachePath})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache storage: %w", err)
	}
	return storage, nil
}

func runOffline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	storage, err := newOfflineStorage(cfg.Offline)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close cache storage", "error", err)
		}
	}()

	var offlineMetrics *metrics.OfflineMetrics
	if cfg.Metrics.Enabled {
		offlineMetrics = metrics.NewOfflineMetrics(metrics.NewRegistry())
	}

	controller := offline.New(cfg.Offline.Config, storage, nil, offlineMetrics)
	defer func() { _ = controller.Close() }()

	if err := controller.Install(ctx); err != nil {
		return fmt.Errorf("failed to warm caches: %w", err)
	}
	if err := controller.Activate(ctx); err != nil {
		return fmt.Errorf("failed to activate cache version: %w", err)
	}

	proxy, err := offline.NewProxy(cfg.Offline.Upstream, controller)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Offline.ListenPort),
		Handler: proxy,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("offline proxy listening",
			"port", cfg.Offline.ListenPort,
			"upstream", cfg.Offline.Upstream,
			"version", cfg.Offline.VersionTag)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down offline proxy")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}
