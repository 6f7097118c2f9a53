package commands

import (
	"context"
	"errors"
	"fmt"

	"campusmap/internal/logger"
	"campusmap/pkg/config"
	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Initialize(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfigAndLogger loads the configuration from the --config flag (or the
// default location) and initializes the logger from it.
func loadConfigAndLogger() (*config.Config, error) {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return nil, err
	}
	if err := InitLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the configured persistence backend.
func openStore(cfg *config.Config) (store.Store, error) {
	st, err := store.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// bootstrapAdmin creates the configured initial admin account if it does not
// exist yet. An already-existing account is left untouched.
func bootstrapAdmin(ctx context.Context, st store.Store, cfg config.AdminConfig) error {
	if cfg.PasswordHash == "" {
		return nil
	}

	_, err := st.AdminByUsername(ctx, cfg.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	_, err = st.CreateAdmin(ctx, models.InsertAdminUser{
		Username:     cfg.Username,
		PasswordHash: cfg.PasswordHash,
	})
	if err != nil && !errors.Is(err, models.ErrDuplicateAdmin) {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("bootstrapped initial admin account", "username", cfg.Username)
	return nil
}
