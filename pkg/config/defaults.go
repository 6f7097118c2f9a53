package config

import (
	"path/filepath"
	"strings"
	"time"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	cfg.Database.ApplyDefaults()
	cfg.Server.ApplyDefaults()
	applyOfflineDefaults(&cfg.Offline)
	applyExportDefaults(&cfg.Export)
	applyAdminDefaults(&cfg.Admin)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyOfflineDefaults sets offline proxy defaults.
func applyOfflineDefaults(cfg *OfflineConfig) {
	cfg.Config.ApplyDefaults()
	if cfg.ListenPort == 0 {
		cfg.ListenPort = 9000
	}
	if cfg.Backend == "" {
		cfg.Backend = "badger"
	}
	if cfg.Upstream == "" {
		cfg.Upstream = "http://localhost:8080"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = filepath.Join(getConfigDir(), "offline-cache")
	}
}

// applyExportDefaults sets export defaults.
func applyExportDefaults(cfg *ExportConfig) {
	if cfg.Path == "" {
		cfg.Path = "campusmap-export.json"
	}
}

// applyAdminDefaults sets admin user defaults.
func applyAdminDefaults(cfg *AdminConfig) {
	if cfg.Username == "" {
		cfg.Username = "admin"
	}
	// PasswordHash has no default - it is set during bootstrap
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
