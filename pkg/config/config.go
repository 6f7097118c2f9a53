// Package config loads, validates and persists the campusmap configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"campusmap/pkg/api"
	"campusmap/pkg/offline"
	"campusmap/pkg/store"
)

// Config represents the campusmap configuration.
//
// This structure captures the static configuration of the campus map server:
//   - Logging configuration
//   - Server settings (port, timeouts, JWT)
//   - Database connection (map data persistence)
//   - Offline cache proxy settings
//   - Export settings (snapshot path, optional S3 upload)
//   - Admin user setup (for initial bootstrap)
//
// Map data itself (buildings, floors, rooms, staff, events, paths, settings)
// is managed through the REST API and stored in the database.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (CAMPUSMAP_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`

	// Database configures the map data store (SQLite, PostgreSQL, Badger
	// or in-memory).
	Database store.Config `mapstructure:"database" yaml:"database"`

	// Server contains REST API server configuration
	Server api.Config `mapstructure:"server" yaml:"server"`

	// Offline contains offline cache proxy configuration
	Offline OfflineConfig `mapstructure:"offline" yaml:"offline"`

	// Export contains dataset snapshot export configuration
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Metrics contains Prometheus metrics configuration
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Admin contains initial admin user configuration for bootstrap
	Admin AdminConfig `mapstructure:"admin" yaml:"admin"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// OfflineConfig configures the offline cache proxy.
type OfflineConfig struct {
	// Controller settings: upstream origin, version tag, warm lists,
	// routing predicates.
	offline.Config `mapstructure:",squash" yaml:",inline"`

	// ListenPort is the local port the proxy serves on.
	// Default: 9000
	ListenPort int `mapstructure:"listen_port" validate:"omitempty,min=1,max=65535" yaml:"listen_port"`

	// Backend selects the cache storage: "badger" (persistent) or
	// "memory" (volatile).
	// Default: badger
	Backend string `mapstructure:"backend" validate:"omitempty,oneof=badger memory" yaml:"backend"`

	// CachePath is the directory for the persistent cache database.
	// Only used with the badger backend.
	CachePath string `mapstructure:"cache_path" yaml:"cache_path"`
}

// ExportConfig configures dataset snapshot exports.
type ExportConfig struct {
	// Path is the local file the snapshot is written to.
	// Default: campusmap-export.json
	Path string `mapstructure:"path" yaml:"path"`

	// S3 optionally uploads the snapshot to an S3 bucket.
	S3 S3Config `mapstructure:"s3" yaml:"s3"`
}

// S3Config configures the optional S3 snapshot upload.
type S3Config struct {
	// Bucket is the target bucket name. Empty disables the upload.
	Bucket string `mapstructure:"bucket" yaml:"bucket,omitempty"`

	// Region is the bucket's AWS region.
	Region string `mapstructure:"region" yaml:"region,omitempty"`

	// Prefix is prepended to the object key.
	Prefix string `mapstructure:"prefix" yaml:"prefix,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
// When Enabled is false, no metrics are collected and /metrics is not served.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is enabled
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// AdminConfig contains initial admin user configuration for bootstrap.
// This is used by 'campusmap admin create' to pre-configure the first admin.
type AdminConfig struct {
	// Username is the admin username
	// Default: "admin"
	Username string `mapstructure:"username" yaml:"username"`

	// PasswordHash is the bcrypt hash of the admin password
	PasswordHash string `mapstructure:"password_hash" yaml:"password_hash,omitempty"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (CAMPUSMAP_*)
//  2. Configuration file
//  3. Default values
//
// An empty configPath uses the default location.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	// If no config file was found, use defaults
	if !configFileFound {
		return GetDefaultConfig(), nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration with helpful error messages.
// It checks if the config file exists and provides instructions if not.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		if !DefaultConfigExists() {
			return nil, fmt.Errorf("no configuration file found at default location: %s\n\n"+
				"Please initialize a configuration file first:\n"+
				"  campusmap config init\n\n"+
				"Or specify a custom config file:\n"+
				"  campusmap <command> --config /path/to/config.yaml",
				GetDefaultConfigPath())
		}
		configPath = GetDefaultConfigPath()
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s\n\n"+
				"Please create the configuration file:\n"+
				"  campusmap config init --config %s",
				configPath, configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path in YAML.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Use yaml.Marshal directly to respect yaml tags
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Config files may contain the admin password hash and JWT secret.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the CAMPUSMAP_ prefix and underscores.
	// Example: CAMPUSMAP_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("CAMPUSMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/campusmap/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		// Also check for os.PathError when explicit config file doesn't exist
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
	)
}

// durationDecodeHook returns a mapstructure decode hook that converts strings
// to time.Duration. This enables config files to use human-readable durations
// like "30s", "5m", "1h".
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			// Assume nanoseconds for raw integers
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			// YAML often deserializes numbers as float64
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "campusmap")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "campusmap")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory path (exposed for the
// config init command).
func GetConfigDir() string {
	return getConfigDir()
}
