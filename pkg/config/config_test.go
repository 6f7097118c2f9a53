package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"campusmap/pkg/store"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected defaults, got error: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default log level INFO, got %q", cfg.Logging.Level)
	}
	if cfg.Database.Type != store.TypeSQLite {
		t.Errorf("expected default database type sqlite, got %q", cfg.Database.Type)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Offline.ListenPort != 9000 {
		t.Errorf("expected default offline listen port 9000, got %d", cfg.Offline.ListenPort)
	}
	if cfg.Offline.VersionTag != "v1" {
		t.Errorf("expected default version tag v1, got %q", cfg.Offline.VersionTag)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Admin.Username != "admin" {
		t.Errorf("expected default admin username, got %q", cfg.Admin.Username)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: json
shutdown_timeout: 10s
database:
  type: postgres
  postgres:
    host: db.internal
    user: campusmap
    password: s3cret
    database: campusmap
server:
  port: 9999
offline:
  backend: memory
  upstream: http://campus.example.org
  version_tag: v3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected log level normalized to DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Database.Type != store.TypePostgres {
		t.Errorf("expected postgres, got %q", cfg.Database.Type)
	}
	if cfg.Database.Postgres.Host != "db.internal" {
		t.Errorf("expected postgres host, got %q", cfg.Database.Postgres.Host)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Offline.Backend != "memory" {
		t.Errorf("expected memory backend, got %q", cfg.Offline.Backend)
	}
	if cfg.Offline.Upstream != "http://campus.example.org" {
		t.Errorf("expected configured upstream, got %q", cfg.Offline.Upstream)
	}
	if cfg.Offline.VersionTag != "v3" {
		t.Errorf("expected version tag v3, got %q", cfg.Offline.VersionTag)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: loud
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

func TestLoadPostgresWithoutHost(t *testing.T) {
	path := writeConfigFile(t, `
database:
  type: postgres
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing postgres host")
	}
}

func TestValidateOfflineCachePath(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Offline.Backend = "badger"
	cfg.Offline.CachePath = ""

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for missing cache path")
	}
}

func TestValidateS3RequiresRegion(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Export.S3.Bucket = "campusmap-exports"
	cfg.Export.S3.Region = ""

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for missing s3 region")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(GetDefaultConfig()); err != nil {
		t.Fatalf("expected default config to validate, got: %v", err)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Server.Port = 8181
	cfg.Offline.VersionTag = "v2"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Server.Port != 8181 {
		t.Errorf("expected port 8181 after round trip, got %d", loaded.Server.Port)
	}
	if loaded.Offline.VersionTag != "v2" {
		t.Errorf("expected version tag v2 after round trip, got %q", loaded.Offline.VersionTag)
	}
}
