package gormstore_test

import (
	"testing"

	"campusmap/pkg/store"
	"campusmap/pkg/store/gormstore"
	"campusmap/pkg/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) store.Store {
		s, err := gormstore.New(gormstore.Config{
			Dialect: gormstore.DialectSQLite,
			SQLite:  gormstore.SQLiteConfig{Path: ":memory:"},
		})
		if err != nil {
			t.Fatalf("gormstore.New() failed: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestConfigDefaults(t *testing.T) {
	t.Run("sqlite path default", func(t *testing.T) {
		cfg := gormstore.SQLiteConfig{}
		cfg.ApplyDefaults()
		if cfg.Path == "" {
			t.Error("expected default sqlite path")
		}
	})

	t.Run("postgres defaults", func(t *testing.T) {
		cfg := gormstore.PostgresConfig{Host: "db", Database: "campusmap", User: "campusmap"}
		cfg.ApplyDefaults()
		if cfg.Port != 5432 {
			t.Errorf("Port = %d, want 5432", cfg.Port)
		}
		if cfg.SSLMode != "disable" {
			t.Errorf("SSLMode = %q, want disable", cfg.SSLMode)
		}
	})

	t.Run("postgres validation", func(t *testing.T) {
		cfg := gormstore.PostgresConfig{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for empty postgres config")
		}
	})

	t.Run("postgres dsn", func(t *testing.T) {
		cfg := gormstore.PostgresConfig{Host: "db", Port: 5433, Database: "campus", User: "u", Password: "p", SSLMode: "disable"}
		want := "host=db port=5433 user=u password=p dbname=campus sslmode=disable"
		if got := cfg.DSN(); got != want {
			t.Errorf("DSN() = %q, want %q", got, want)
		}
	})
}
