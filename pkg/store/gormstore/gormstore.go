// Package gormstore implements the campus-map store on a relational database
// through GORM, with interchangeable SQLite and PostgreSQL dialectors.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusmap/pkg/models"
)

// Dialect selects the SQL dialect backing the store.
type Dialect string

const (
	// DialectSQLite uses the pure-Go SQLite driver (single-node, default).
	DialectSQLite Dialect = "sqlite"

	// DialectPostgres uses the PostgreSQL driver.
	DialectPostgres Dialect = "postgres"
)

// SQLiteConfig contains SQLite-specific configuration.
type SQLiteConfig struct {
	// Path is the path to the SQLite database file.
	// Default: $XDG_CONFIG_HOME/campusmap/campusmap.db
	Path string `mapstructure:"path" yaml:"path"`
}

// ApplyDefaults fills in missing configuration with default values.
func (c *SQLiteConfig) ApplyDefaults() {
	if c.Path == "" {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
		c.Path = filepath.Join(configDir, "campusmap", "campusmap.db")
	}
}

// Validate checks if the configuration is valid.
func (c *SQLiteConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("sqlite path is required")
	}
	return nil
}

// PostgresConfig contains PostgreSQL-specific configuration.
type PostgresConfig struct {
	Host         string `mapstructure:"host" yaml:"host"`
	Port         int    `mapstructure:"port" yaml:"port"`
	Database     string `mapstructure:"database" yaml:"database"`
	User         string `mapstructure:"user" yaml:"user"`
	Password     string `mapstructure:"password" yaml:"password"`
	SSLMode      string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
}

// DSN returns the PostgreSQL connection string.
func (c *PostgresConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		c.Host, c.Port, c.User, c.Password, c.Database)
	if c.SSLMode != "" {
		dsn += fmt.Sprintf(" sslmode=%s", c.SSLMode)
	}
	return dsn
}

// ApplyDefaults fills in missing configuration with default values.
func (c *PostgresConfig) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
}

// Validate checks if the configuration is valid.
func (c *PostgresConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("postgres host is required")
	}
	if c.Database == "" {
		return fmt.Errorf("postgres database is required")
	}
	if c.User == "" {
		return fmt.Errorf("postgres user is required")
	}
	return nil
}

// Config contains the relational store configuration.
type Config struct {
	Dialect  Dialect
	SQLite   SQLiteConfig
	Postgres PostgresConfig
}

// GORMStore implements the campus-map store on a relational database.
// It supports both SQLite and PostgreSQL backends via the same codebase.
type GORMStore struct {
	db *gorm.DB
}

// New opens a relational store and creates the schema via GORM AutoMigrate.
func New(config Config) (*GORMStore, error) {
	var dialector gorm.Dialector
	switch config.Dialect {
	case DialectSQLite, "":
		config.SQLite.ApplyDefaults()
		if err := config.SQLite.Validate(); err != nil {
			return nil, err
		}
		if config.SQLite.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(config.SQLite.Path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		// WAL for concurrent readers, busy_timeout to ride out short lock
		// contention instead of failing immediately.
		dsn := config.SQLite.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		dialector = sqlite.Open(dsn)

	case DialectPostgres:
		config.Postgres.ApplyDefaults()
		if err := config.Postgres.Validate(); err != nil {
			return nil, err
		}
		dialector = postgres.Open(config.Postgres.DSN())

	default:
		return nil, fmt.Errorf("unsupported dialect: %s", config.Dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if config.Dialect == DialectPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying database: %w", err)
		}
		sqlDB.SetMaxOpenConns(config.Postgres.MaxOpenConns)
		sqlDB.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	}

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to run database migration: %w", err)
	}

	return &GORMStore{db: db}, nil
}

// NewWithDB wraps an existing GORM connection. Intended for tests.
func NewWithDB(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to run database migration: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// DB returns the underlying GORM database connection.
func (s *GORMStore) DB() *gorm.DB {
	return s.db
}

// Healthcheck verifies the database connection is usable.
func (s *GORMStore) Healthcheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isUniqueConstraintError checks if the error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// SQLite or PostgreSQL unique constraint errors
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "constraint failed") ||
		strings.Contains(errStr, "duplicate key value violates unique constraint")
}

// convertNotFoundError converts gorm.ErrRecordNotFound to models.ErrNotFound.
func convertNotFoundError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
