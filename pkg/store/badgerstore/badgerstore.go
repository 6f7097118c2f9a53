// Package badgerstore implements the campus-map store on BadgerDB, an
// embedded key-value store used here as a document store.
//
// Records are JSON documents under prefixed keys, one prefix per entity type:
//
//	Entity      Key format
//	=================================
//	Building    b:<uuid>
//	Floor       fl:<uuid>
//	Room        r:<uuid>
//	Staff       st:<uuid>
//	Event       e:<uuid>
//	Walkpath    wp:<uuid>
//	Drivepath   dp:<uuid>
//	AdminUser   adm:<username>
//	Setting     set:<key>
//
// Admin users and settings are addressed by their natural key (username,
// setting key) rather than a generated id. Parent-scoped queries are prefix
// scans with an in-memory filter; campus datasets are small enough that no
// secondary index is kept.
package badgerstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
)

// Config contains BadgerDB-specific configuration.
type Config struct {
	// Path is the directory holding the Badger database.
	// Default: $XDG_CONFIG_HOME/campusmap/badger
	Path string `mapstructure:"path" yaml:"path"`

	// InMemory keeps the database entirely in memory. Intended for tests.
	InMemory bool `mapstructure:"in_memory" yaml:"in_memory"`
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.Path == "" && !c.InMemory {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
		c.Path = filepath.Join(configDir, "campusmap", "badger")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Path == "" && !c.InMemory {
		return fmt.Errorf("badger path is required")
	}
	return nil
}

// BadgerStore implements the campus-map store on BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// New opens the Badger database at the configured path.
func New(config Config) (*BadgerStore, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(config.Path).WithLogger(nil)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Healthcheck verifies the database can serve a read transaction.
func (s *BadgerStore) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		return nil
	})
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

const (
	prefixBuilding  = "b:"
	prefixFloor     = "fl:"
	prefixRoom      = "r:"
	prefixStaff     = "st:"
	prefixEvent     = "e:"
	prefixWalkpath  = "wp:"
	prefixDrivepath = "dp:"
	prefixAdmin     = "adm:"
	prefixSetting   = "set:"
)

func key(prefix, id string) []byte {
	return []byte(prefix + id)
}
