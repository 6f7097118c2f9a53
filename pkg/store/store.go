// Package store defines the persistence contract for campus-map entities and
// the configuration-driven selection of its interchangeable backends.
//
// Three backends implement the same Store interface: a relational store
// backed by GORM (SQLite or PostgreSQL), a document store backed by BadgerDB,
// and an in-memory store for tests and development. The backend is chosen
// once at startup from configuration; call sites never branch on it.
package store

import (
	"context"
	"fmt"

	"campusmap/pkg/models"
	"campusmap/pkg/store/badgerstore"
	"campusmap/pkg/store/gormstore"
	"campusmap/pkg/store/memorystore"
)

// Store is the persistence contract shared by every backend.
//
// Semantics common to all methods:
//   - Single-entity lookups return models.ErrNotFound when nothing matches.
//   - List and parent-scoped queries return an empty slice, never an error,
//     when nothing matches.
//   - Create generates a fresh UUID, applies field defaults, and returns the
//     stored record including generated fields.
//   - Update is a full replacement of the record at id with defaults
//     re-applied. It does not check prior existence (permissive upsert).
//   - Delete reports success even when nothing existed at id.
//   - Errors surface only on transport or datastore failure.
type Store interface {
	// Buildings
	ListBuildings(ctx context.Context) ([]*models.Building, error)
	GetBuilding(ctx context.Context, id string) (*models.Building, error)
	CreateBuilding(ctx context.Context, in models.InsertBuilding) (*models.Building, error)
	UpdateBuilding(ctx context.Context, id string, in models.InsertBuilding) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id string) error

	// Floors
	ListFloors(ctx context.Context) ([]*models.Floor, error)
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
	FloorsByBuilding(ctx context.Context, buildingID string) ([]*models.Floor, error)
	CreateFloor(ctx context.Context, in models.InsertFloor) (*models.Floor, error)
	UpdateFloor(ctx context.Context, id string, in models.InsertFloor) (*models.Floor, error)
	DeleteFloor(ctx context.Context, id string) error

	// Rooms
	ListRooms(ctx context.Context) ([]*models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	RoomsByFloor(ctx context.Context, floorID string) ([]*models.Room, error)
	RoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error)
	CreateRoom(ctx context.Context, in models.InsertRoom) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, in models.InsertRoom) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	// Staff
	ListStaff(ctx context.Context) ([]*models.Staff, error)
	GetStaffMember(ctx context.Context, id string) (*models.Staff, error)
	StaffByBuilding(ctx context.Context, buildingID string) ([]*models.Staff, error)
	CreateStaff(ctx context.Context, in models.InsertStaff) (*models.Staff, error)
	UpdateStaff(ctx context.Context, id string, in models.InsertStaff) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error

	// Events
	ListEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, in models.InsertEvent) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	// Walkpaths
	ListWalkpaths(ctx context.Context) ([]*models.Walkpath, error)
	GetWalkpath(ctx context.Context, id string) (*models.Walkpath, error)
	CreateWalkpath(ctx context.Context, in models.InsertWalkpath) (*models.Walkpath, error)
	UpdateWalkpath(ctx context.Context, id string, in models.InsertWalkpath) (*models.Walkpath, error)
	DeleteWalkpath(ctx context.Context, id string) error

	// Drivepaths
	ListDrivepaths(ctx context.Context) ([]*models.Drivepath, error)
	GetDrivepath(ctx context.Context, id string) (*models.Drivepath, error)
	CreateDrivepath(ctx context.Context, in models.InsertDrivepath) (*models.Drivepath, error)
	UpdateDrivepath(ctx context.Context, id string, in models.InsertDrivepath) (*models.Drivepath, error)
	DeleteDrivepath(ctx context.Context, id string) error

	// Admin users. Lookup is by username only; credential verification is
	// the auth layer's responsibility.
	ListAdmins(ctx context.Context) ([]*models.AdminUser, error)
	AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, in models.InsertAdminUser) (*models.AdminUser, error)

	// Settings. UpdateSetting is the one mutating path with a real
	// precondition: it returns models.ErrNotFound for an unknown key and
	// never creates a new setting.
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	CreateSetting(ctx context.Context, in models.InsertSetting) (*models.Setting, error)
	UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error)

	// Healthcheck verifies the backing datastore is reachable.
	Healthcheck(ctx context.Context) error

	// Close releases the backing datastore.
	Close() error
}

// Type identifies a storage backend.
type Type string

const (
	// TypeSQLite uses GORM with the pure-Go SQLite driver (default).
	TypeSQLite Type = "sqlite"

	// TypePostgres uses GORM with the PostgreSQL driver.
	TypePostgres Type = "postgres"

	// TypeBadger uses BadgerDB as an embedded document store.
	TypeBadger Type = "badger"

	// TypeMemory keeps everything in process memory. Data does not survive
	// restarts; intended for tests and local development.
	TypeMemory Type = "memory"
)

// Config selects and configures a storage backend.
type Config struct {
	Type     Type                 `mapstructure:"type" yaml:"type"`
	SQLite   gormstore.SQLiteConfig   `mapstructure:"sqlite" yaml:"sqlite"`
	Postgres gormstore.PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Badger   badgerstore.Config       `mapstructure:"badger" yaml:"badger"`
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.Type == "" {
		c.Type = TypeSQLite
	}
	switch c.Type {
	case TypeSQLite:
		c.SQLite.ApplyDefaults()
	case TypePostgres:
		c.Postgres.ApplyDefaults()
	case TypeBadger:
		c.Badger.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Type {
	case TypeSQLite:
		return c.SQLite.Validate()
	case TypePostgres:
		return c.Postgres.Validate()
	case TypeBadger:
		return c.Badger.Validate()
	case TypeMemory:
		return nil
	default:
		return fmt.Errorf("unsupported store type: %s", c.Type)
	}
}

// New opens the backend selected by the configuration.
func New(config Config) (Store, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}

	switch config.Type {
	case TypeSQLite:
		return gormstore.New(gormstore.Config{Dialect: gormstore.DialectSQLite, SQLite: config.SQLite})
	case TypePostgres:
		return gormstore.New(gormstore.Config{Dialect: gormstore.DialectPostgres, Postgres: config.Postgres})
	case TypeBadger:
		return badgerstore.New(config.Badger)
	case TypeMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
