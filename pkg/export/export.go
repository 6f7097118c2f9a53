// Package export builds JSON snapshots of the map dataset.
//
// A snapshot contains every geographic entity plus the settings table.
// Admin accounts are deliberately excluded: they carry credential hashes
// and are not map data.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// Snapshot is the serialized form of the full dataset.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Buildings  []*models.Building  `json:"buildings"`
	Floors     []*models.Floor     `json:"floors"`
	Rooms      []*models.Room      `json:"rooms"`
	Staff      []*models.Staff     `json:"staff"`
	Events     []*models.Event     `json:"events"`
	Walkpaths  []*models.Walkpath  `json:"walkpaths"`
	Drivepaths []*models.Drivepath `json:"drivepaths"`
	Settings   []*models.Setting   `json:"settings"`
}

// Exporter reads the dataset out of a store and writes snapshots.
type Exporter struct {
	store store.Store
}

// NewExporter creates an exporter backed by the given store.
func NewExporter(st store.Store) *Exporter {
	return &Exporter{store: st}
}

// Collect reads every entity collection and assembles a snapshot.
func (e *Exporter) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: time.Now().UTC()}

	var err error
	if snap.Buildings, err = e.store.ListBuildings(ctx); err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	if snap.Floors, err = e.store.ListFloors(ctx); err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	if snap.Rooms, err = e.store.ListRooms(ctx); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if snap.Staff, err = e.store.ListStaff(ctx); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	if snap.Events, err = e.store.ListEvents(ctx); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if snap.Walkpaths, err = e.store.ListWalkpaths(ctx); err != nil {
		return nil, fmt.Errorf("list walkpaths: %w", err)
	}
	if snap.Drivepaths, err = e.store.ListDrivepaths(ctx); err != nil {
		return nil, fmt.Errorf("list drivepaths: %w", err)
	}
	if snap.Settings, err = e.store.ListSettings(ctx); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	return snap, nil
}

// WriteFile collects a snapshot and writes it to path as indented JSON.
// It returns the snapshot so callers can report counts or upload it.
func (e *Exporter) WriteFile(ctx context.Context, path string) (*Snapshot, error) {
	snap, err := e.Collect(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	return snap, nil
}

// EntityCount returns the total number of entities in the snapshot.
func (s *Snapshot) EntityCount() int {
	return len(s.Buildings) + len(s.Floors) + len(s.Rooms) + len(s.Staff) +
		len(s.Events) + len(s.Walkpaths) + len(s.Drivepaths) + len(s.Settings)
}
