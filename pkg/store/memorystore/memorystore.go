// Package memorystore implements the campus-map store in process memory.
// Nothing survives a restart; it backs tests and local development.
package memorystore

import (
	"context"
	"sync"

	"campusmap/pkg/models"
)

// collection is a mutex-guarded map of records keyed by id. Records are
// stored and returned by value so callers never alias internal state.
type collection[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{records: make(map[string]T)}
}

func (c *collection[T]) list(filter func(T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]*T, 0, len(c.records))
	for _, record := range c.records {
		if filter == nil || filter(record) {
			record := record
			results = append(results, &record)
		}
	}
	return results
}

func (c *collection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &record, nil
}

func (c *collection[T]) put(id string, record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[id] = record
}

func (c *collection[T]) putIfAbsent(id string, record T, dupErr error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[id]; ok {
		return dupErr
	}
	c.records[id] = record
	return nil
}

func (c *collection[T]) delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, id)
}

// MemoryStore implements the campus-map store with in-memory maps.
type MemoryStore struct {
	buildings  *collection[models.Building]
	floors     *collection[models.Floor]
	rooms      *collection[models.Room]
	staff      *collection[models.Staff]
	events     *collection[models.Event]
	walkpaths  *collection[models.Walkpath]
	drivepaths *collection[models.Drivepath]
	admins     *collection[models.AdminUser]
	settings   *collection[models.Setting]
}

// New creates an empty in-memory store.
func New() *MemoryStore {
	return &MemoryStore{
		buildings:  newCollection[models.Building](),
		floors:     newCollection[models.Floor](),
		rooms:      newCollection[models.Room](),
		staff:      newCollection[models.Staff](),
		events:     newCollection[models.Event](),
		walkpaths:  newCollection[models.Walkpath](),
		drivepaths: newCollection[models.Drivepath](),
		admins:     newCollection[models.AdminUser](),
		settings:   newCollection[models.Setting](),
	}
}

// Healthcheck always succeeds for the in-memory store.
func (s *MemoryStore) Healthcheck(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
