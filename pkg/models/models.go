// Package models defines the campus-map entity types shared by every storage
// backend and the HTTP API.
//
// Entities are identified by generated UUID strings that never change once
// assigned. References between entities (BuildingID, FloorID) are soft
// foreign keys: the storage layer does not validate that the referenced
// record exists. Updates are full replacements and deletes are hard deletes.
//
// Each entity has an Insert* companion type (the caller-supplied fields) and
// a New* constructor that combines the insertable fields with a generated id
// and applies field defaults, so default application is an explicit, testable
// step rather than an inline expression at every call site.
package models

// AllModels returns every model for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Building{},
		&Floor{},
		&Room{},
		&Staff{},
		&Event{},
		&Walkpath{},
		&Drivepath{},
		&AdminUser{},
		&Setting{},
	}
}
