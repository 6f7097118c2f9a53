package models

import "time"

// DefaultEventCategory is the classification used when an event is created
// without one.
const DefaultEventCategory = "Event"

// Event is a scheduled campus event, optionally tied to a building.
type Event struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Category   string    `gorm:"size:64" json:"category"`
	Title      string    `gorm:"not null;size:255" json:"title"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	BuildingID string    `gorm:"index;size:36" json:"buildingId"`
	Location   string    `gorm:"size:255" json:"location"`
}

// TableName returns the table name for Event.
func (Event) TableName() string {
	return "events"
}

// InsertEvent is the insertable shape of Event.
type InsertEvent struct {
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	BuildingID string    `json:"buildingId"`
	Location   string    `json:"location"`
}

// NewEvent builds an Event record from its insertable fields and a generated
// id, applying field defaults.
func NewEvent(in InsertEvent, id string) *Event {
	category := in.Category
	if category == "" {
		category = DefaultEventCategory
	}
	return &Event{
		ID:         id,
		Category:   category,
		Title:      in.Title,
		StartsAt:   in.StartsAt,
		EndsAt:     in.EndsAt,
		BuildingID: in.BuildingID,
		Location:   in.Location,
	}
}
