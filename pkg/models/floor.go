package models

// Floor is a single level of a building.
type Floor struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BuildingID string `gorm:"index;size:36" json:"buildingId"`
	Level      int    `json:"level"`
	Label      string `gorm:"size:64" json:"label"`
}

// TableName returns the table name for Floor.
func (Floor) TableName() string {
	return "floors"
}

// InsertFloor is the insertable shape of Floor.
type InsertFloor struct {
	BuildingID string `json:"buildingId"`
	Level      int    `json:"level"`
	Label      string `json:"label"`
}

// NewFloor builds a Floor record from its insertable fields and a generated id.
func NewFloor(in InsertFloor, id string) *Floor {
	return &Floor{
		ID:         id,
		BuildingID: in.BuildingID,
		Level:      in.Level,
		Label:      in.Label,
	}
}
