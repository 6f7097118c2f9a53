package models

// Room is a named space on a floor. BuildingID is denormalized from the
// owning floor so rooms can be listed per building without a join.
type Room struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	FloorID    string `gorm:"index;size:36" json:"floorId"`
	BuildingID string `gorm:"index;size:36" json:"buildingId"`
	Name       string `gorm:"not null;size:255" json:"name"`
	Geometry   string `gorm:"type:text" json:"geometry"`
}

// TableName returns the table name for Room.
func (Room) TableName() string {
	return "rooms"
}

// InsertRoom is the insertable shape of Room.
type InsertRoom struct {
	FloorID    string `json:"floorId"`
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
	Geometry   string `json:"geometry"`
}

// NewRoom builds a Room record from its insertable fields and a generated id.
func NewRoom(in InsertRoom, id string) *Room {
	return &Room{
		ID:         id,
		FloorID:    in.FloorID,
		BuildingID: in.BuildingID,
		Name:       in.Name,
		Geometry:   in.Geometry,
	}
}
