package models

// DefaultBuildingIcon is the marker icon used when a building is created
// without one.
const DefaultBuildingIcon = "building"

// Building is a campus building shown as a marker on the map.
//
// A building loosely owns floors and staff through their BuildingID soft
// foreign keys; the storage layer does not enforce those references.
type Building struct {
	ID   string  `gorm:"primaryKey;size:36" json:"id"`
	Name string  `gorm:"not null;size:255" json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Icon string  `gorm:"size:64" json:"icon"`
}

// TableName returns the table name for Building.
func (Building) TableName() string {
	return "buildings"
}

// InsertBuilding is the insertable shape of Building: every field a caller
// may supply, without the generated ID.
type InsertBuilding struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Icon string  `json:"icon"`
}

// NewBuilding builds a Building record from its insertable fields and a
// generated id, applying field defaults.
func NewBuilding(in InsertBuilding, id string) *Building {
	icon := in.Icon
	if icon == "" {
		icon = DefaultBuildingIcon
	}
	return &Building{
		ID:   id,
		Name: in.Name,
		Lat:  in.Lat,
		Lng:  in.Lng,
		Icon: icon,
	}
}
