package models

// Walkpath is an ordered sequence of coordinates describing a pedestrian
// route across campus. It has no owner beyond its own identity.
type Walkpath struct {
	ID     string    `gorm:"primaryKey;size:36" json:"id"`
	Name   string    `gorm:"size:255" json:"name"`
	Points PointList `gorm:"type:text" json:"points"`
}

// TableName returns the table name for Walkpath.
func (Walkpath) TableName() string {
	return "walkpaths"
}

// InsertWalkpath is the insertable shape of Walkpath.
type InsertWalkpath struct {
	Name   string    `json:"name"`
	Points PointList `json:"points"`
}

// NewWalkpath builds a Walkpath record from its insertable fields and a
// generated id.
func NewWalkpath(in InsertWalkpath, id string) *Walkpath {
	return &Walkpath{ID: id, Name: in.Name, Points: in.Points}
}

// Drivepath is an ordered sequence of coordinates describing a vehicle
// route across campus.
type Drivepath struct {
	ID     string    `gorm:"primaryKey;size:36" json:"id"`
	Name   string    `gorm:"size:255" json:"name"`
	Points PointList `gorm:"type:text" json:"points"`
}

// TableName returns the table name for Drivepath.
func (Drivepath) TableName() string {
	return "drivepaths"
}

// InsertDrivepath is the insertable shape of Drivepath.
type InsertDrivepath struct {
	Name   string    `json:"name"`
	Points PointList `json:"points"`
}

// NewDrivepath builds a Drivepath record from its insertable fields and a
// generated id.
func NewDrivepath(in InsertDrivepath, id string) *Drivepath {
	return &Drivepath{ID: id, Name: in.Name, Points: in.Points}
}
