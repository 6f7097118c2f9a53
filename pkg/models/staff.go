package models

// Staff is a staff member associated with a building.
type Staff struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BuildingID string `gorm:"index;size:36" json:"buildingId"`
	Name       string `gorm:"not null;size:255" json:"name"`
	Role       string `gorm:"size:255" json:"role"`
	Email      string `gorm:"size:255" json:"email"`
	Phone      string `gorm:"size:64" json:"phone"`
}

// TableName returns the table name for Staff.
func (Staff) TableName() string {
	return "staff"
}

// InsertStaff is the insertable shape of Staff.
type InsertStaff struct {
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// NewStaff builds a Staff record from its insertable fields and a generated id.
func NewStaff(in InsertStaff, id string) *Staff {
	return &Staff{
		ID:         id,
		BuildingID: in.BuildingID,
		Name:       in.Name,
		Role:       in.Role,
		Email:      in.Email,
		Phone:      in.Phone,
	}
}
