package models

// Setting is a flat key-value configuration entry. The key, not a generated
// id, is the addressing mode.
type Setting struct {
	Key         string `gorm:"primaryKey;size:255" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"size:255" json:"description,omitempty"`
}

// TableName returns the table name for Setting.
func (Setting) TableName() string {
	return "settings"
}

// InsertSetting is the insertable shape of Setting.
type InsertSetting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// NewSetting builds a Setting record from its insertable fields.
func NewSetting(in InsertSetting) *Setting {
	return &Setting{
		Key:         in.Key,
		Value:       in.Value,
		Description: in.Description,
	}
}
