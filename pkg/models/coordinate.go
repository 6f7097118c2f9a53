package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PointList is an ordered sequence of coordinates describing a route.
//
// It is stored as a JSON text column so the same model works across the
// SQLite and PostgreSQL dialectors without a native array type.
type PointList []Coordinate

// Value implements driver.Valuer for GORM serialization.
func (p PointList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM deserialization.
func (p *PointList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PointList", src)
	}
}
