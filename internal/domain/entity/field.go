package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Field is a parcel of land belonging to a farm.
type Field struct {
	ID           uuid.UUID       `json:"field_id"`
	FarmID       uuid.UUID       `json:"farm_id"`
	Name         string          `json:"name"`
	SizeHectares float64         `json:"size_hectares"`
	CropType     string          `json:"crop_type,omitempty"`
	SoilType     string          `json:"soil_type,omitempty"`
	Boundary     json.RawMessage `json:"boundary,omitempty"` // GeoJSON Polygon
	Centroid     *GeoPoint       `json:"centroid,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
