package model

import (
	"encoding/json"
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldModel mirrors the 'fields' table. Boundary holds a GeoJSON Polygon.
type FieldModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Name              string    `gorm:"type:varchar(150);not null"`
	SizeHectares      float64
	CropType          string `gorm:"type:varchar(100)"`
	SoilType          string `gorm:"type:varchar(100)"`
	Boundary          *datatypes.JSON
	CentroidLatitude  *float64
	CentroidLongitude *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (FieldModel) TableName() string {
	return "fields"
}

func ToFieldDomain(m *FieldModel) *entity.Field {
	if m == nil {
		return nil
	}

	field := &entity.Field{
		ID:           m.ID,
		FarmID:       m.FarmID,
		Name:         m.Name,
		SizeHectares: m.SizeHectares,
		CropType:     m.CropType,
		SoilType:     m.SoilType,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Boundary != nil && len(*m.Boundary) > 0 {
		field.Boundary = json.RawMessage(*m.Boundary)
	}
	if m.CentroidLatitude != nil && m.CentroidLongitude != nil {
		field.Centroid = &entity.GeoPoint{Latitude: *m.CentroidLatitude, Longitude: *m.CentroidLongitude}
	}

	return field
}

func FromFieldDomain(f *entity.Field) *FieldModel {
	m := &FieldModel{
		ID:           f.ID,
		FarmID:       f.FarmID,
		Name:         f.Name,
		SizeHectares: f.SizeHectares,
		CropType:     f.CropType,
		SoilType:     f.SoilType,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
	if len(f.Boundary) > 0 {
		boundary := datatypes.JSON(f.Boundary)
		m.Boundary = &boundary
	}
	if f.Centroid != nil {
		lat, lng := f.Centroid.Latitude, f.Centroid.Longitude
		m.CentroidLatitude = &lat
		m.CentroidLongitude = &lng
	}

	return m
}
