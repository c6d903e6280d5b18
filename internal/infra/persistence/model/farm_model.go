package model

import (
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FarmModel mirrors the 'farms' table.
type FarmModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OwnerID   string                      `gorm:"type:varchar(128);index;not null"`
	FarmName  string                      `gorm:"type:varchar(150);not null"`
	Staff     datatypes.JSONSlice[string] `gorm:"not null"`
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}

func ToFarmDomain(m *FarmModel) *entity.Farm {
	if m == nil {
		return nil
	}

	return &entity.Farm{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		FarmName:  m.FarmName,
		Staff:     append([]string{}, m.Staff...),
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromFarmDomain(f *entity.Farm) *FarmModel {
	staff := f.Staff
	if staff == nil {
		staff = []string{}
	}

	return &FarmModel{
		ID:        f.ID,
		OwnerID:   f.OwnerID,
		FarmName:  f.FarmName,
		Staff:     datatypes.NewJSONSlice(staff),
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
