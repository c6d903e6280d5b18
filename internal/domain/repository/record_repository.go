package repository

import (
	"context"
	"errors"
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when a log record does not exist within the farm.
var ErrRecordNotFound = errors.New("record not found")

const (
	DefaultRecordLimit = 50
	MaxRecordLimit     = 500
)

// RecordQuery filters a record listing. Results are ordered by date, newest first.
// Attribute filters apply only to kinds carrying that attribute; Crop and
// Species compare case-insensitively.
type RecordQuery struct {
	From     *time.Time
	To       *time.Time
	FieldID  *uuid.UUID
	Crop     string
	AnimalID string
	Species  string
	Limit    int
	Offset   int
}

// EndOfDay returns the last instant of t's calendar day that the store can
// represent, so a date-only upper bound covers the whole day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Microsecond)
}

// Normalized clamps the paging window.
func (q RecordQuery) Normalized() RecordQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultRecordLimit
	case q.Limit > MaxRecordLimit:
		q.Limit = MaxRecordLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	return q
}

// RecordRepository persists one log kind. Every call is scoped to a farm.
type RecordRepository[E any] interface {
	Create(ctx context.Context, record *E) error
	FindByID(ctx context.Context, farmID, id uuid.UUID) (*E, error)
	List(ctx context.Context, farmID uuid.UUID, query RecordQuery) ([]*E, error)
	Update(ctx context.Context, record *E) error
	Delete(ctx context.Context, farmID, id uuid.UUID) error
}

// RecordRepositories bundles the repository of every log kind.
type RecordRepositories struct {
	Planting   RecordRepository[entity.PlantingLog]
	Harvesting RecordRepository[entity.HarvestingLog]
	Soil       RecordRepository[entity.SoilLog]
	Weather    RecordRepository[entity.WeatherLog]
	Fertilizer RecordRepository[entity.FertilizerLog]
	Irrigation RecordRepository[entity.IrrigationLog]
	Revenue    RecordRepository[entity.RevenueLog]
	Expense    RecordRepository[entity.ExpenseLog]
	Health     RecordRepository[entity.HealthLog]
	Breeding   RecordRepository[entity.BreedingLog]
	Task       RecordRepository[entity.TaskLog]
}
