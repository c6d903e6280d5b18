package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind names a log collection.
type RecordKind string

const (
	RecordKindPlanting   RecordKind = "planting"
	RecordKindHarvesting RecordKind = "harvesting"
	RecordKindSoil       RecordKind = "soil"
	RecordKindWeather    RecordKind = "weather"
	RecordKindFertilizer RecordKind = "fertilizer"
	RecordKindIrrigation RecordKind = "irrigation"
	RecordKindRevenue    RecordKind = "revenue"
	RecordKindExpense    RecordKind = "expense"
	RecordKindHealth     RecordKind = "health"
	RecordKindBreeding   RecordKind = "breeding"
	RecordKindTask       RecordKind = "task"
)

// RecordKinds lists every log collection in a stable order.
var RecordKinds = []RecordKind{
	RecordKindPlanting,
	RecordKindHarvesting,
	RecordKindSoil,
	RecordKindWeather,
	RecordKindFertilizer,
	RecordKindIrrigation,
	RecordKindRevenue,
	RecordKindExpense,
	RecordKindHealth,
	RecordKindBreeding,
	RecordKindTask,
}

// RecordMeta is shared by every log record. Records are scoped to FarmID.
type RecordMeta struct {
	ID        uuid.UUID `json:"id"`
	FarmID    uuid.UUID `json:"farm_id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date" validate:"required"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta exposes the shared header to generic code.
func (m *RecordMeta) Meta() *RecordMeta {
	return m
}

// Record is implemented by pointers to every log record type.
type Record interface {
	Meta() *RecordMeta
}

// FieldLink is embedded by records that may reference a field.
type FieldLink struct {
	FieldID *uuid.UUID `json:"field_id,omitempty"`
}

// FieldRef returns the referenced field, if any.
func (l *FieldLink) FieldRef() *uuid.UUID {
	return l.FieldID
}

// FieldScoped is implemented by records carrying a FieldLink.
type FieldScoped interface {
	FieldRef() *uuid.UUID
}

type PlantingLog struct {
	RecordMeta
	FieldLink
	Crop                string     `json:"crop" validate:"required"`
	Variety             string     `json:"variety,omitempty"`
	Quantity            float64    `json:"quantity" validate:"gte=0"`
	Unit                string     `json:"unit,omitempty"`
	Method              string     `json:"method,omitempty"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date,omitempty"`
}

type HarvestingLog struct {
	RecordMeta
	FieldLink
	Crop     string  `json:"crop" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty"`
	Quality  string  `json:"quality,omitempty"`
}

type SoilLog struct {
	RecordMeta
	FieldLink
	PH            float64 `json:"ph" validate:"gte=0,lte=14"`
	Nitrogen      float64 `json:"nitrogen" validate:"gte=0"`
	Phosphorus    float64 `json:"phosphorus" validate:"gte=0"`
	Potassium     float64 `json:"potassium" validate:"gte=0"`
	OrganicMatter float64 `json:"organic_matter" validate:"gte=0,lte=100"`
	Moisture      float64 `json:"moisture" validate:"gte=0,lte=100"`
}

type WeatherLog struct {
	RecordMeta
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct" validate:"gte=0,lte=100"`
	RainfallMm   float64 `json:"rainfall_mm" validate:"gte=0"`
	WindSpeedKmh float64 `json:"wind_speed_kmh" validate:"gte=0"`
	Conditions   string  `json:"conditions,omitempty"`
}

type FertilizerLog struct {
	RecordMeta
	FieldLink
	Product  string  `json:"product" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty"`
	Method   string  `json:"method,omitempty"`
}

type IrrigationLog struct {
	RecordMeta
	FieldLink
	WaterLiters     float64 `json:"water_liters" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Method          string  `json:"method,omitempty"`
}

type RevenueLog struct {
	RecordMeta
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency,omitempty"`
	Category string  `json:"category" validate:"required"`
	Source   string  `json:"source,omitempty"`
}

type ExpenseLog struct {
	RecordMeta
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency,omitempty"`
	Category string  `json:"category" validate:"required"`
	Vendor   string  `json:"vendor,omitempty"`
}

type HealthLog struct {
	RecordMeta
	AnimalID     string  `json:"animal_id" validate:"required"`
	Species      string  `json:"species,omitempty"`
	Condition    string  `json:"condition" validate:"required"`
	Treatment    string  `json:"treatment,omitempty"`
	Veterinarian string  `json:"veterinarian,omitempty"`
	Cost         float64 `json:"cost" validate:"gte=0"`
}

type BreedingLog struct {
	RecordMeta
	AnimalID          string     `json:"animal_id" validate:"required"`
	Species           string     `json:"species,omitempty"`
	MateID            string     `json:"mate_id,omitempty"`
	Method            string     `json:"method,omitempty"`
	ExpectedBirthDate *time.Time `json:"expected_birth_date,omitempty"`
	Outcome           string     `json:"outcome,omitempty"`
}

// TaskStatus tracks a task through its simple lifecycle.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskLog struct {
	RecordMeta
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	AssigneeUID string     `json:"assignee_uid,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
}
