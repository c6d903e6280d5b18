package model

import (
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordBase holds the columns shared by every log table.
type RecordBase struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID     uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID     string    `gorm:"type:varchar(128);not null"`
	RecordDate time.Time `gorm:"column:record_date;index;not null"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FieldColumn links a log row to a field of the same farm.
type FieldColumn struct {
	FieldID *uuid.UUID `gorm:"type:uuid;index"`
}

func toRecordMeta(b RecordBase) entity.RecordMeta {
	return entity.RecordMeta{
		ID:        b.ID,
		FarmID:    b.FarmID,
		UserID:    b.UserID,
		Date:      b.RecordDate,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func fromRecordMeta(m *entity.RecordMeta) RecordBase {
	return RecordBase{
		ID:         m.ID,
		FarmID:     m.FarmID,
		UserID:     m.UserID,
		RecordDate: m.Date,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type PlantingModel struct {
	RecordBase          `gorm:"embedded"`
	FieldColumn         `gorm:"embedded"`
	Crop                string `gorm:"type:varchar(100);index;not null"`
	Variety             string `gorm:"type:varchar(100)"`
	Quantity            float64
	Unit                string `gorm:"type:varchar(30)"`
	Method              string `gorm:"type:varchar(100)"`
	ExpectedHarvestDate *time.Time
}

func (PlantingModel) TableName() string { return "planting_logs" }

func ToPlantingDomain(m *PlantingModel) *entity.PlantingLog {
	return &entity.PlantingLog{
		RecordMeta:          toRecordMeta(m.RecordBase),
		FieldLink:           entity.FieldLink{FieldID: m.FieldID},
		Crop:                m.Crop,
		Variety:             m.Variety,
		Quantity:            m.Quantity,
		Unit:                m.Unit,
		Method:              m.Method,
		ExpectedHarvestDate: m.ExpectedHarvestDate,
	}
}

func FromPlantingDomain(e *entity.PlantingLog) *PlantingModel {
	return &PlantingModel{
		RecordBase:          fromRecordMeta(&e.RecordMeta),
		FieldColumn:         FieldColumn{FieldID: e.FieldID},
		Crop:                e.Crop,
		Variety:             e.Variety,
		Quantity:            e.Quantity,
		Unit:                e.Unit,
		Method:              e.Method,
		ExpectedHarvestDate: e.ExpectedHarvestDate,
	}
}

type HarvestingModel struct {
	RecordBase  `gorm:"embedded"`
	FieldColumn `gorm:"embedded"`
	Crop        string `gorm:"type:varchar(100);index;not null"`
	Quantity    float64
	Unit        string `gorm:"type:varchar(30)"`
	Quality     string `gorm:"type:varchar(50)"`
}

func (HarvestingModel) TableName() string { return "harvesting_logs" }

func ToHarvestingDomain(m *HarvestingModel) *entity.HarvestingLog {
	return &entity.HarvestingLog{
		RecordMeta: toRecordMeta(m.RecordBase),
		FieldLink:  entity.FieldLink{FieldID: m.FieldID},
		Crop:       m.Crop,
		Quantity:   m.Quantity,
		Unit:       m.Unit,
		Quality:    m.Quality,
	}
}

func FromHarvestingDomain(e *entity.HarvestingLog) *HarvestingModel {
	return &HarvestingModel{
		RecordBase:  fromRecordMeta(&e.RecordMeta),
		FieldColumn: FieldColumn{FieldID: e.FieldID},
		Crop:        e.Crop,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		Quality:     e.Quality,
	}
}

type SoilModel struct {
	RecordBase    `gorm:"embedded"`
	FieldColumn   `gorm:"embedded"`
	PH            float64 `gorm:"column:ph"`
	Nitrogen      float64
	Phosphorus    float64
	Potassium     float64
	OrganicMatter float64
	Moisture      float64
}

func (SoilModel) TableName() string { return "soil_logs" }

func ToSoilDomain(m *SoilModel) *entity.SoilLog {
	return &entity.SoilLog{
		RecordMeta:    toRecordMeta(m.RecordBase),
		FieldLink:     entity.FieldLink{FieldID: m.FieldID},
		PH:            m.PH,
		Nitrogen:      m.Nitrogen,
		Phosphorus:    m.Phosphorus,
		Potassium:     m.Potassium,
		OrganicMatter: m.OrganicMatter,
		Moisture:      m.Moisture,
	}
}

func FromSoilDomain(e *entity.SoilLog) *SoilModel {
	return &SoilModel{
		RecordBase:    fromRecordMeta(&e.RecordMeta),
		FieldColumn:   FieldColumn{FieldID: e.FieldID},
		PH:            e.PH,
		Nitrogen:      e.Nitrogen,
		Phosphorus:    e.Phosphorus,
		Potassium:     e.Potassium,
		OrganicMatter: e.OrganicMatter,
		Moisture:      e.Moisture,
	}
}

type WeatherModel struct {
	RecordBase   `gorm:"embedded"`
	TemperatureC float64
	HumidityPct  float64
	RainfallMm   float64
	WindSpeedKmh float64
	Conditions   string `gorm:"type:varchar(100)"`
}

func (WeatherModel) TableName() string { return "weather_logs" }

func ToWeatherDomain(m *WeatherModel) *entity.WeatherLog {
	return &entity.WeatherLog{
		RecordMeta:   toRecordMeta(m.RecordBase),
		TemperatureC: m.TemperatureC,
		HumidityPct:  m.HumidityPct,
		RainfallMm:   m.RainfallMm,
		WindSpeedKmh: m.WindSpeedKmh,
		Conditions:   m.Conditions,
	}
}

func FromWeatherDomain(e *entity.WeatherLog) *WeatherModel {
	return &WeatherModel{
		RecordBase:   fromRecordMeta(&e.RecordMeta),
		TemperatureC: e.TemperatureC,
		HumidityPct:  e.HumidityPct,
		RainfallMm:   e.RainfallMm,
		WindSpeedKmh: e.WindSpeedKmh,
		Conditions:   e.Conditions,
	}
}

type FertilizerModel struct {
	RecordBase  `gorm:"embedded"`
	FieldColumn `gorm:"embedded"`
	Product     string `gorm:"type:varchar(150);not null"`
	Quantity    float64
	Unit        string `gorm:"type:varchar(30)"`
	Method      string `gorm:"type:varchar(100)"`
}

func (FertilizerModel) TableName() string { return "fertilizer_logs" }

func ToFertilizerDomain(m *FertilizerModel) *entity.FertilizerLog {
	return &entity.FertilizerLog{
		RecordMeta: toRecordMeta(m.RecordBase),
		FieldLink:  entity.FieldLink{FieldID: m.FieldID},
		Product:    m.Product,
		Quantity:   m.Quantity,
		Unit:       m.Unit,
		Method:     m.Method,
	}
}

func FromFertilizerDomain(e *entity.FertilizerLog) *FertilizerModel {
	return &FertilizerModel{
		RecordBase:  fromRecordMeta(&e.RecordMeta),
		FieldColumn: FieldColumn{FieldID: e.FieldID},
		Product:     e.Product,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		Method:      e.Method,
	}
}

type IrrigationModel struct {
	RecordBase      `gorm:"embedded"`
	FieldColumn     `gorm:"embedded"`
	WaterLiters     float64
	DurationMinutes int
	Method          string `gorm:"type:varchar(100)"`
}

func (IrrigationModel) TableName() string { return "irrigation_logs" }

func ToIrrigationDomain(m *IrrigationModel) *entity.IrrigationLog {
	return &entity.IrrigationLog{
		RecordMeta:      toRecordMeta(m.RecordBase),
		FieldLink:       entity.FieldLink{FieldID: m.FieldID},
		WaterLiters:     m.WaterLiters,
		DurationMinutes: m.DurationMinutes,
		Method:          m.Method,
	}
}

func FromIrrigationDomain(e *entity.IrrigationLog) *IrrigationModel {
	return &IrrigationModel{
		RecordBase:      fromRecordMeta(&e.RecordMeta),
		FieldColumn:     FieldColumn{FieldID: e.FieldID},
		WaterLiters:     e.WaterLiters,
		DurationMinutes: e.DurationMinutes,
		Method:          e.Method,
	}
}

type RevenueModel struct {
	RecordBase `gorm:"embedded"`
	Amount     float64 `gorm:"not null"`
	Currency   string  `gorm:"type:varchar(3)"`
	Category   string  `gorm:"type:varchar(100);index;not null"`
	Source     string  `gorm:"type:varchar(150)"`
}

func (RevenueModel) TableName() string { return "revenue_logs" }

func ToRevenueDomain(m *RevenueModel) *entity.RevenueLog {
	return &entity.RevenueLog{
		RecordMeta: toRecordMeta(m.RecordBase),
		Amount:     m.Amount,
		Currency:   m.Currency,
		Category:   m.Category,
		Source:     m.Source,
	}
}

func FromRevenueDomain(e *entity.RevenueLog) *RevenueModel {
	return &RevenueModel{
		RecordBase: fromRecordMeta(&e.RecordMeta),
		Amount:     e.Amount,
		Currency:   e.Currency,
		Category:   e.Category,
		Source:     e.Source,
	}
}

type ExpenseModel struct {
	RecordBase `gorm:"embedded"`
	Amount     float64 `gorm:"not null"`
	Currency   string  `gorm:"type:varchar(3)"`
	Category   string  `gorm:"type:varchar(100);index;not null"`
	Vendor     string  `gorm:"type:varchar(150)"`
}

func (ExpenseModel) TableName() string { return "expense_logs" }

func ToExpenseDomain(m *ExpenseModel) *entity.ExpenseLog {
	return &entity.ExpenseLog{
		RecordMeta: toRecordMeta(m.RecordBase),
		Amount:     m.Amount,
		Currency:   m.Currency,
		Category:   m.Category,
		Vendor:     m.Vendor,
	}
}

func FromExpenseDomain(e *entity.ExpenseLog) *ExpenseModel {
	return &ExpenseModel{
		RecordBase: fromRecordMeta(&e.RecordMeta),
		Amount:     e.Amount,
		Currency:   e.Currency,
		Category:   e.Category,
		Vendor:     e.Vendor,
	}
}

type HealthModel struct {
	RecordBase   `gorm:"embedded"`
	AnimalID     string `gorm:"type:varchar(100);index;not null"`
	Species      string `gorm:"type:varchar(100)"`
	Condition    string `gorm:"type:varchar(255);not null"`
	Treatment    string `gorm:"type:text"`
	Veterinarian string `gorm:"type:varchar(150)"`
	Cost         float64
}

func (HealthModel) TableName() string { return "health_logs" }

func ToHealthDomain(m *HealthModel) *entity.HealthLog {
	return &entity.HealthLog{
		RecordMeta:   toRecordMeta(m.RecordBase),
		AnimalID:     m.AnimalID,
		Species:      m.Species,
		Condition:    m.Condition,
		Treatment:    m.Treatment,
		Veterinarian: m.Veterinarian,
		Cost:         m.Cost,
	}
}

func FromHealthDomain(e *entity.HealthLog) *HealthModel {
	return &HealthModel{
		RecordBase:   fromRecordMeta(&e.RecordMeta),
		AnimalID:     e.AnimalID,
		Species:      e.Species,
		Condition:    e.Condition,
		Treatment:    e.Treatment,
		Veterinarian: e.Veterinarian,
		Cost:         e.Cost,
	}
}

type BreedingModel struct {
	RecordBase        `gorm:"embedded"`
	AnimalID          string `gorm:"type:varchar(100);index;not null"`
	Species           string `gorm:"type:varchar(100)"`
	MateID            string `gorm:"type:varchar(100)"`
	Method            string `gorm:"type:varchar(100)"`
	ExpectedBirthDate *time.Time
	Outcome           string `gorm:"type:varchar(255)"`
}

func (BreedingModel) TableName() string { return "breeding_logs" }

func ToBreedingDomain(m *BreedingModel) *entity.BreedingLog {
	return &entity.BreedingLog{
		RecordMeta:        toRecordMeta(m.RecordBase),
		AnimalID:          m.AnimalID,
		Species:           m.Species,
		MateID:            m.MateID,
		Method:            m.Method,
		ExpectedBirthDate: m.ExpectedBirthDate,
		Outcome:           m.Outcome,
	}
}

func FromBreedingDomain(e *entity.BreedingLog) *BreedingModel {
	return &BreedingModel{
		RecordBase:        fromRecordMeta(&e.RecordMeta),
		AnimalID:          e.AnimalID,
		Species:           e.Species,
		MateID:            e.MateID,
		Method:            e.Method,
		ExpectedBirthDate: e.ExpectedBirthDate,
		Outcome:           e.Outcome,
	}
}

type TaskModel struct {
	RecordBase  `gorm:"embedded"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	AssigneeUID string `gorm:"type:varchar(128);index"`
	DueDate     *time.Time
	Status      string `gorm:"type:varchar(20);index;not null"`
	Priority    string `gorm:"type:varchar(10);not null"`
}

func (TaskModel) TableName() string { return "task_logs" }

func ToTaskDomain(m *TaskModel) *entity.TaskLog {
	return &entity.TaskLog{
		RecordMeta:  toRecordMeta(m.RecordBase),
		Title:       m.Title,
		Description: m.Description,
		AssigneeUID: m.AssigneeUID,
		DueDate:     m.DueDate,
		Status:      entity.TaskStatus(m.Status),
		Priority:    m.Priority,
	}
}

func FromTaskDomain(e *entity.TaskLog) *TaskModel {
	return &TaskModel{
		RecordBase:  fromRecordMeta(&e.RecordMeta),
		Title:       e.Title,
		Description: e.Description,
		AssigneeUID: e.AssigneeUID,
		DueDate:     e.DueDate,
		Status:      string(e.Status),
		Priority:    e.Priority,
	}
}
