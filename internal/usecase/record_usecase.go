package usecase

import (
	"context"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"

	"github.com/google/uuid"
)

// RecordUsecase is tenant-scoped CRUD over one log kind.
type RecordUsecase[E any] interface {
	Create(ctx context.Context, actor *Actor, record *E) (*E, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*E, error)
	List(ctx context.Context, actor *Actor, query repository.RecordQuery) ([]*E, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, record *E) (*E, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
}

// RecordUsecases bundles the use case of every log kind.
type RecordUsecases struct {
	Planting   RecordUsecase[entity.PlantingLog]
	Harvesting RecordUsecase[entity.HarvestingLog]
	Soil       RecordUsecase[entity.SoilLog]
	Weather    RecordUsecase[entity.WeatherLog]
	Fertilizer RecordUsecase[entity.FertilizerLog]
	Irrigation RecordUsecase[entity.IrrigationLog]
	Revenue    RecordUsecase[entity.RevenueLog]
	Expense    RecordUsecase[entity.ExpenseLog]
	Health     RecordUsecase[entity.HealthLog]
	Breeding   RecordUsecase[entity.BreedingLog]
	Task       RecordUsecase[entity.TaskLog]
}

// ReportUsecase renders downloadable reports.
type ReportUsecase interface {
	// ExportFinance returns an XLSX workbook of revenue and expenses in [from, to].
	ExportFinance(ctx context.Context, actor *Actor, from, to *time.Time) ([]byte, error)
}
