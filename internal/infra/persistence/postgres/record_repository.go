package postgres

import (
	"context"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recordRepository stores one log kind E as rows of model M.
type recordRepository[E, M any] struct {
	db          *gorm.DB
	kind        entity.RecordKind
	meta        func(*E) *entity.RecordMeta
	toModel     func(*E) *M
	toEntity    func(*M) *E
	fieldScoped bool
	attributes  map[string]bool
}

func newRecordRepository[E, M any](
	db *gorm.DB,
	kind entity.RecordKind,
	meta func(*E) *entity.RecordMeta,
	toModel func(*E) *M,
	toEntity func(*M) *E,
	attributes ...string,
) *recordRepository[E, M] {
	_, fieldScoped := any(new(E)).(entity.FieldScoped)

	repo := &recordRepository[E, M]{
		db:          db,
		kind:        kind,
		meta:        meta,
		toModel:     toModel,
		toEntity:    toEntity,
		fieldScoped: fieldScoped,
		attributes:  make(map[string]bool, len(attributes)),
	}
	for _, column := range attributes {
		repo.attributes[column] = true
	}

	return repo
}

func (repo *recordRepository[E, M]) Create(ctx context.Context, record *E) error {
	meta := repo.meta(record)
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}

	recordM := repo.toModel(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrapf(err, "failed to create %s record", repo.kind)
	}

	created := repo.meta(repo.toEntity(recordM))
	meta.CreatedAt = created.CreatedAt
	meta.UpdatedAt = created.UpdatedAt

	return nil
}

func (repo *recordRepository[E, M]) FindByID(ctx context.Context, farmID, id uuid.UUID) (*E, error) {
	recordM := new(M)
	if err := repo.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s record", repo.kind)
	}

	return repo.toEntity(recordM), nil
}

// List returns the farm's records newest first. Ties on date fall back to
// creation time so paging stays stable.
func (repo *recordRepository[E, M]) List(ctx context.Context, farmID uuid.UUID, query repository.RecordQuery) ([]*E, error) {
	query = query.Normalized()

	tx := repo.db.WithContext(ctx).Where("farm_id = ?", farmID)
	if query.From != nil {
		tx = tx.Where("record_date >= ?", *query.From)
	}
	if query.To != nil {
		tx = tx.Where("record_date <= ?", *query.To)
	}
	if query.FieldID != nil && repo.fieldScoped {
		tx = tx.Where("field_id = ?", *query.FieldID)
	}
	tx = repo.matchFold(tx, columnCrop, query.Crop)
	tx = repo.matchFold(tx, columnSpecies, query.Species)
	if query.AnimalID != "" && repo.attributes[columnAnimalID] {
		tx = tx.Where("animal_id = ?", query.AnimalID)
	}

	var recordModels []*M
	if err := tx.
		Order("record_date DESC").
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", repo.kind)
	}

	records := make([]*E, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, repo.toEntity(recordM))
	}

	return records, nil
}

func (repo *recordRepository[E, M]) matchFold(tx *gorm.DB, column, value string) *gorm.DB {
	if value == "" || !repo.attributes[column] {
		return tx
	}

	return tx.Where("LOWER("+column+") = LOWER(?)", value)
}

func (repo *recordRepository[E, M]) Update(ctx context.Context, record *E) error {
	meta := repo.meta(record)
	recordM := repo.toModel(record)

	result := repo.db.WithContext(ctx).
		Model(recordM).
		Where("farm_id = ?", meta.FarmID).
		Select("*").Omit("created_at").
		Updates(recordM)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s record", repo.kind)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	meta.UpdatedAt = repo.meta(repo.toEntity(recordM)).UpdatedAt

	return nil
}

func (repo *recordRepository[E, M]) Delete(ctx context.Context, farmID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		Delete(new(M))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s record", repo.kind)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Filterable attribute columns.
const (
	columnCrop     = "crop"
	columnAnimalID = "animal_id"
	columnSpecies  = "species"
)

// NewRecordRepositories wires a repository for every log kind.
func NewRecordRepositories(db *gorm.DB) repository.RecordRepositories {
	return repository.RecordRepositories{
		Planting: newRecordRepository(db, entity.RecordKindPlanting,
			func(e *entity.PlantingLog) *entity.RecordMeta { return e.Meta() },
			model.FromPlantingDomain, model.ToPlantingDomain, columnCrop),
		Harvesting: newRecordRepository(db, entity.RecordKindHarvesting,
			func(e *entity.HarvestingLog) *entity.RecordMeta { return e.Meta() },
			model.FromHarvestingDomain, model.ToHarvestingDomain, columnCrop),
		Soil: newRecordRepository(db, entity.RecordKindSoil,
			func(e *entity.SoilLog) *entity.RecordMeta { return e.Meta() },
			model.FromSoilDomain, model.ToSoilDomain),
		Weather: newRecordRepository(db, entity.RecordKindWeather,
			func(e *entity.WeatherLog) *entity.RecordMeta { return e.Meta() },
			model.FromWeatherDomain, model.ToWeatherDomain),
		Fertilizer: newRecordRepository(db, entity.RecordKindFertilizer,
			func(e *entity.FertilizerLog) *entity.RecordMeta { return e.Meta() },
			model.FromFertilizerDomain, model.ToFertilizerDomain),
		Irrigation: newRecordRepository(db, entity.RecordKindIrrigation,
			func(e *entity.IrrigationLog) *entity.RecordMeta { return e.Meta() },
			model.FromIrrigationDomain, model.ToIrrigationDomain),
		Revenue: newRecordRepository(db, entity.RecordKindRevenue,
			func(e *entity.RevenueLog) *entity.RecordMeta { return e.Meta() },
			model.FromRevenueDomain, model.ToRevenueDomain),
		Expense: newRecordRepository(db, entity.RecordKindExpense,
			func(e *entity.ExpenseLog) *entity.RecordMeta { return e.Meta() },
			model.FromExpenseDomain, model.ToExpenseDomain),
		Health: newRecordRepository(db, entity.RecordKindHealth,
			func(e *entity.HealthLog) *entity.RecordMeta { return e.Meta() },
			model.FromHealthDomain, model.ToHealthDomain, columnAnimalID, columnSpecies),
		Breeding: newRecordRepository(db, entity.RecordKindBreeding,
			func(e *entity.BreedingLog) *entity.RecordMeta { return e.Meta() },
			model.FromBreedingDomain, model.ToBreedingDomain, columnAnimalID, columnSpecies),
		Task: newRecordRepository(db, entity.RecordKindTask,
			func(e *entity.TaskLog) *entity.RecordMeta { return e.Meta() },
			model.FromTaskDomain, model.ToTaskDomain),
	}
}
