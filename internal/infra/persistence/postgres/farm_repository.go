package postgres

import (
	"context"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type farmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{db: db}
}

func (repo *farmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	return repo.find(ctx, repo.db, id)
}

func (repo *farmRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	return repo.find(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *farmRepository) find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by id")
	}

	return model.ToFarmDomain(&farmM), nil
}

func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	if farm.ID == uuid.Nil {
		farm.ID = uuid.New()
	}
	farmM := model.FromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		return errors.Wrap(err, "failed to create farm")
	}

	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

func (repo *farmRepository) UpdateDetails(ctx context.Context, farm *entity.Farm) error {
	return repo.updateColumns(ctx, farm, map[string]any{
		"farm_name": farm.FarmName,
		"latitude":  farm.Latitude,
		"longitude": farm.Longitude,
	})
}

func (repo *farmRepository) UpdateStaff(ctx context.Context, farm *entity.Farm) error {
	return repo.updateColumns(ctx, farm, map[string]any{
		"staff": model.FromFarmDomain(farm).Staff,
	})
}

func (repo *farmRepository) updateColumns(ctx context.Context, farm *entity.Farm, columns map[string]any) error {
	now := time.Now().UTC()
	columns["updated_at"] = now

	result := repo.db.WithContext(ctx).Model(&model.FarmModel{}).Where("id = ?", farm.ID).Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	farm.UpdatedAt = now

	return nil
}
