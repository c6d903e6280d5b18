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

type fieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) repository.FieldRepository {
	return &fieldRepository{db: db}
}

func (repo *fieldRepository) FindByID(ctx context.Context, farmID, id uuid.UUID) (*entity.Field, error) {
	var fieldM model.FieldModel
	if err := repo.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&fieldM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFieldNotFound
		}

		return nil, errors.Wrap(err, "failed to find field by id")
	}

	return model.ToFieldDomain(&fieldM), nil
}

// ListByFarm returns the farm's fields ordered by name.
func (repo *fieldRepository) ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Field, error) {
	var fieldModels []*model.FieldModel
	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("name ASC").
		Find(&fieldModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fields")
	}

	fields := make([]*entity.Field, 0, len(fieldModels))
	for _, fieldM := range fieldModels {
		fields = append(fields, model.ToFieldDomain(fieldM))
	}

	return fields, nil
}

func (repo *fieldRepository) Create(ctx context.Context, field *entity.Field) error {
	if field.ID == uuid.Nil {
		field.ID = uuid.New()
	}
	fieldM := model.FromFieldDomain(field)

	if err := repo.db.WithContext(ctx).Create(fieldM).Error; err != nil {
		return errors.Wrap(err, "failed to create field")
	}

	field.CreatedAt = fieldM.CreatedAt
	field.UpdatedAt = fieldM.UpdatedAt

	return nil
}

func (repo *fieldRepository) Update(ctx context.Context, field *entity.Field) error {
	fieldM := model.FromFieldDomain(field)

	result := repo.db.WithContext(ctx).
		Model(fieldM).
		Where("farm_id = ?", field.FarmID).
		Select("*").Omit("created_at").
		Updates(fieldM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update field")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFieldNotFound
	}

	field.UpdatedAt = fieldM.UpdatedAt

	return nil
}

func (repo *fieldRepository) Delete(ctx context.Context, farmID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		Delete(&model.FieldModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete field")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFieldNotFound
	}

	return nil
}
