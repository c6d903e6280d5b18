package repository

import (
	"context"
	"errors"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFieldNotFound is returned when a field does not exist within the farm.
var ErrFieldNotFound = errors.New("field not found")

// FieldRepository persists fields. Every call is scoped to a farm.
type FieldRepository interface {
	FindByID(ctx context.Context, farmID, id uuid.UUID) (*entity.Field, error)
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Field, error)
	Create(ctx context.Context, field *entity.Field) error
	Update(ctx context.Context, field *entity.Field) error
	Delete(ctx context.Context, farmID, id uuid.UUID) error
}
