package usecase

import (
	"context"
	"encoding/json"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// FieldInput is the writable part of a field. A nil SizeHectares with a
// boundary derives the size from the boundary area.
type FieldInput struct {
	Name         string
	SizeHectares *float64
	CropType     string
	SoilType     string
	Boundary     json.RawMessage
}

type FieldUsecase interface {
	Create(ctx context.Context, actor *Actor, input *FieldInput) (*entity.Field, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Field, error)
	List(ctx context.Context, actor *Actor) ([]*entity.Field, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *FieldInput) (*entity.Field, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
}
