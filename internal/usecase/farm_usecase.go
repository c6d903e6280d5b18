package usecase

import (
	"context"

	"farmdesk/internal/domain/entity"
)

type UpdateFarmInput struct {
	FarmName  *string
	Latitude  *float64
	Longitude *float64
}

// FarmUsecase manages the tenant root and its membership.
type FarmUsecase interface {
	GetFarm(ctx context.Context, uid string) (*entity.Farm, error)
	UpdateFarm(ctx context.Context, uid string, input *UpdateFarmInput) (*entity.Farm, error)
	RemoveStaff(ctx context.Context, ownerUID, staffUID string) error
	LeaveFarm(ctx context.Context, uid string) error
}
