package repository

import (
	"context"
	"errors"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmNotFound is returned when a farm does not exist.
var ErrFarmNotFound = errors.New("farm not found")

type FarmRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)
	// FindByIDForUpdate locks the farm row until the transaction ends.
	// Staff changes must read the farm this way.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Farm, error)
	Create(ctx context.Context, farm *entity.Farm) error
	// UpdateDetails writes the name and location, leaving staff untouched.
	UpdateDetails(ctx context.Context, farm *entity.Farm) error
	// UpdateStaff writes the staff list only.
	UpdateStaff(ctx context.Context, farm *entity.Farm) error
}
