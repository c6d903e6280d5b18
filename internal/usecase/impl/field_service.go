package impl

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/geo"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type fieldService struct {
	fieldRepo repository.FieldRepository
	logger    *slog.Logger
}

type FieldServiceParams struct {
	fx.In

	FieldRepo repository.FieldRepository
	Logger    *slog.Logger
}

func NewFieldService(params FieldServiceParams) usecase.FieldUsecase {
	return &fieldService{
		fieldRepo: params.FieldRepo,
		logger:    params.Logger,
	}
}

func (srv *fieldService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *fieldService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.FieldInput) (*entity.Field, error) {
	now := time.Now().UTC()
	field := &entity.Field{
		ID:        uuid.New(),
		FarmID:    actor.FarmID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyFieldInput(field, input); err != nil {
		return nil, err
	}

	if err := srv.fieldRepo.Create(ctx, field); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create field")
	}

	srv.log(ctx).Info("Field created", slog.String("fieldID", field.ID.String()), slog.Float64("sizeHectares", field.SizeHectares))

	return field, nil
}

func (srv *fieldService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Field, error) {
	field, err := srv.fieldRepo.FindByID(ctx, actor.FarmID, id)
	if errors.Is(err, repository.ErrFieldNotFound) {
		return nil, domainerrors.ErrFieldNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load field")
	}

	return field, nil
}

func (srv *fieldService) List(ctx context.Context, actor *usecase.Actor) ([]*entity.Field, error) {
	fields, err := srv.fieldRepo.ListByFarm(ctx, actor.FarmID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list fields")
	}

	return fields, nil
}

func (srv *fieldService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.FieldInput) (*entity.Field, error) {
	field, err := srv.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := applyFieldInput(field, input); err != nil {
		return nil, err
	}
	field.UpdatedAt = time.Now().UTC()

	if err := srv.fieldRepo.Update(ctx, field); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update field")
	}

	return field, nil
}

func (srv *fieldService) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.fieldRepo.Delete(ctx, actor.FarmID, id)
	if errors.Is(err, repository.ErrFieldNotFound) {
		return domainerrors.ErrFieldNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete field")
	}

	return nil
}

// applyFieldInput copies input onto field. A boundary is normalised to a bare
// Polygon and, when no size is given, the size is derived from its area.
func applyFieldInput(field *entity.Field, input *usecase.FieldInput) error {
	field.Name = strings.TrimSpace(input.Name)
	field.CropType = strings.TrimSpace(input.CropType)
	field.SoilType = strings.TrimSpace(input.SoilType)
	field.Boundary = nil
	field.Centroid = nil

	raw := bytes.TrimSpace(input.Boundary)
	if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		boundary, err := geo.ParseBoundary(raw)
		if err != nil {
			return domainerrors.ErrInvalidBoundary.WithDetails(err.Error())
		}

		normalized, err := boundary.MarshalGeometry()
		if err != nil {
			return domainerrors.ErrInvalidBoundary.WithDetails(err.Error())
		}
		field.Boundary = normalized

		centroid := boundary.Centroid()
		field.Centroid = &entity.GeoPoint{Latitude: centroid.Lat(), Longitude: centroid.Lon()}

		if input.SizeHectares == nil {
			field.SizeHectares = roundTo(boundary.AreaHectares(), 2)
		}
	}

	if input.SizeHectares != nil {
		field.SizeHectares = *input.SizeHectares
	}

	return nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}
