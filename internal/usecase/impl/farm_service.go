package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type farmService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	farmRepo  repository.FarmRepository
	notifier  usecase.NotificationUsecase
	logger    *slog.Logger
}

// FarmServiceParams holds dependencies for FarmService, injected by Fx.
type FarmServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	FarmRepo  repository.FarmRepository
	Notifier  usecase.NotificationUsecase
	Logger    *slog.Logger
}

func NewFarmService(params FarmServiceParams) usecase.FarmUsecase {
	return &farmService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		farmRepo:  params.FarmRepo,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

func (srv *farmService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *farmService) GetFarm(ctx context.Context, uid string) (*entity.Farm, error) {
	_, farm, err := loadMembership(ctx, srv.userRepo, srv.farmRepo, uid, false)

	return farm, err
}

func (srv *farmService) UpdateFarm(ctx context.Context, uid string, input *usecase.UpdateFarmInput) (*entity.Farm, error) {
	_, farm, err := loadMembership(ctx, srv.userRepo, srv.farmRepo, uid, false)
	if err != nil {
		return nil, err
	}
	if !farm.IsOwner(uid) {
		return nil, domainerrors.ErrFarmOwnerRequired
	}

	if input.FarmName != nil {
		farm.FarmName = strings.TrimSpace(*input.FarmName)
	}
	if input.Latitude != nil {
		farm.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		farm.Longitude = *input.Longitude
	}
	farm.UpdatedAt = time.Now().UTC()

	if err := srv.farmRepo.UpdateDetails(ctx, farm); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update farm")
	}

	return farm, nil
}

// RemoveStaff detaches a staff member from the owner's farm in one transaction.
// Rows are locked user first, then farm, matching LeaveFarm and Accept.
func (srv *farmService) RemoveStaff(ctx context.Context, ownerUID, staffUID string) error {
	if ownerUID == staffUID {
		return domainerrors.ErrOwnerCannotLeave
	}

	var farmName string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		farmRepo := repoFactory.NewFarmRepository()

		owner, err := findMember(ctx, userRepo.FindByUID, ownerUID)
		if err != nil {
			return err
		}

		staff, err := userRepo.FindByUIDForUpdate(ctx, staffUID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			srv.log(ctx).Warn("Removed staff member has no user document", slog.String("staffUID", staffUID))
		case err != nil:
			return domainerrors.NewDatabaseExecuteError(err, "failed to load staff member")
		}

		farm, err := findFarm(ctx, farmRepo.FindByIDForUpdate, *owner.FarmID)
		if err != nil {
			return err
		}
		if !farm.IsOwner(ownerUID) {
			return domainerrors.ErrFarmOwnerRequired
		}
		if !farm.RemoveStaff(staffUID) {
			return domainerrors.ErrStaffNotFound
		}

		if err := farmRepo.UpdateStaff(ctx, farm); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update farm staff")
		}

		if staff != nil && staff.FarmID != nil && *staff.FarmID == farm.ID {
			if err := userRepo.UpdateMembership(ctx, staffUID, nil, false); err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to detach staff member")
			}
		}
		farmName = farm.FarmName

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove staff member")
	}

	srv.log(ctx).Info("Staff member removed", slog.String("ownerUID", ownerUID), slog.String("staffUID", staffUID))
	srv.notify(ctx, &usecase.NotifyInput{
		UserID:  staffUID,
		Title:   "Removed from farm",
		Message: fmt.Sprintf("You are no longer a member of %s.", farmName),
		Kind:    entity.NotificationKindSystem,
	})

	return nil
}

// LeaveFarm lets a staff member leave the farm they belong to.
func (srv *farmService) LeaveFarm(ctx context.Context, uid string) error {
	var (
		ownerUID string
		userName string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		farmRepo := repoFactory.NewFarmRepository()

		user, farm, err := loadMembership(ctx, userRepo, farmRepo, uid, true)
		if err != nil {
			return err
		}
		if farm.IsOwner(uid) {
			return domainerrors.ErrOwnerCannotLeave
		}

		if farm.RemoveStaff(uid) {
			if err := farmRepo.UpdateStaff(ctx, farm); err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to update farm staff")
			}
		}

		if err := userRepo.UpdateMembership(ctx, uid, nil, false); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to detach user")
		}

		ownerUID = farm.OwnerID
		userName = user.Name

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to leave farm")
	}

	srv.log(ctx).Info("User left farm", slog.String("uid", uid))
	srv.notify(ctx, &usecase.NotifyInput{
		UserID:  ownerUID,
		Title:   "Staff member left",
		Message: fmt.Sprintf("%s has left your farm.", userName),
		Kind:    entity.NotificationKindSystem,
	})

	return nil
}

func (srv *farmService) notify(ctx context.Context, input *usecase.NotifyInput) {
	if _, err := srv.notifier.Notify(ctx, input); err != nil {
		srv.log(ctx).Warn("Failed to create notification", slog.String("userID", input.UserID), slog.Any("error", err))
	}
}

// loadMembership reads a user and their farm. With lock set both rows are
// held until the transaction ends.
func loadMembership(
	ctx context.Context,
	userRepo repository.UserRepository,
	farmRepo repository.FarmRepository,
	uid string,
	lock bool,
) (*entity.User, *entity.Farm, error) {
	findUser, findFarmByID := userRepo.FindByUID, farmRepo.FindByID
	if lock {
		findUser, findFarmByID = userRepo.FindByUIDForUpdate, farmRepo.FindByIDForUpdate
	}

	user, err := findMember(ctx, findUser, uid)
	if err != nil {
		return nil, nil, err
	}

	farm, err := findFarm(ctx, findFarmByID, *user.FarmID)
	if err != nil {
		return nil, nil, err
	}

	return user, farm, nil
}

// findMember loads a user that must belong to a farm.
func findMember(ctx context.Context, find func(context.Context, string) (*entity.User, error), uid string) (*entity.User, error) {
	user, err := find(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}
	if !user.HasFarm() {
		return nil, domainerrors.ErrNoFarm
	}

	return user, nil
}

func findFarm(ctx context.Context, find func(context.Context, uuid.UUID) (*entity.Farm, error), id uuid.UUID) (*entity.Farm, error) {
	farm, err := find(ctx, id)
	if errors.Is(err, repository.ErrFarmNotFound) {
		return nil, domainerrors.ErrFarmNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load farm")
	}

	return farm, nil
}
