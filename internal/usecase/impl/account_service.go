// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	farmRepo  repository.FarmRepository
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	FarmRepo  repository.FarmRepository
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		farmRepo:  params.FarmRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Onboard creates the owner's user document and their farm in one transaction.
func (srv *accountService) Onboard(ctx context.Context, input *usecase.OnboardInput) (*usecase.OnboardOutput, error) {
	srv.log(ctx).Info("Starting onboarding", slog.String("uid", input.UID), slog.String("farmName", input.FarmName))

	var output usecase.OnboardOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		farmRepo := repoFactory.NewFarmRepository()

		now := time.Now().UTC()
		user, err := userRepo.FindByUIDForUpdate(ctx, input.UID)
		isNewUser := errors.Is(err, repository.ErrUserNotFound)
		switch {
		case isNewUser:
			user = newUserEntity(input.UID, input.Email, input.Name, now)
		case err != nil:
			return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
		case user.HasFarm():
			return domainerrors.ErrUserAlreadyOnboarded
		}

		farm := &entity.Farm{
			ID:        uuid.New(),
			OwnerID:   user.UID,
			FarmName:  strings.TrimSpace(input.FarmName),
			Staff:     []string{},
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := farmRepo.Create(ctx, farm); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
		}

		name := strings.TrimSpace(input.Name)
		if name != "" {
			user.Name = name
		}
		user.FarmID = &farm.ID
		user.IsFarmOwner = true
		user.UpdatedAt = now

		if isNewUser {
			err = userRepo.Create(ctx, user)
		} else {
			err = userRepo.UpdateMembership(ctx, user.UID, user.FarmID, true)
			if err == nil && name != "" {
				err = userRepo.UpdateProfile(ctx, user)
			}
		}
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return domainerrors.ErrConflict.WithDetails("email is already registered to another account")
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save user")
		}

		output.User = user
		output.Farm = farm

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Onboarding failed", slog.String("uid", input.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute onboarding transaction")
	}

	srv.log(ctx).Info("Onboarding completed", slog.String("uid", input.UID), slog.String("farmID", output.Farm.ID.String()))

	return &output, nil
}

func (srv *accountService) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return srv.findUser(ctx, uid)
}

func (srv *accountService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Preferences != nil {
		user.Preferences = *input.Preferences
	}
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return user, nil
}

// RegisterPushToken stores a device token, keeping only the newest entity.MaxPushTokens.
// The token list is read under a row lock so concurrent registrations and
// worker prunes do not drop each other's changes.
func (srv *accountService) RegisterPushToken(ctx context.Context, uid, token string) error {
	var count int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByUIDForUpdate(ctx, uid)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
		}

		user.AddPushToken(token)
		if err := userRepo.UpdatePushTokens(ctx, uid, user.PushTokens); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to register push token")
		}
		count = len(user.PushTokens)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to register push token")
	}

	srv.log(ctx).Debug("Push token registered", slog.String("uid", uid), slog.Int("tokens", count))

	return nil
}

func (srv *accountService) ResolveActor(ctx context.Context, identity *service.Identity) (*usecase.Actor, error) {
	user, err := srv.userRepo.FindByUID(ctx, identity.UID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		if user, err = srv.provisionUser(ctx, identity); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	actor := &usecase.Actor{
		UID:     user.UID,
		Email:   user.Email,
		IsOwner: user.IsFarmOwner,
	}
	if user.HasFarm() {
		actor.FarmID = *user.FarmID
	}

	return actor, nil
}

func (srv *accountService) provisionUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user := newUserEntity(identity.UID, identity.Email, identity.Name, time.Now().UTC())

	err := srv.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		// Concurrent first requests race to create the same document.
		existing, findErr := srv.userRepo.FindByUID(ctx, identity.UID)
		if findErr == nil {
			return existing, nil
		}

		return nil, domainerrors.ErrConflict.WithDetails("email is already registered to another account")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to provision user")
	}

	srv.log(ctx).Info("User provisioned", slog.String("uid", user.UID))

	return user, nil
}

func (srv *accountService) findUser(ctx context.Context, uid string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	return user, nil
}

func newUserEntity(uid, email, name string, now time.Time) *entity.User {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return &entity.User{
		UID:   uid,
		Email: email,
		Name:  name,
		Subscription: entity.Subscription{
			Plan:   entity.PlanFree,
			Status: entity.SubscriptionStatusNone,
		},
		Preferences: entity.DefaultNotificationPreferences(),
		PushTokens:  []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
