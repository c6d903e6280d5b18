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
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type invitationService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	farmRepo       repository.FarmRepository
	invitationRepo repository.InvitationRepository
	qrCodeService  service.QRCodeService
	notifier       usecase.NotificationUsecase
	logger         *slog.Logger
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	FarmRepo       repository.FarmRepository
	InvitationRepo repository.InvitationRepository
	QRCodeService  service.QRCodeService
	Notifier       usecase.NotificationUsecase
	Logger         *slog.Logger
}

func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		farmRepo:       params.FarmRepo,
		invitationRepo: params.InvitationRepo,
		qrCodeService:  params.QRCodeService,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Invite asks a registered user without a farm to join the owner's farm.
func (srv *invitationService) Invite(ctx context.Context, ownerUID, email string) (*entity.Invitation, error) {
	owner, farm, err := srv.ownedFarm(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == owner.Email {
		return nil, domainerrors.ErrCannotInviteSelf
	}

	invitee, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInviteeNotRegistered
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up invitee")
	}
	if invitee.UID == owner.UID {
		return nil, domainerrors.ErrCannotInviteSelf
	}
	if invitee.HasFarm() {
		return nil, domainerrors.ErrInviteeHasFarm
	}

	_, err = srv.invitationRepo.FindPending(ctx, farm.ID, invitee.UID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrInvitationDuplicate
	case !errors.Is(err, repository.ErrInvitationNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check pending invitations")
	}

	invitation := &entity.Invitation{
		ID:             uuid.New(),
		InviterFarmID:  farm.ID,
		InviterUID:     owner.UID,
		InvitedUserUID: invitee.UID,
		InvitedEmail:   invitee.Email,
		FarmName:       farm.FarmName,
		Status:         entity.InvitationStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err := srv.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	srv.log(ctx).Info("Invitation created",
		slog.String("invitationID", invitation.ID.String()),
		slog.String("farmID", farm.ID.String()),
		slog.String("invitee", invitee.UID),
	)
	srv.notify(ctx, &usecase.NotifyInput{
		UserID:  invitee.UID,
		Title:   "Farm invitation",
		Message: fmt.Sprintf("%s invited you to join %s.", owner.Name, farm.FarmName),
		Kind:    entity.NotificationKindInvitation,
		Link:    "/invitations",
	})

	return invitation, nil
}

func (srv *invitationService) ListReceived(ctx context.Context, uid string) ([]*entity.Invitation, error) {
	invitations, err := srv.invitationRepo.ListByInvitee(ctx, uid, entity.InvitationStatusPending)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list invitations")
	}

	return invitations, nil
}

func (srv *invitationService) ListSent(ctx context.Context, ownerUID string) ([]*entity.Invitation, error) {
	_, farm, err := srv.ownedFarm(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	invitations, err := srv.invitationRepo.ListByFarm(ctx, farm.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list invitations")
	}

	return invitations, nil
}

// Accept moves the invitee into the inviting farm in one transaction.
func (srv *invitationService) Accept(ctx context.Context, uid string, id uuid.UUID) (*entity.Invitation, error) {
	var (
		accepted *entity.Invitation
		userName string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()
		userRepo := repoFactory.NewUserRepository()
		farmRepo := repoFactory.NewFarmRepository()

		invitation, err := findInvitation(ctx, invitationRepo, id)
		if err != nil {
			return err
		}
		if invitation.InvitedUserUID != uid {
			return domainerrors.ErrInvitationNotFound
		}
		if !invitation.IsPending() {
			return domainerrors.ErrInvitationNotPending
		}

		// Lock order user then farm, as in the farm staff flows.
		user, err := userRepo.FindByUIDForUpdate(ctx, uid)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
		}
		if user.HasFarm() {
			return domainerrors.ErrInviteeHasFarm
		}

		farm, err := findFarm(ctx, farmRepo.FindByIDForUpdate, invitation.InviterFarmID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		invitation.Status = entity.InvitationStatusAccepted
		invitation.RespondedAt = &now
		if err := invitationRepo.Update(ctx, invitation); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update invitation")
		}

		if err := userRepo.UpdateMembership(ctx, uid, &farm.ID, false); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to attach user to farm")
		}

		farm.AddStaff(uid)
		if err := farmRepo.UpdateStaff(ctx, farm); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update farm staff")
		}

		accepted = invitation
		userName = user.Name

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to accept invitation")
	}

	srv.log(ctx).Info("Invitation accepted", slog.String("invitationID", id.String()), slog.String("uid", uid))
	srv.notify(ctx, &usecase.NotifyInput{
		UserID:  accepted.InviterUID,
		Title:   "Invitation accepted",
		Message: fmt.Sprintf("%s joined %s.", userName, accepted.FarmName),
		Kind:    entity.NotificationKindInvitation,
		Link:    "/farm",
	})

	return accepted, nil
}

func (srv *invitationService) Decline(ctx context.Context, uid string, id uuid.UUID) (*entity.Invitation, error) {
	invitation, err := findInvitation(ctx, srv.invitationRepo, id)
	if err != nil {
		return nil, err
	}
	if invitation.InvitedUserUID != uid {
		return nil, domainerrors.ErrInvitationNotFound
	}
	if !invitation.IsPending() {
		return nil, domainerrors.ErrInvitationNotPending
	}

	now := time.Now().UTC()
	invitation.Status = entity.InvitationStatusDeclined
	invitation.RespondedAt = &now
	if err := srv.invitationRepo.Update(ctx, invitation); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update invitation")
	}

	srv.notify(ctx, &usecase.NotifyInput{
		UserID:  invitation.InviterUID,
		Title:   "Invitation declined",
		Message: fmt.Sprintf("%s declined your invitation to %s.", invitation.InvitedEmail, invitation.FarmName),
		Kind:    entity.NotificationKindInvitation,
	})

	return invitation, nil
}

func (srv *invitationService) Revoke(ctx context.Context, ownerUID string, id uuid.UUID) error {
	invitation, err := srv.sentInvitation(ctx, ownerUID, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	invitation.Status = entity.InvitationStatusRevoked
	invitation.RespondedAt = &now
	if err := srv.invitationRepo.Update(ctx, invitation); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke invitation")
	}

	srv.log(ctx).Info("Invitation revoked", slog.String("invitationID", id.String()))

	return nil
}

func (srv *invitationService) InvitationQR(ctx context.Context, ownerUID string, id uuid.UUID) ([]byte, error) {
	invitation, err := srv.sentInvitation(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateInvitationQR(invitation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return png, nil
}

// sentInvitation loads a pending invitation sent from ownerUID's farm.
func (srv *invitationService) sentInvitation(ctx context.Context, ownerUID string, id uuid.UUID) (*entity.Invitation, error) {
	_, farm, err := srv.ownedFarm(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	invitation, err := findInvitation(ctx, srv.invitationRepo, id)
	if err != nil {
		return nil, err
	}
	if invitation.InviterFarmID != farm.ID {
		return nil, domainerrors.ErrInvitationNotFound
	}
	if !invitation.IsPending() {
		return nil, domainerrors.ErrInvitationNotPending
	}

	return invitation, nil
}

func (srv *invitationService) ownedFarm(ctx context.Context, ownerUID string) (*entity.User, *entity.Farm, error) {
	owner, farm, err := loadMembership(ctx, srv.userRepo, srv.farmRepo, ownerUID, false)
	if err != nil {
		return nil, nil, err
	}
	if !farm.IsOwner(ownerUID) {
		return nil, nil, domainerrors.ErrFarmOwnerRequired
	}

	return owner, farm, nil
}

func (srv *invitationService) notify(ctx context.Context, input *usecase.NotifyInput) {
	if _, err := srv.notifier.Notify(ctx, input); err != nil {
		srv.log(ctx).Warn("Failed to create notification", slog.String("userID", input.UserID), slog.Any("error", err))
	}
}

func findInvitation(ctx context.Context, repo repository.InvitationRepository, id uuid.UUID) (*entity.Invitation, error) {
	invitation, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrInvitationNotFound) {
		return nil, domainerrors.ErrInvitationNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load invitation")
	}

	return invitation, nil
}
