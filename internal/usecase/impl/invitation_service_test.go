package impl

import (
	"context"
	"testing"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	mockRepo "farmdesk/internal/mocks/repository"
	mockSvc "farmdesk/internal/mocks/service"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invitationServiceFixtures struct {
	service        usecase.InvitationUsecase
	tx             txFixture
	userRepo       *mockRepo.MockUserRepository
	farmRepo       *mockRepo.MockFarmRepository
	invitationRepo *mockRepo.MockInvitationRepository
	qrCodeService  *mockSvc.MockQRCodeService
	notifier       *mockUsecase.MockNotificationUsecase
}

func createTestInvitationService(t *testing.T) invitationServiceFixtures {
	fx := invitationServiceFixtures{
		tx:             newTxFixture(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		farmRepo:       mockRepo.NewMockFarmRepository(t),
		invitationRepo: mockRepo.NewMockInvitationRepository(t),
		qrCodeService:  mockSvc.NewMockQRCodeService(t),
		notifier:       mockUsecase.NewMockNotificationUsecase(t),
	}

	fx.service = NewInvitationService(InvitationServiceParams{
		TxManager:      fx.tx.txManager,
		UserRepo:       fx.userRepo,
		FarmRepo:       fx.farmRepo,
		InvitationRepo: fx.invitationRepo,
		QRCodeService:  fx.qrCodeService,
		Notifier:       fx.notifier,
		Logger:         newDiscardLogger(),
	})

	return fx
}

// expectOwner makes ownerUID the owner of farm.
func (fx invitationServiceFixtures) expectOwner(ctx context.Context, farm *entity.Farm) {
	owner := member(farm.OwnerID, farm)
	owner.Email = farm.OwnerID + "@example.com"
	fx.userRepo.EXPECT().FindByUID(ctx, farm.OwnerID).Return(owner, nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
}

func pendingInvitation(farm *entity.Farm, invitee string) *entity.Invitation {
	return &entity.Invitation{
		ID:             uuid.New(),
		InviterFarmID:  farm.ID,
		InviterUID:     farm.OwnerID,
		InvitedUserUID: invitee,
		InvitedEmail:   invitee + "@example.com",
		FarmName:       farm.FarmName,
		Status:         entity.InvitationStatusPending,
	}
}

func TestInvitationService_Invite(t *testing.T) {
	t.Run("creates a pending invitation and notifies the invitee", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner")

		fx.expectOwner(ctx, farm)
		fx.userRepo.EXPECT().FindByEmail(ctx, "worker@example.com").Return(&entity.User{UID: "worker", Email: "worker@example.com"}, nil)
		fx.invitationRepo.EXPECT().FindPending(ctx, farm.ID, "worker").Return(nil, repository.ErrInvitationNotFound)
		fx.invitationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Invitation")).Return(nil)
		fx.notifier.EXPECT().
			Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
				return in.UserID == "worker" && in.Kind == entity.NotificationKindInvitation
			})).
			Return(&entity.Notification{}, nil)

		invitation, err := fx.service.Invite(ctx, "owner", " Worker@Example.com ")

		require.NoError(t, err)
		assert.Equal(t, entity.InvitationStatusPending, invitation.Status)
		assert.Equal(t, farm.ID, invitation.InviterFarmID)
		assert.Equal(t, "Green Acres", invitation.FarmName)
		assert.Equal(t, "worker", invitation.InvitedUserUID)
	})

	tests := []struct {
		name  string
		email string
		setup func(ctx context.Context, fx invitationServiceFixtures, farm *entity.Farm)
		want  domainerrors.AppError
	}{
		{
			name:  "self invite",
			email: "owner@example.com",
			want:  domainerrors.ErrCannotInviteSelf,
		},
		{
			name:  "unregistered email",
			email: "nobody@example.com",
			setup: func(ctx context.Context, fx invitationServiceFixtures, _ *entity.Farm) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
			},
			want: domainerrors.ErrInviteeNotRegistered,
		},
		{
			name:  "invitee already on a farm",
			email: "busy@example.com",
			setup: func(ctx context.Context, fx invitationServiceFixtures, _ *entity.Farm) {
				other := uuid.New()
				fx.userRepo.EXPECT().FindByEmail(ctx, "busy@example.com").Return(&entity.User{UID: "busy", FarmID: &other}, nil)
			},
			want: domainerrors.ErrInviteeHasFarm,
		},
		{
			name:  "duplicate pending invitation",
			email: "worker@example.com",
			setup: func(ctx context.Context, fx invitationServiceFixtures, farm *entity.Farm) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "worker@example.com").Return(&entity.User{UID: "worker"}, nil)
				fx.invitationRepo.EXPECT().FindPending(ctx, farm.ID, "worker").Return(pendingInvitation(farm, "worker"), nil)
			},
			want: domainerrors.ErrInvitationDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestInvitationService(t)
			ctx := context.Background()
			farm := newFarm("owner")

			fx.expectOwner(ctx, farm)
			if tt.setup != nil {
				tt.setup(ctx, fx, farm)
			}

			_, err := fx.service.Invite(ctx, "owner", tt.email)

			requireErrorCode(t, err, tt.want)
		})
	}

	t.Run("staff cannot invite", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner", "staff")

		fx.userRepo.EXPECT().FindByUID(ctx, "staff").Return(member("staff", farm), nil)
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.Invite(ctx, "staff", "x@example.com")

		requireErrorCode(t, err, domainerrors.ErrFarmOwnerRequired)
	})
}

func TestInvitationService_Accept(t *testing.T) {
	t.Run("joins the farm", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner")
		invitation := pendingInvitation(farm, "worker")

		fx.tx.invRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
		fx.tx.userRepo.EXPECT().FindByUIDForUpdate(ctx, "worker").Return(&entity.User{UID: "worker", Name: "Wes"}, nil)
		fx.tx.farmRepo.EXPECT().FindByIDForUpdate(ctx, farm.ID).Return(farm, nil)
		fx.tx.invRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(i *entity.Invitation) bool {
				return i.Status == entity.InvitationStatusAccepted && i.RespondedAt != nil
			})).
			Return(nil)
		fx.tx.userRepo.EXPECT().UpdateMembership(ctx, "worker", &farm.ID, false).Return(nil)
		fx.tx.farmRepo.EXPECT().
			UpdateStaff(ctx, mock.MatchedBy(func(f *entity.Farm) bool { return f.HasMember("worker") })).
			Return(nil)
		fx.notifier.EXPECT().
			Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.UserID == "owner" })).
			Return(&entity.Notification{}, nil)

		accepted, err := fx.service.Accept(ctx, "worker", invitation.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.InvitationStatusAccepted, accepted.Status)
	})

	t.Run("someone else's invitation", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		invitation := pendingInvitation(newFarm("owner"), "worker")

		fx.tx.invRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)

		_, err := fx.service.Accept(ctx, "intruder", invitation.ID)

		requireErrorCode(t, err, domainerrors.ErrInvitationNotFound)
	})

	t.Run("already answered", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		invitation := pendingInvitation(newFarm("owner"), "worker")
		invitation.Status = entity.InvitationStatusDeclined

		fx.tx.invRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)

		_, err := fx.service.Accept(ctx, "worker", invitation.ID)

		requireErrorCode(t, err, domainerrors.ErrInvitationNotPending)
	})

	t.Run("invitee joined another farm meanwhile", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		invitation := pendingInvitation(newFarm("owner"), "worker")
		other := uuid.New()

		fx.tx.invRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
		fx.tx.userRepo.EXPECT().FindByUIDForUpdate(ctx, "worker").Return(&entity.User{UID: "worker", FarmID: &other}, nil)

		_, err := fx.service.Accept(ctx, "worker", invitation.ID)

		requireErrorCode(t, err, domainerrors.ErrInviteeHasFarm)
	})
}

func TestInvitationService_Decline(t *testing.T) {
	fx := createTestInvitationService(t)
	ctx := context.Background()
	invitation := pendingInvitation(newFarm("owner"), "worker")

	fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
	fx.invitationRepo.EXPECT().Update(ctx, invitation).Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	declined, err := fx.service.Decline(ctx, "worker", invitation.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.InvitationStatusDeclined, declined.Status)
	assert.NotNil(t, declined.RespondedAt)
}

func TestInvitationService_RevokeAndQR(t *testing.T) {
	t.Run("revoke", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner")
		invitation := pendingInvitation(farm, "worker")

		fx.expectOwner(ctx, farm)
		fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
		fx.invitationRepo.EXPECT().Update(ctx, invitation).Return(nil)

		require.NoError(t, fx.service.Revoke(ctx, "owner", invitation.ID))
		assert.Equal(t, entity.InvitationStatusRevoked, invitation.Status)
	})

	t.Run("qr for another farm's invitation", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner")
		foreign := pendingInvitation(newFarm("rival"), "worker")

		fx.expectOwner(ctx, farm)
		fx.invitationRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

		_, err := fx.service.InvitationQR(ctx, "owner", foreign.ID)

		requireErrorCode(t, err, domainerrors.ErrInvitationNotFound)
	})

	t.Run("qr png", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		farm := newFarm("owner")
		invitation := pendingInvitation(farm, "worker")

		fx.expectOwner(ctx, farm)
		fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
		fx.qrCodeService.EXPECT().GenerateInvitationQR(invitation.ID).Return([]byte("png"), nil)

		png, err := fx.service.InvitationQR(ctx, "owner", invitation.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})
}
