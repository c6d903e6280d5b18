package impl

import (
	"context"
	"strings"
	"testing"

	"farmdesk/config"
	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	mockRepo "farmdesk/internal/mocks/repository"
	mockSvc "farmdesk/internal/mocks/service"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceFixtures struct {
	service    usecase.DeliveryUsecase
	userRepo   *mockRepo.MockUserRepository
	tx         txFixture
	mailer     *mockSvc.MockMailer
	pushSender *mockSvc.MockPushSender
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	pushSender := mockSvc.NewMockPushSender(t)
	tx := newTxFixture(t)

	srv := NewDeliveryService(DeliveryServiceParams{
		UserRepo:   userRepo,
		TxManager:  tx.txManager,
		Mailer:     mailer,
		PushSender: pushSender,
		Config:     &config.Config{Email: &config.EmailConfig{AppBaseURL: "https://app.farmdesk.test/"}},
		Logger:     newDiscardLogger(),
	})

	return deliveryServiceFixtures{service: srv, userRepo: userRepo, tx: tx, mailer: mailer, pushSender: pushSender}
}

func taskEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		NotificationID: "n-1",
		UserID:         "uid",
		Kind:           string(entity.NotificationKindTask),
		Title:          "New task assigned",
		Message:        "Fix fence",
		Link:           "/tasks/1",
	}
}

func TestDeliveryService_Deliver_AllChannels(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	user := &entity.User{
		UID:         "uid",
		Email:       "staff@example.com",
		Name:        "Sam",
		Preferences: entity.DefaultNotificationPreferences(),
		PushTokens:  []string{"good", "stale"},
	}

	fx.userRepo.EXPECT().FindByUID(ctx, "uid").Return(user, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return assert.ObjectsAreEqual([]string{"staff@example.com"}, e.To) &&
				e.Subject == "New task assigned" &&
				strings.Contains(e.HTML, `href="https://app.farmdesk.test/tasks/1"`) &&
				strings.Contains(e.HTML, "Hi Sam")
		})).
		Return(nil)
	fx.pushSender.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, "New task assigned", "Fix fence", mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	fx.tx.userRepo.EXPECT().FindByUIDForUpdate(ctx, "uid").
		Return(&entity.User{UID: "uid", PushTokens: []string{"good", "stale"}}, nil)
	fx.tx.userRepo.EXPECT().UpdatePushTokens(ctx, "uid", []string{"good"}).Return(nil)

	require.NoError(t, fx.service.Deliver(ctx, taskEvent()))
}

func TestDeliveryService_Deliver_PruneKeepsTokensAddedMeanwhile(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	prefs := entity.NotificationPreferences{Push: true, TaskReminders: true}

	fx.userRepo.EXPECT().FindByUID(ctx, "uid").
		Return(&entity.User{UID: "uid", Preferences: prefs, PushTokens: []string{"stale"}}, nil)
	fx.pushSender.EXPECT().
		SendBatchNotification(ctx, []string{"stale"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"stale"}, nil)
	// A device registered between the send and the prune.
	fx.tx.userRepo.EXPECT().FindByUIDForUpdate(ctx, "uid").
		Return(&entity.User{UID: "uid", PushTokens: []string{"stale", "fresh"}}, nil)
	fx.tx.userRepo.EXPECT().UpdatePushTokens(ctx, "uid", []string{"fresh"}).Return(nil)

	require.NoError(t, fx.service.Deliver(ctx, taskEvent()))
}

func TestDeliveryService_Deliver_RespectsPreferences(t *testing.T) {
	tests := []struct {
		name  string
		prefs entity.NotificationPreferences
		setup func(ctx context.Context, fx deliveryServiceFixtures)
	}{
		{
			name:  "task reminders disabled",
			prefs: entity.NotificationPreferences{Email: true, Push: true, TaskReminders: false},
		},
		{
			name:  "email only",
			prefs: entity.NotificationPreferences{Email: true, Push: false, TaskReminders: true},
			setup: func(ctx context.Context, fx deliveryServiceFixtures) {
				fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil)
			},
		},
		{
			name:  "push only with a failing sender",
			prefs: entity.NotificationPreferences{Email: false, Push: true, TaskReminders: true},
			setup: func(ctx context.Context, fx deliveryServiceFixtures) {
				fx.pushSender.EXPECT().
					SendBatchNotification(ctx, []string{"token"}, mock.Anything, mock.Anything, mock.Anything).
					Return(0, 0, nil, errors.New("fcm unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeliveryService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().FindByUID(ctx, "uid").
				Return(&entity.User{UID: "uid", Email: "a@example.com", Preferences: tt.prefs, PushTokens: []string{"token"}}, nil)
			if tt.setup != nil {
				tt.setup(ctx, fx)
			}

			require.NoError(t, fx.service.Deliver(ctx, taskEvent()))
		})
	}
}

func TestDeliveryService_Deliver_Recipient(t *testing.T) {
	t.Run("unknown recipient is dropped", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUID(ctx, "uid").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.Deliver(ctx, taskEvent()))
	})

	t.Run("lookup failure asks for redelivery", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUID(ctx, "uid").Return(nil, errors.New("db down"))

		require.Error(t, fx.service.Deliver(ctx, taskEvent()))
	})
}
