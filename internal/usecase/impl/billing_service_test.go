package impl

import (
	"context"
	"testing"
	"time"

	"farmdesk/config"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	mockRepo "farmdesk/internal/mocks/repository"
	mockSvc "farmdesk/internal/mocks/service"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingServiceFixtures struct {
	service  usecase.BillingUsecase
	userRepo *mockRepo.MockUserRepository
	gateway  *mockSvc.MockPaymentGateway
	notifier *mockUsecase.MockNotificationUsecase
}

func testBillingConfig() *config.Config {
	return &config.Config{Billing: &config.BillingConfig{
		SuccessURL: "https://app.farmdesk.test/billing/success",
		CancelURL:  "https://app.farmdesk.test/billing",
		Plans:      map[string]string{"Pro": "price_pro", "team": "price_team"},
	}}
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	fx := billingServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		gateway:  mockSvc.NewMockPaymentGateway(t),
		notifier: mockUsecase.NewMockNotificationUsecase(t),
	}
	fx.service = NewBillingService(BillingServiceParams{
		UserRepo: fx.userRepo,
		Gateway:  fx.gateway,
		Notifier: fx.notifier,
		Config:   testBillingConfig(),
		Logger:   newDiscardLogger(),
	})

	return fx
}

func TestBillingService_Unconfigured(t *testing.T) {
	srv := NewBillingService(BillingServiceParams{
		UserRepo: mockRepo.NewMockUserRepository(t),
		Notifier: mockUsecase.NewMockNotificationUsecase(t),
		Config:   &config.Config{},
		Logger:   newDiscardLogger(),
	})

	_, err := srv.CreateCheckout(context.Background(), "uid", "pro")
	requireErrorCode(t, err, domainerrors.ErrBillingUnavailable)

	err = srv.HandleWebhook(context.Background(), []byte("{}"), "sig")
	requireErrorCode(t, err, domainerrors.ErrBillingUnavailable)
}

func TestBillingService_CreateCheckout(t *testing.T) {
	t.Run("known plan", func(t *testing.T) {
		fx := createTestBillingService(t)
		ctx := context.Background()
		user := &entity.User{UID: "uid", Email: "owner@example.com"}
		user.Subscription.StripeCustomerID = "cus_1"

		fx.userRepo.EXPECT().FindByUID(ctx, "uid").Return(user, nil)
		fx.gateway.EXPECT().
			CreateCheckoutSession(ctx, &service.CheckoutRequest{
				UserUID:    "uid",
				Email:      "owner@example.com",
				CustomerID: "cus_1",
				Plan:       "pro",
				PriceID:    "price_pro",
				SuccessURL: "https://app.farmdesk.test/billing/success",
				CancelURL:  "https://app.farmdesk.test/billing",
			}).
			Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1"}, nil)

		session, err := fx.service.CreateCheckout(ctx, "uid", " PRO ")

		require.NoError(t, err)
		assert.Equal(t, "cs_1", session.ID)
	})

	t.Run("unknown plan", func(t *testing.T) {
		fx := createTestBillingService(t)

		_, err := fx.service.CreateCheckout(context.Background(), "uid", "enterprise")

		requireErrorCode(t, err, domainerrors.ErrUnknownPlan)
	})
}

func TestBillingService_HandleWebhook(t *testing.T) {
	periodEnd := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		event  *service.BillingEvent
		before entity.Subscription
		want   entity.Subscription
		notify bool
	}{
		{
			name:  "checkout completed",
			event: &service.BillingEvent{ID: "evt_1", Type: service.BillingEventCheckoutCompleted, ClientReference: "uid", CustomerID: "cus_1", SubscriptionID: "sub_1", Plan: "Pro"},
			want:  entity.Subscription{Plan: "pro", Status: entity.SubscriptionStatusActive, StripeCustomerID: "cus_1", StripeSubscriptionID: "sub_1"},
		},
		{
			name:   "subscription updated",
			event:  &service.BillingEvent{ID: "evt_2", Type: service.BillingEventSubscriptionUpdated, CustomerID: "cus_1", SubscriptionID: "sub_1", PriceID: "price_team", Status: "active", CurrentPeriodEnd: &periodEnd, CancelAtPeriodEnd: true},
			before: entity.Subscription{Plan: "pro", StripeCustomerID: "cus_1"},
			want:   entity.Subscription{Plan: "team", Status: entity.SubscriptionStatusActive, StripeCustomerID: "cus_1", StripeSubscriptionID: "sub_1", CurrentPeriodEnd: &periodEnd, CancelAtPeriodEnd: true},
		},
		{
			name:   "subscription deleted",
			event:  &service.BillingEvent{ID: "evt_3", Type: service.BillingEventSubscriptionDeleted, CustomerID: "cus_1"},
			before: entity.Subscription{Plan: "pro", Status: entity.SubscriptionStatusActive, StripeCustomerID: "cus_1", CancelAtPeriodEnd: true},
			want:   entity.Subscription{Plan: entity.PlanFree, Status: entity.SubscriptionStatusCanceled, StripeCustomerID: "cus_1"},
		},
		{
			name:   "payment failed",
			event:  &service.BillingEvent{ID: "evt_4", Type: service.BillingEventInvoicePaymentFailed, CustomerID: "cus_1"},
			before: entity.Subscription{Plan: "pro", Status: entity.SubscriptionStatusActive, StripeCustomerID: "cus_1"},
			want:   entity.Subscription{Plan: "pro", Status: entity.SubscriptionStatusPastDue, StripeCustomerID: "cus_1"},
			notify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBillingService(t)
			ctx := context.Background()
			user := &entity.User{UID: "uid", Subscription: tt.before}

			fx.gateway.EXPECT().ParseWebhook([]byte("payload"), "sig").Return(tt.event, nil)
			if tt.event.ClientReference != "" {
				fx.userRepo.EXPECT().FindByUID(ctx, tt.event.ClientReference).Return(user, nil)
			} else {
				fx.userRepo.EXPECT().FindByStripeCustomerID(ctx, "cus_1").Return(user, nil)
			}
			fx.userRepo.EXPECT().UpdateSubscription(ctx, "uid", tt.want).Return(nil)
			if tt.notify {
				fx.notifier.EXPECT().
					Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
						return in.UserID == "uid" && in.Kind == entity.NotificationKindBilling
					})).
					Return(&entity.Notification{}, nil)
			}

			require.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
			assert.Equal(t, tt.want, user.Subscription)
		})
	}
}

func TestBillingService_HandleWebhook_SubscriptionBeforeCheckout(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	periodEnd := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	user := &entity.User{UID: "uid", Subscription: entity.Subscription{Plan: entity.PlanFree}}

	created := &service.BillingEvent{
		ID:               "evt_sub",
		Type:             service.BillingEventSubscriptionCreated,
		ClientReference:  "uid",
		CustomerID:       "cus_new",
		SubscriptionID:   "sub_new",
		PriceID:          "price_pro",
		Status:           "active",
		CurrentPeriodEnd: &periodEnd,
	}
	completed := &service.BillingEvent{
		ID:              "evt_checkout",
		Type:            service.BillingEventCheckoutCompleted,
		ClientReference: "uid",
		CustomerID:      "cus_new",
		SubscriptionID:  "sub_new",
		Plan:            "pro",
	}
	want := entity.Subscription{
		Plan:                 "pro",
		Status:               entity.SubscriptionStatusActive,
		StripeCustomerID:     "cus_new",
		StripeSubscriptionID: "sub_new",
		CurrentPeriodEnd:     &periodEnd,
	}

	fx.gateway.EXPECT().ParseWebhook([]byte("created"), "sig").Return(created, nil)
	fx.gateway.EXPECT().ParseWebhook([]byte("completed"), "sig").Return(completed, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "uid").Return(user, nil).Times(2)
	fx.userRepo.EXPECT().UpdateSubscription(ctx, "uid", want).Return(nil).Times(2)

	require.NoError(t, fx.service.HandleWebhook(ctx, []byte("created"), "sig"))
	require.NoError(t, fx.service.HandleWebhook(ctx, []byte("completed"), "sig"))
	assert.Equal(t, want, user.Subscription)
}

func TestBillingService_HandleWebhook_Edges(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		fx := createTestBillingService(t)

		fx.gateway.EXPECT().ParseWebhook(mock.Anything, "forged").Return(nil, service.ErrInvalidWebhookSignature)

		err := fx.service.HandleWebhook(context.Background(), []byte("payload"), "forged")

		requireErrorCode(t, err, domainerrors.ErrWebhookSignature)
	})

	t.Run("unhandled event type is acknowledged", func(t *testing.T) {
		fx := createTestBillingService(t)

		fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).
			Return(&service.BillingEvent{ID: "evt", Type: "charge.refunded"}, nil)

		require.NoError(t, fx.service.HandleWebhook(context.Background(), []byte("payload"), "sig"))
	})

	t.Run("unknown customer is acknowledged", func(t *testing.T) {
		fx := createTestBillingService(t)
		ctx := context.Background()

		fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).
			Return(&service.BillingEvent{ID: "evt", Type: service.BillingEventInvoicePaymentSucceeded, CustomerID: "cus_x"}, nil)
		fx.userRepo.EXPECT().FindByStripeCustomerID(ctx, "cus_x").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
	})

	t.Run("store failure is retried by the processor", func(t *testing.T) {
		fx := createTestBillingService(t)
		ctx := context.Background()

		fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).
			Return(&service.BillingEvent{ID: "evt", Type: service.BillingEventInvoicePaymentSucceeded, CustomerID: "cus_1"}, nil)
		fx.userRepo.EXPECT().FindByStripeCustomerID(ctx, "cus_1").Return(nil, errors.New("db down"))

		err := fx.service.HandleWebhook(ctx, []byte("payload"), "sig")

		requireErrorCode(t, err, domainerrors.NewDatabaseExecuteError(nil, ""))
	})
}
