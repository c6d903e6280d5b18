package impl

import (
	"context"
	"log/slog"
	"strings"

	"farmdesk/config"
	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type billingService struct {
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	notifier    usecase.NotificationUsecase
	priceByPlan map[string]string
	planByPrice map[string]string
	successURL  string
	cancelURL   string
	logger      *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
// Gateway is nil when no payment processor is configured.
type BillingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Gateway  service.PaymentGateway `optional:"true"`
	Notifier usecase.NotificationUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	srv := &billingService{
		userRepo:    params.UserRepo,
		gateway:     params.Gateway,
		notifier:    params.Notifier,
		priceByPlan: map[string]string{},
		planByPrice: map[string]string{},
		logger:      params.Logger,
	}

	if params.Config != nil && params.Config.Billing != nil {
		billing := params.Config.Billing
		for plan, price := range billing.Plans {
			plan = strings.ToLower(plan)
			srv.priceByPlan[plan] = price
			srv.planByPrice[price] = plan
		}
		srv.successURL = billing.SuccessURL
		srv.cancelURL = billing.CancelURL
	}

	return srv
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout opens a subscription checkout session for the caller.
func (srv *billingService) CreateCheckout(ctx context.Context, uid, plan string) (*service.CheckoutSession, error) {
	if srv.gateway == nil {
		return nil, domainerrors.ErrBillingUnavailable
	}

	plan = strings.ToLower(strings.TrimSpace(plan))
	priceID, ok := srv.priceByPlan[plan]
	if !ok {
		return nil, domainerrors.ErrUnknownPlan.WithDetails("plan " + plan + " is not offered")
	}

	user, err := srv.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		UserUID:    user.UID,
		Email:      user.Email,
		CustomerID: user.Subscription.StripeCustomerID,
		Plan:       plan,
		PriceID:    priceID,
		SuccessURL: srv.successURL,
		CancelURL:  srv.cancelURL,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.String("uid", uid), slog.String("plan", plan), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	srv.log(ctx).Info("Checkout session created", slog.String("uid", uid), slog.String("plan", plan), slog.String("sessionID", session.ID))

	return session, nil
}

// HandleWebhook applies one verified processor event to the matching user.
// Events for unknown customers and unhandled types are acknowledged.
func (srv *billingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if srv.gateway == nil {
		return domainerrors.ErrBillingUnavailable
	}

	event, err := srv.gateway.ParseWebhook(payload, signature)
	if errors.Is(err, service.ErrInvalidWebhookSignature) {
		return domainerrors.ErrWebhookSignature
	}
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	logger := srv.log(ctx).With(slog.String("eventID", event.ID), slog.String("eventType", string(event.Type)))

	apply := srv.mutation(event)
	if apply == nil {
		logger.Debug("Ignoring billing event")

		return nil
	}

	user, err := srv.findEventUser(ctx, event)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Warn("Billing event for unknown customer", slog.String("customerID", event.CustomerID))

		return nil
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load billing customer")
	}

	apply(&user.Subscription)

	if err := srv.userRepo.UpdateSubscription(ctx, user.UID, user.Subscription); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update subscription")
	}

	logger.Info("Subscription updated",
		slog.String("uid", user.UID),
		slog.String("plan", user.Subscription.Plan),
		slog.String("status", string(user.Subscription.Status)),
	)

	if event.Type == service.BillingEventInvoicePaymentFailed {
		_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
			UserID:  user.UID,
			Title:   "Payment failed",
			Message: "We could not process your latest subscription payment. Please update your payment method.",
			Kind:    entity.NotificationKindBilling,
			Link:    "/billing",
		})
		if err != nil {
			logger.Warn("Failed to notify about failed payment", slog.Any("error", err))
		}
	}

	return nil
}

// mutation maps an event onto the subscription fields it changes. It returns
// nil for event types that are not mirrored.
func (srv *billingService) mutation(event *service.BillingEvent) func(*entity.Subscription) {
	switch event.Type {
	case service.BillingEventCheckoutCompleted:
		return func(sub *entity.Subscription) {
			sub.StripeCustomerID = event.CustomerID
			sub.StripeSubscriptionID = event.SubscriptionID
			if event.Plan != "" {
				sub.Plan = strings.ToLower(event.Plan)
			}
			sub.Status = entity.SubscriptionStatusActive
		}
	case service.BillingEventSubscriptionCreated, service.BillingEventSubscriptionUpdated:
		return func(sub *entity.Subscription) {
			if event.CustomerID != "" {
				sub.StripeCustomerID = event.CustomerID
			}
			if event.SubscriptionID != "" {
				sub.StripeSubscriptionID = event.SubscriptionID
			}
			sub.Status = entity.SubscriptionStatus(event.Status)
			if plan, ok := srv.planByPrice[event.PriceID]; ok {
				sub.Plan = plan
			}
			sub.CurrentPeriodEnd = event.CurrentPeriodEnd
			sub.CancelAtPeriodEnd = event.CancelAtPeriodEnd
		}
	case service.BillingEventSubscriptionDeleted:
		return func(sub *entity.Subscription) {
			sub.Status = entity.SubscriptionStatusCanceled
			sub.Plan = entity.PlanFree
			sub.CancelAtPeriodEnd = false
		}
	case service.BillingEventInvoicePaymentSucceeded:
		return func(sub *entity.Subscription) {
			sub.Status = entity.SubscriptionStatusActive
		}
	case service.BillingEventInvoicePaymentFailed:
		return func(sub *entity.Subscription) {
			sub.Status = entity.SubscriptionStatusPastDue
		}
	default:
		return nil
	}
}

// findEventUser prefers the checkout's client reference (our uid) and falls
// back to the processor customer id.
func (srv *billingService) findEventUser(ctx context.Context, event *service.BillingEvent) (*entity.User, error) {
	if event.ClientReference != "" {
		user, err := srv.userRepo.FindByUID(ctx, event.ClientReference)
		if !errors.Is(err, repository.ErrUserNotFound) {
			return user, err
		}
	}

	if event.CustomerID == "" {
		return nil, repository.ErrUserNotFound
	}

	return srv.userRepo.FindByStripeCustomerID(ctx, event.CustomerID)
}
