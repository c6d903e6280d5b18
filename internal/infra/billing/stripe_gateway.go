// Package billing adapts the Stripe API to the PaymentGateway port.
package billing

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataPlan = "plan"
	// metadataUID rides on the subscription so its events resolve the user
	// even when they arrive before checkout.session.completed.
	metadataUID = "uid"
)

type stripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a PaymentGateway backed by Stripe.
func NewStripeGateway(secretKey, webhookSecret string, backends *stripe.Backends) service.PaymentGateway {
	return &stripeGateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
	}
}

// ProvidePaymentGateway returns nil when billing is not configured; billing
// routes then answer 503.
func ProvidePaymentGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Billing == nil || cfg.Billing.SecretKey == "" {
		logger.Info("Billing not configured, checkout disabled")

		return nil
	}

	return NewStripeGateway(cfg.Billing.SecretKey, cfg.Billing.WebhookSecret, nil)
}

// CreateCheckoutSession opens a hosted subscription checkout.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	session, err := g.api.CheckoutSessions.New(checkoutParams(ctx, req))
	if err != nil {
		return nil, errors.Wrap(err, "stripe checkout session")
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func checkoutParams(ctx context.Context, req *service.CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(req.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.UserUID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{metadataPlan: req.Plan, metadataUID: req.UserUID},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataPlan, req.Plan)

	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	} else if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}

	return params
}

// ParseWebhook verifies the Stripe-Signature header and flattens the event.
// Event types the service does not mirror come back with only ID and Type set.
func (g *stripeGateway) ParseWebhook(payload []byte, signature string) (*service.BillingEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidWebhookSignature, err.Error())
	}

	billingEvent := &service.BillingEvent{
		ID:   event.ID,
		Type: service.BillingEventType(event.Type),
	}
	if event.Data == nil {
		return billingEvent, nil
	}

	switch billingEvent.Type {
	case service.BillingEventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(err, "decode checkout session")
		}
		billingEvent.ClientReference = session.ClientReferenceID
		billingEvent.Plan = session.Metadata[metadataPlan]
		if session.Customer != nil {
			billingEvent.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			billingEvent.SubscriptionID = session.Subscription.ID
		}

	case service.BillingEventSubscriptionCreated,
		service.BillingEventSubscriptionUpdated,
		service.BillingEventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, errors.Wrap(err, "decode subscription")
		}
		billingEvent.SubscriptionID = sub.ID
		billingEvent.ClientReference = sub.Metadata[metadataUID]
		billingEvent.Status = string(sub.Status)
		billingEvent.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
		if sub.Customer != nil {
			billingEvent.CustomerID = sub.Customer.ID
		}
		if sub.CurrentPeriodEnd > 0 {
			end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
			billingEvent.CurrentPeriodEnd = &end
		}
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			billingEvent.PriceID = sub.Items.Data[0].Price.ID
		}

	case service.BillingEventInvoicePaymentSucceeded, service.BillingEventInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, errors.Wrap(err, "decode invoice")
		}
		if invoice.Customer != nil {
			billingEvent.CustomerID = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			billingEvent.SubscriptionID = invoice.Subscription.ID
		}
	}

	return billingEvent, nil
}
