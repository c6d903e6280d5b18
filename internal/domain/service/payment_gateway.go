package service

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidWebhookSignature is returned when a webhook payload fails verification.
var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// CheckoutRequest describes a subscription checkout for one user.
type CheckoutRequest struct {
	UserUID    string
	Email      string
	CustomerID string // reuse an existing payment customer when set
	Plan       string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// BillingEventType mirrors the payment processor's event names.
type BillingEventType string

const (
	BillingEventCheckoutCompleted       BillingEventType = "checkout.session.completed"
	BillingEventSubscriptionCreated     BillingEventType = "customer.subscription.created"
	BillingEventSubscriptionUpdated     BillingEventType = "customer.subscription.updated"
	BillingEventSubscriptionDeleted     BillingEventType = "customer.subscription.deleted"
	BillingEventInvoicePaymentSucceeded BillingEventType = "invoice.payment_succeeded"
	BillingEventInvoicePaymentFailed    BillingEventType = "invoice.payment_failed"
)

// BillingEvent is the processor-neutral view of a verified webhook event.
// Only the fields relevant to Type are populated.
type BillingEvent struct {
	ID                string
	Type              BillingEventType
	CustomerID        string
	SubscriptionID    string
	ClientReference   string
	Plan              string // from session metadata
	PriceID           string // first subscription item
	Status            string
	CurrentPeriodEnd  *time.Time
	CancelAtPeriodEnd bool
}

// PaymentGateway is the payment processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)

	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signature string) (*BillingEvent, error)
}
