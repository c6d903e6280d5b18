package usecase

import (
	"context"

	"farmdesk/internal/domain/service"
)

// BillingUsecase mirrors payment processor state onto user documents.
type BillingUsecase interface {
	CreateCheckout(ctx context.Context, uid, plan string) (*service.CheckoutSession, error)

	// HandleWebhook verifies and applies one processor event.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
