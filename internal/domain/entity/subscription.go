// Package entity contains the core business objects of the project.
package entity

import "time"

// Plan names. Paid plan names are configured against processor price IDs.
const PlanFree = "free"

// SubscriptionStatus mirrors the payment processor's subscription status.
type SubscriptionStatus string

const (
	SubscriptionStatusNone     SubscriptionStatus = "none"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid   SubscriptionStatus = "unpaid"
)

// Subscription is the billing state mirrored onto the user document.
type Subscription struct {
	Plan                 string             `json:"plan"`
	Status               SubscriptionStatus `json:"status"`
	StripeCustomerID     string             `json:"-"`
	StripeSubscriptionID string             `json:"-"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd    bool               `json:"cancel_at_period_end"`
}

// IsActive reports whether paid features should be available.
func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusTrialing
}
