// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the uid or email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByUID retrieves a user by the identity provider's uid.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// FindByUIDForUpdate is FindByUID holding a row lock until the
	// surrounding transaction ends.
	FindByUIDForUpdate(ctx context.Context, uid string) (*entity.User, error)

	// FindByEmail retrieves a user by email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByStripeCustomerID retrieves the user mirrored to a payment customer.
	FindByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// The Update methods write only the columns they name, so concurrent
	// writers to other columns are never reverted.

	// UpdateProfile writes the display name and notification preferences.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdateMembership attaches the user to a farm, or detaches it when farmID is nil.
	UpdateMembership(ctx context.Context, uid string, farmID *uuid.UUID, isFarmOwner bool) error

	// UpdatePushTokens replaces the device token list.
	UpdatePushTokens(ctx context.Context, uid string, tokens []string) error

	// UpdateSubscription writes the mirrored billing state.
	UpdateSubscription(ctx context.Context, uid string, subscription entity.Subscription) error
}
