package usecase

import (
	"context"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/service"
)

// --- Input DTOs ---

// OnboardInput creates the caller's user document together with their farm.
type OnboardInput struct {
	UID       string
	Email     string
	Name      string
	FarmName  string
	Latitude  float64
	Longitude float64
}

// UpdateProfileInput carries the optional profile changes.
type UpdateProfileInput struct {
	Name        *string
	Preferences *entity.NotificationPreferences
}

// --- Output DTOs ---

type OnboardOutput struct {
	User *entity.User
	Farm *entity.Farm
}

// AccountUsecase covers the caller's own user document.
type AccountUsecase interface {
	Onboard(ctx context.Context, input *OnboardInput) (*OnboardOutput, error)
	GetProfile(ctx context.Context, uid string) (*entity.User, error)
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*entity.User, error)
	RegisterPushToken(ctx context.Context, uid, token string) error

	// ResolveActor loads the caller, creating their user document on first
	// sight. FarmID is uuid.Nil until the caller onboards or joins a farm.
	ResolveActor(ctx context.Context, identity *service.Identity) (*Actor, error)
}
