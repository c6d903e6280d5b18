package auth

import (
	"context"
	"log/slog"

	"farmdesk/config"
	"farmdesk/internal/domain/constants"
	"farmdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *firebase.App `optional:"true"`
	JWT    *JWTService   `optional:"true"`
	Logger *slog.Logger
}

// NewIdentityVerifier selects the verifier named by auth.provider.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	provider := constants.AuthProviderFirebase
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase must be configured for the firebase auth provider")
		}
		params.Logger.Info("Verifying identity tokens with Firebase")

		return NewFirebaseVerifier(params.Ctx, params.App)

	case constants.AuthProviderJWT:
		if params.JWT == nil {
			return nil, errors.New("auth.jwtSecret is required for the jwt auth provider")
		}
		params.Logger.Warn("Verifying identity tokens with the local JWT secret")

		return params.JWT, nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

// ProvideJWTService returns nil when no secret is configured so dev-only
// routes can detect its absence.
func ProvideJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, nil
	}

	return NewJWTService(cfg)
}
