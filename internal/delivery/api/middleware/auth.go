package middleware

import (
	"log/slog"
	"strings"

	"farmdesk/internal/delivery/api/response"
	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/constants"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/errors"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier  service.IdentityVerifier
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware verifies identity tokens and resolves the calling actor.
type AuthMiddleware struct {
	verifier  service.IdentityVerifier
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  params.Verifier,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate validates the bearer token and stores the actor on the context.
// The caller's user document is created on first sight.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidIdentityToken) {
				logger.Warn("Identity verification failed", slog.Any("error", err))
			}

			return response.HandleAppError(c, domainerrors.ErrIdentityTokenInvalid)
		}

		actor, err := m.accountUC.ResolveActor(ctx, identity)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(constants.CtxUserUID, actor.UID)
		c.Set(constants.CtxUserEmail, actor.Email)
		c.Set(constants.CtxActor, actor)

		tenant := deliverycontext.Tenant{UID: actor.UID}
		if actor.FarmID != uuid.Nil {
			tenant.FarmID = actor.FarmID.String()
		}
		c.SetRequest(c.Request().WithContext(deliverycontext.WithTenant(ctx, tenant, m.logger)))

		return next(c)
	}
}

// RequireFarm rejects callers that have not onboarded or joined a farm.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireFarm(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}
		if actor.FarmID == uuid.Nil {
			return response.HandleAppError(c, domainerrors.ErrNoFarm)
		}

		return next(c)
	}
}

// RequireOwner rejects callers that do not own their farm.
// It must be used AFTER the RequireFarm middleware.
func (m *AuthMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}
		if !actor.IsOwner {
			return response.HandleAppError(c, domainerrors.ErrFarmOwnerRequired)
		}

		return next(c)
	}
}

// GetActor returns the actor stored by Authenticate.
func GetActor(c echo.Context) (*usecase.Actor, bool) {
	actor, ok := c.Get(constants.CtxActor).(*usecase.Actor)

	return actor, ok && actor != nil
}

// GetUserUID returns the caller's identity provider uid.
func GetUserUID(c echo.Context) (string, bool) {
	uid, ok := c.Get(constants.CtxUserUID).(string)

	return uid, ok && uid != ""
}
