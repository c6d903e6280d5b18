package handler

import (
	"net/http"
	"time"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DevHandlerParams holds dependencies for DevHandler, injected by Fx.
// TokenService is nil unless auth.jwtSecret is configured.
type DevHandlerParams struct {
	fx.In

	TokenService service.TokenService `optional:"true"`
}

// DevHandler serves development-only endpoints.
type DevHandler struct {
	tokenSvc service.TokenService
}

// NewDevHandler creates a new DevHandler instance
func NewDevHandler(params DevHandlerParams) *DevHandler {
	return &DevHandler{tokenSvc: params.TokenService}
}

// CanIssueTokens reports whether local identity tokens can be minted.
func (h *DevHandler) CanIssueTokens() bool {
	return h.tokenSvc != nil
}

type IssueTokenRequest struct {
	UID   string `json:"uid" validate:"required,max=128"`
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name" validate:"max=100"`
}

type IssueTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken mints a signed identity token for any uid.
func (h *DevHandler) IssueToken(c echo.Context) error {
	if h.tokenSvc == nil {
		return response.NotFound(c, "NOT_FOUND", "Local tokens are not enabled")
	}

	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, expiresAt, err := h.tokenSvc.GenerateToken(service.Identity{
		UID:   req.UID,
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, IssueTokenResponse{Token: token, ExpiresAt: expiresAt})
}

// WhoAmI echoes the actor resolved by the auth middleware.
func (h *DevHandler) WhoAmI(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"uid":      actor.UID,
		"email":    actor.Email,
		"farm_id":  actor.FarmID,
		"is_owner": actor.IsOwner,
	})
}
