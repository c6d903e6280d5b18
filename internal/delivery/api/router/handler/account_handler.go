package handler

import (
	"log/slog"
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/domain/entity"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the caller's own user document.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// OnboardRequest creates the caller's farm.
type OnboardRequest struct {
	Name      string  `json:"name" validate:"max=100"`
	FarmName  string  `json:"farm_name" validate:"required,max=100"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type OnboardResponse struct {
	User *entity.User `json:"user"`
	Farm *entity.Farm `json:"farm"`
}

// UpdateProfileRequest carries optional profile changes.
type UpdateProfileRequest struct {
	Name        *string                         `json:"name" validate:"omitempty,min=1,max=100"`
	Preferences *entity.NotificationPreferences `json:"notification_preferences"`
}

// RegisterPushTokenRequest registers one device for push notifications.
type RegisterPushTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// Onboard creates the caller's user document and farm.
func (h *AccountHandler) Onboard(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req OnboardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.Onboard(c.Request().Context(), &usecase.OnboardInput{
		UID:       actor.UID,
		Email:     actor.Email,
		Name:      req.Name,
		FarmName:  req.FarmName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, OnboardResponse{User: out.User, Farm: out.Farm})
}

// GetProfile returns the caller's user document.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the caller's name or notification preferences.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), actor.UID, &usecase.UpdateProfileInput{
		Name:        req.Name,
		Preferences: req.Preferences,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RegisterPushToken adds a device token to the caller.
func (h *AccountHandler) RegisterPushToken(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterPushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.accountUC.RegisterPushToken(c.Request().Context(), actor.UID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
