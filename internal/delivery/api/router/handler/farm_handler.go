package handler

import (
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FarmHandlerParams holds dependencies for FarmHandler, injected by Fx.
type FarmHandlerParams struct {
	fx.In

	FarmUC usecase.FarmUsecase
}

// FarmHandler serves the caller's farm and its membership.
type FarmHandler struct {
	farmUC usecase.FarmUsecase
}

// NewFarmHandler is the constructor for FarmHandler
func NewFarmHandler(params FarmHandlerParams) *FarmHandler {
	return &FarmHandler{farmUC: params.FarmUC}
}

type UpdateFarmRequest struct {
	FarmName  *string  `json:"farm_name" validate:"omitempty,min=1,max=100"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (h *FarmHandler) GetFarm(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	farm, err := h.farmUC.GetFarm(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, farm)
}

// UpdateFarm changes the farm's name or location. Owner only.
func (h *FarmHandler) UpdateFarm(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateFarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	farm, err := h.farmUC.UpdateFarm(c.Request().Context(), actor.UID, &usecase.UpdateFarmInput{
		FarmName:  req.FarmName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, farm)
}

// RemoveStaff detaches a staff member from the owner's farm.
func (h *FarmHandler) RemoveStaff(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	staffUID := c.Param("uid")
	if staffUID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff uid")
	}

	if err := h.farmUC.RemoveStaff(c.Request().Context(), actor.UID, staffUID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// LeaveFarm detaches the calling staff member from their farm.
func (h *FarmHandler) LeaveFarm(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.farmUC.LeaveFarm(c.Request().Context(), actor.UID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
