package handler

import (
	"encoding/json"
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FieldHandlerParams holds dependencies for FieldHandler, injected by Fx.
type FieldHandlerParams struct {
	fx.In

	FieldUC usecase.FieldUsecase
}

type FieldHandler struct {
	fieldUC usecase.FieldUsecase
}

// NewFieldHandler is the constructor for FieldHandler
func NewFieldHandler(params FieldHandlerParams) *FieldHandler {
	return &FieldHandler{fieldUC: params.FieldUC}
}

// FieldRequest is the body of field create and update. Boundary is a GeoJSON
// polygon; null clears it on update.
type FieldRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	SizeHectares *float64        `json:"size_hectares" validate:"omitempty,gte=0"`
	CropType     string          `json:"crop_type" validate:"max=100"`
	SoilType     string          `json:"soil_type" validate:"max=100"`
	Boundary     json.RawMessage `json:"boundary"`
}

func (r *FieldRequest) toInput() *usecase.FieldInput {
	return &usecase.FieldInput{
		Name:         r.Name,
		SizeHectares: r.SizeHectares,
		CropType:     r.CropType,
		SoilType:     r.SoilType,
		Boundary:     r.Boundary,
	}
}

func (h *FieldHandler) CreateField(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req FieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	field, err := h.fieldUC.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, field)
}

func (h *FieldHandler) ListFields(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	fields, err := h.fieldUC.List(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fields)
}

func (h *FieldHandler) GetField(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid field ID")
	}

	field, err := h.fieldUC.Get(c.Request().Context(), actor, fieldID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, field)
}

func (h *FieldHandler) UpdateField(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid field ID")
	}

	var req FieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	field, err := h.fieldUC.Update(c.Request().Context(), actor, fieldID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, field)
}

func (h *FieldHandler) DeleteField(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid field ID")
	}

	if err := h.fieldUC.Delete(c.Request().Context(), actor, fieldID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
