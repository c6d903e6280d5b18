package handler

import (
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdvisorHandlerParams holds dependencies for AdvisorHandler, injected by Fx.
type AdvisorHandlerParams struct {
	fx.In

	AdvisorUC usecase.AdvisorUsecase
}

// AdvisorHandler exposes the advice flows.
type AdvisorHandler struct {
	advisorUC usecase.AdvisorUsecase
}

// NewAdvisorHandler is the constructor for AdvisorHandler
func NewAdvisorHandler(params AdvisorHandlerParams) *AdvisorHandler {
	return &AdvisorHandler{advisorUC: params.AdvisorUC}
}

type AskQuestionRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

type PlantingAdviceRequest struct {
	FieldID *uuid.UUID `json:"field_id"`
	Crop    string     `json:"crop" validate:"required,max=100"`
}

type YieldOptimizationRequest struct {
	FieldID *uuid.UUID `json:"field_id"`
	Crop    string     `json:"crop" validate:"max=100"`
}

type LivestockHealthRequest struct {
	AnimalID string `json:"animal_id" validate:"max=100"`
	Species  string `json:"species" validate:"max=100"`
	Symptoms string `json:"symptoms" validate:"required,max=2000"`
}

// FinancialInsightsRequest bounds the period with YYYY-MM-DD or RFC 3339 dates.
type FinancialInsightsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *AdvisorHandler) AskQuestion(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req AskQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.advisorUC.AskQuestion(c.Request().Context(), actor, &usecase.AskQuestionInput{Question: req.Question})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdvisorHandler) PlantingAdvice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlantingAdviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid planting advice input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.advisorUC.PlantingAdvice(c.Request().Context(), actor, &usecase.PlantingAdviceInput{
		FieldID: req.FieldID,
		Crop:    req.Crop,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdvisorHandler) YieldOptimization(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req YieldOptimizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid yield optimization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.advisorUC.YieldOptimization(c.Request().Context(), actor, &usecase.YieldOptimizationInput{
		FieldID: req.FieldID,
		Crop:    req.Crop,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdvisorHandler) LivestockHealth(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req LivestockHealthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid livestock health input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.advisorUC.LivestockHealth(c.Request().Context(), actor, &usecase.LivestockHealthInput{
		AnimalID: req.AnimalID,
		Species:  req.Species,
		Symptoms: req.Symptoms,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdvisorHandler) FinancialInsights(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req FinancialInsightsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid financial insights input")
	}

	from, err := parseDate(req.From)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	to, err := parseEndDate(req.To)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.advisorUC.FinancialInsights(c.Request().Context(), actor, &usecase.FinancialInsightsInput{From: from, To: to})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}
