package handler

import (
	"io"
	"log/slog"
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stripeSignatureHeader = "Stripe-Signature"

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,max=50"`
}

// CreateCheckout starts a subscription checkout for the caller.
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.billingUC.CreateCheckout(c.Request().Context(), actor.UID, req.Plan)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// StripeWebhook receives payment processor events. The raw body is needed
// for signature verification, so it is not bound.
func (h *BillingHandler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	signature := c.Request().Header.Get(stripeSignatureHeader)
	if signature == "" {
		return response.BadRequest(c, "MISSING_SIGNATURE", "Stripe-Signature header is missing")
	}

	if err := h.billingUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true})
}
