package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/service"
	mockUsecase "farmdesk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBillingServer(t *testing.T) (*echo.Echo, *mockUsecase.MockBillingUsecase) {
	billingUC := mockUsecase.NewMockBillingUsecase(t)
	h := NewBillingHandler(BillingHandlerParams{BillingUC: billingUC})

	e := newTestEcho(ownerActor)
	e.POST("/billing/checkout", h.CreateCheckout)
	e.POST("/webhooks/stripe", h.StripeWebhook)

	return e, billingUC
}

func postWebhook(e *echo.Echo, payload, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestBillingHandler_CreateCheckout(t *testing.T) {
	e, billingUC := createTestBillingServer(t)

	billingUC.EXPECT().
		CreateCheckout(mock.Anything, "owner-uid", "pro").
		Return(&service.CheckoutSession{ID: "cs_123", URL: "https://checkout.test/cs_123"}, nil)

	rec := doRequest(e, http.MethodPost, "/billing/checkout", `{"plan":"pro"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var session service.CheckoutSession
	decodeData(t, rec, &session)
	assert.Equal(t, "https://checkout.test/cs_123", session.URL)
}

func TestBillingHandler_CreateCheckout_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "missing plan", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "unknown plan", body: `{"plan":"gold"}`, ucErr: domainerrors.ErrUnknownPlan, wantStatus: http.StatusBadRequest, wantCode: "UNKNOWN_PLAN"},
		{name: "billing not configured", body: `{"plan":"pro"}`, ucErr: domainerrors.ErrBillingUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "BILLING_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, billingUC := createTestBillingServer(t)
			if tt.ucErr != nil {
				billingUC.EXPECT().CreateCheckout(mock.Anything, "owner-uid", mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(e, http.MethodPost, "/billing/checkout", tt.body)

			requireErrorResponse(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestBillingHandler_StripeWebhook_PassesRawPayload(t *testing.T) {
	e, billingUC := createTestBillingServer(t)
	payload := `{"id":"evt_1","type":"invoice.payment_failed"}`

	billingUC.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil)

	rec := postWebhook(e, payload, "t=1,v1=abc")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ack map[string]bool
	decodeData(t, rec, &ack)
	assert.True(t, ack["received"])
}

func TestBillingHandler_StripeWebhook_Rejections(t *testing.T) {
	e, billingUC := createTestBillingServer(t)

	rec := postWebhook(e, `{}`, "")
	requireErrorResponse(t, rec, http.StatusBadRequest, "MISSING_SIGNATURE")

	billingUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "forged").Return(domainerrors.ErrWebhookSignature)

	rec = postWebhook(e, `{}`, "forged")
	requireErrorResponse(t, rec, http.StatusBadRequest, "WEBHOOK_SIGNATURE_INVALID")
}
