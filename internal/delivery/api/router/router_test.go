package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmdesk/config"
	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/router/handler"
	mockSvc "farmdesk/internal/mocks/service"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, cfg *config.Config, tokenSvc *mockSvc.MockTokenService) *router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	params := RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
		FarmHandler:    handler.NewFarmHandler(handler.FarmHandlerParams{FarmUC: mockUsecase.NewMockFarmUsecase(t)}),
		FieldHandler:   handler.NewFieldHandler(handler.FieldHandlerParams{FieldUC: mockUsecase.NewMockFieldUsecase(t)}),
		RecordHandler:  handler.NewRecordHandler(handler.RecordHandlerParams{Records: usecase.RecordUsecases{}}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: mockUsecase.NewMockReportUsecase(t)}),
		InvitationHandler: handler.NewInvitationHandler(handler.InvitationHandlerParams{
			InvitationUC: mockUsecase.NewMockInvitationUsecase(t),
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
		}),
		BillingHandler: handler.NewBillingHandler(handler.BillingHandlerParams{BillingUC: mockUsecase.NewMockBillingUsecase(t), Logger: logger}),
		AdvisorHandler: handler.NewAdvisorHandler(handler.AdvisorHandlerParams{AdvisorUC: mockUsecase.NewMockAdvisorUsecase(t)}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Verifier:  mockSvc.NewMockIdentityVerifier(t),
			AccountUC: accountUC,
			Logger:    logger,
		}),
		Config: cfg,
	}
	if tokenSvc != nil {
		params.DevHandler = handler.NewDevHandler(handler.DevHandlerParams{TokenService: tokenSvc})
	} else {
		params.DevHandler = handler.NewDevHandler(handler.DevHandlerParams{})
	}

	return NewRouter(params)
}

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRouter_RegisterRoutes(t *testing.T) {
	e := echo.New()
	newTestRouter(t, &config.Config{}, nil).RegisterRoutes(e)

	routes := registeredRoutes(e)
	for _, want := range []string{
		"GET /health",
		"POST /webhooks/stripe",
		"POST /api/v1/onboarding",
		"GET /api/v1/me",
		"PUT /api/v1/me/push-tokens",
		"POST /api/v1/invitations/:id/accept",
		"GET /api/v1/notifications/unread-count",
		"POST /api/v1/billing/checkout",
		"GET /api/v1/farm",
		"PUT /api/v1/farm",
		"DELETE /api/v1/farm/staff/:uid",
		"GET /api/v1/farm/invitations/:id/qr",
		"POST /api/v1/fields",
		"DELETE /api/v1/fields/:id",
		"POST /api/v1/records/planting",
		"PUT /api/v1/records/health/:id",
		"GET /api/v1/records/revenue",
		"GET /api/v1/reports/finance.xlsx",
		"POST /api/v1/advisor/question",
		"POST /api/v1/advisor/finance",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestRouter_AuthenticatesAPI(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	newTestRouter(t, &config.Config{}, nil).RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/fields", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RegisterTestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config
		withToken  bool
		wantToken  bool
		wantWhoAmI bool
	}{
		{name: "not configured", cfg: &config.Config{}},
		{name: "disabled", cfg: &config.Config{TestRoutes: &config.TestRoutesConfig{}}, withToken: true},
		{
			name:       "enabled without token service",
			cfg:        &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}},
			wantWhoAmI: true,
		},
		{
			name:       "enabled with token service",
			cfg:        &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}},
			withToken:  true,
			wantToken:  true,
			wantWhoAmI: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenSvc *mockSvc.MockTokenService
			if tt.withToken {
				tokenSvc = mockSvc.NewMockTokenService(t)
			}

			e := echo.New()
			newTestRouter(t, tt.cfg, tokenSvc).RegisterTestRoutes(e)

			routes := registeredRoutes(e)
			assert.Equal(t, tt.wantToken, routes["POST /dev/token"])
			assert.Equal(t, tt.wantWhoAmI, routes["GET /dev/whoami"])
		})
	}
}
