package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/stats"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdvisorServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAdvisorUsecase) {
	advisorUC := mockUsecase.NewMockAdvisorUsecase(t)
	h := NewAdvisorHandler(AdvisorHandlerParams{AdvisorUC: advisorUC})

	e := newTestEcho(ownerActor)
	e.POST("/advisor/question", h.AskQuestion)
	e.POST("/advisor/planting", h.PlantingAdvice)
	e.POST("/advisor/yield", h.YieldOptimization)
	e.POST("/advisor/livestock", h.LivestockHealth)
	e.POST("/advisor/finance", h.FinancialInsights)

	return e, advisorUC
}

func TestAdvisorHandler_AskQuestion(t *testing.T) {
	e, advisorUC := createTestAdvisorServer(t)

	advisorUC.EXPECT().
		AskQuestion(mock.Anything, ownerActor, &usecase.AskQuestionInput{Question: "When should I lime?"}).
		Return(&usecase.AskQuestionOutput{Answer: "In autumn", Tips: []string{"Test pH first"}}, nil)

	rec := doRequest(e, http.MethodPost, "/advisor/question", `{"question":"When should I lime?"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out usecase.AskQuestionOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "In autumn", out.Answer)
	assert.Equal(t, []string{"Test pH first"}, out.Tips)
}

func TestAdvisorHandler_Validation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "empty question", target: "/advisor/question", body: `{"question":""}`},
		{name: "planting without crop", target: "/advisor/planting", body: `{}`},
		{name: "livestock without symptoms", target: "/advisor/livestock", body: `{"species":"goat"}`},
		{name: "finance with bad date", target: "/advisor/finance", body: `{"from":"yesterday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestAdvisorServer(t)

			rec := doRequest(e, http.MethodPost, tt.target, tt.body)

			requireErrorResponse(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestAdvisorHandler_PlantingAndYield(t *testing.T) {
	e, advisorUC := createTestAdvisorServer(t)
	fieldID := uuid.New()

	advisorUC.EXPECT().
		PlantingAdvice(mock.Anything, ownerActor, &usecase.PlantingAdviceInput{FieldID: &fieldID, Crop: "barley"}).
		Return(&usecase.PlantingAdviceOutput{PlantingWindow: "March"}, nil)
	advisorUC.EXPECT().
		YieldOptimization(mock.Anything, ownerActor, &usecase.YieldOptimizationInput{Crop: "barley"}).
		Return(&usecase.YieldOptimizationOutput{Summary: usecase.YieldSummary{Trend: stats.TrendIncreasing}}, nil)

	rec := doRequest(e, http.MethodPost, "/advisor/planting", `{"field_id":"`+fieldID.String()+`","crop":"barley"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/advisor/yield", `{"crop":"barley"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out usecase.YieldOptimizationOutput
	decodeData(t, rec, &out)
	assert.Equal(t, stats.TrendIncreasing, out.Summary.Trend)
}

func TestAdvisorHandler_LivestockHealth(t *testing.T) {
	e, advisorUC := createTestAdvisorServer(t)

	advisorUC.EXPECT().
		LivestockHealth(mock.Anything, ownerActor, &usecase.LivestockHealthInput{AnimalID: "cow-7", Species: "cattle", Symptoms: "limping"}).
		Return(&usecase.LivestockHealthOutput{Urgency: "high", VetRecommended: true}, nil)

	rec := doRequest(e, http.MethodPost, "/advisor/livestock", `{"animal_id":"cow-7","species":"cattle","symptoms":"limping"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out usecase.LivestockHealthOutput
	decodeData(t, rec, &out)
	assert.True(t, out.VetRecommended)
}

func TestAdvisorHandler_FinancialInsights(t *testing.T) {
	e, advisorUC := createTestAdvisorServer(t)

	advisorUC.EXPECT().
		FinancialInsights(mock.Anything, ownerActor, mock.MatchedBy(func(in *usecase.FinancialInsightsInput) bool {
			return in.From != nil && in.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) && in.To == nil
		})).
		Return(&usecase.FinancialInsightsOutput{Summary: usecase.FinanceSummary{Net: 120}}, nil)

	rec := doRequest(e, http.MethodPost, "/advisor/finance", `{"from":"2024-01-01"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out usecase.FinancialInsightsOutput
	decodeData(t, rec, &out)
	assert.InDelta(t, 120.0, out.Summary.Net, 1e-9)
}

func TestAdvisorHandler_Unavailable(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "subscription required", ucErr: domainerrors.ErrSubscriptionRequired, wantStatus: http.StatusPaymentRequired, wantCode: "SUBSCRIPTION_REQUIRED"},
		{name: "model failure", ucErr: domainerrors.ErrAdvisorUnavailable, wantStatus: http.StatusBadGateway, wantCode: "ADVISOR_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, advisorUC := createTestAdvisorServer(t)
			advisorUC.EXPECT().AskQuestion(mock.Anything, ownerActor, mock.Anything).Return(nil, tt.ucErr)

			rec := doRequest(e, http.MethodPost, "/advisor/question", `{"question":"Anything?"}`)

			requireErrorResponse(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}
