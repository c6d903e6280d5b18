package usecase

import (
	"context"
	"time"

	"farmdesk/internal/domain/stats"

	"github.com/google/uuid"
)

type AskQuestionInput struct {
	Question string
}

type AskQuestionOutput struct {
	Answer  string   `json:"answer"`
	Tips    []string `json:"tips"`
	Context string   `json:"context"`
}

type PlantingAdviceInput struct {
	FieldID *uuid.UUID
	Crop    string
}

type PlantingSummary struct {
	Soil            string `json:"soil"`
	RecentPlantings string `json:"recent_plantings"`
	Weather         string `json:"weather"`
}

type PlantingAdviceOutput struct {
	Recommendations []string        `json:"recommendations"`
	PlantingWindow  string          `json:"planting_window"`
	SoilAmendments  []string        `json:"soil_amendments"`
	Risks           []string        `json:"risks"`
	Summary         PlantingSummary `json:"summary"`
}

type YieldOptimizationInput struct {
	FieldID *uuid.UUID
	Crop    string
}

type YieldSummary struct {
	Harvests     int         `json:"harvests"`
	AverageYield float64     `json:"average_yield"`
	Trend        stats.Trend `json:"trend"`
	Fertilizer   string      `json:"fertilizer"`
	Irrigation   string      `json:"irrigation"`
	Soil         string      `json:"soil"`
}

type YieldOptimizationOutput struct {
	Recommendations []string     `json:"recommendations"`
	PriorityActions []string     `json:"priority_actions"`
	ExpectedImpact  string       `json:"expected_impact"`
	Summary         YieldSummary `json:"summary"`
}

type LivestockHealthInput struct {
	AnimalID string
	Species  string
	Symptoms string
}

type LivestockHealthOutput struct {
	PossibleConditions []string `json:"possible_conditions"`
	RecommendedActions []string `json:"recommended_actions"`
	Urgency            string   `json:"urgency"`
	VetRecommended     bool     `json:"vet_recommended"`
	Summary            string   `json:"summary"`
}

type FinancialInsightsInput struct {
	From *time.Time
	To   *time.Time
}

type FinanceSummary struct {
	TotalRevenue       float64               `json:"total_revenue"`
	TotalExpenses      float64               `json:"total_expenses"`
	Net                float64               `json:"net"`
	RevenueByCategory  []stats.CategoryTotal `json:"revenue_by_category"`
	ExpensesByCategory []stats.CategoryTotal `json:"expenses_by_category"`
}

type FinancialInsightsOutput struct {
	Insights             []string       `json:"insights"`
	CostSavings          []string       `json:"cost_savings"`
	RevenueOpportunities []string       `json:"revenue_opportunities"`
	Summary              FinanceSummary `json:"summary"`
}

// AdvisorUsecase runs the LLM-backed advice flows. Each flow gathers a bounded
// amount of farm context, summarises it locally and asks the model for a
// structured reply.
type AdvisorUsecase interface {
	AskQuestion(ctx context.Context, actor *Actor, input *AskQuestionInput) (*AskQuestionOutput, error)
	PlantingAdvice(ctx context.Context, actor *Actor, input *PlantingAdviceInput) (*PlantingAdviceOutput, error)
	YieldOptimization(ctx context.Context, actor *Actor, input *YieldOptimizationInput) (*YieldOptimizationOutput, error)
	LivestockHealth(ctx context.Context, actor *Actor, input *LivestockHealthInput) (*LivestockHealthOutput, error)
	FinancialInsights(ctx context.Context, actor *Actor, input *FinancialInsightsInput) (*FinancialInsightsOutput, error)
}
