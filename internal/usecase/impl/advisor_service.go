package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"farmdesk/config"
	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Context windows per flow, newest records first.
const (
	plantingSoilLimit        = 5
	plantingHistoryLimit     = 10
	plantingWeatherLimit     = 10
	yieldHarvestLimit        = 20
	yieldFertilizerLimit     = 10
	yieldIrrigationLimit     = 10
	yieldSoilLimit           = 5
	livestockHealthLimit     = 10
	livestockBreedingLimit   = 5
	financeRecordLimit       = 100
	financeSummaryDateLayout = "Jan 2, 2006"
)

type advisorService struct {
	userRepo            repository.UserRepository
	farmRepo            repository.FarmRepository
	fieldRepo           repository.FieldRepository
	records             repository.RecordRepositories
	llm                 service.LanguageModel
	requireSubscription bool
	logger              *slog.Logger
}

// AdvisorServiceParams holds dependencies for AdvisorService, injected by Fx.
// LLM is nil when no model is configured.
type AdvisorServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	FarmRepo  repository.FarmRepository
	FieldRepo repository.FieldRepository
	Records   repository.RecordRepositories
	LLM       service.LanguageModel `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

func NewAdvisorService(params AdvisorServiceParams) usecase.AdvisorUsecase {
	srv := &advisorService{
		userRepo:  params.UserRepo,
		farmRepo:  params.FarmRepo,
		fieldRepo: params.FieldRepo,
		records:   params.Records,
		llm:       params.LLM,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Billing != nil {
		srv.requireSubscription = params.Config.Billing.AdvisorRequiresSubscription
	}

	return srv
}

func (srv *advisorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *advisorService) AskQuestion(ctx context.Context, actor *usecase.Actor, input *usecase.AskQuestionInput) (*usecase.AskQuestionOutput, error) {
	if err := srv.checkAccess(ctx, actor); err != nil {
		return nil, err
	}

	var (
		g      errgroup.Group
		farm   *entity.Farm
		fields []*entity.Field
	)
	g.Go(func() error {
		f, err := srv.farmRepo.FindByID(ctx, actor.FarmID)
		if err != nil {
			srv.omitContext(ctx, "farm", err)

			return nil
		}
		farm = f

		return nil
	})
	g.Go(func() error {
		f, err := srv.fieldRepo.ListByFarm(ctx, actor.FarmID)
		if err != nil {
			srv.omitContext(ctx, "fields", err)

			return nil
		}
		fields = f

		return nil
	})
	_ = g.Wait()

	farmContext := summarizeFarm(farm, fields)

	reply, err := generate[struct {
		Answer string   `json:"answer"`
		Tips   []string `json:"tips"`
	}](ctx, srv, questionPrompt, map[string]string{
		"Question": strings.TrimSpace(input.Question),
		"Context":  farmContext,
	}, questionSchema)
	if err != nil {
		return nil, err
	}

	return &usecase.AskQuestionOutput{
		Answer:  reply.Answer,
		Tips:    nonNil(reply.Tips),
		Context: farmContext,
	}, nil
}

func (srv *advisorService) PlantingAdvice(ctx context.Context, actor *usecase.Actor, input *usecase.PlantingAdviceInput) (*usecase.PlantingAdviceOutput, error) {
	if err := srv.checkAccess(ctx, actor); err != nil {
		return nil, err
	}

	fieldDesc, err := srv.describeFieldRef(ctx, actor, input.FieldID)
	if err != nil {
		return nil, err
	}

	var (
		g         errgroup.Group
		soil      []*entity.SoilLog
		plantings []*entity.PlantingLog
		weather   []*entity.WeatherLog
	)
	fetchInto(ctx, srv, &g, entity.RecordKindSoil, srv.records.Soil, actor.FarmID, recentQuery(plantingSoilLimit, input.FieldID), &soil)
	fetchInto(ctx, srv, &g, entity.RecordKindPlanting, srv.records.Planting, actor.FarmID, recentQuery(plantingHistoryLimit, input.FieldID), &plantings)
	fetchInto(ctx, srv, &g, entity.RecordKindWeather, srv.records.Weather, actor.FarmID, recentQuery(plantingWeatherLimit, nil), &weather)
	_ = g.Wait()

	summary := usecase.PlantingSummary{
		Soil:            summarizeSoil(soil),
		RecentPlantings: summarizePlantings(plantings),
		Weather:         summarizeWeather(weather),
	}

	reply, err := generate[struct {
		Recommendations []string `json:"recommendations"`
		PlantingWindow  string   `json:"planting_window"`
		SoilAmendments  []string `json:"soil_amendments"`
		Risks           []string `json:"risks"`
	}](ctx, srv, plantingPrompt, map[string]string{
		"Crop":      strings.TrimSpace(input.Crop),
		"Field":     fieldDesc,
		"Soil":      summary.Soil,
		"Plantings": summary.RecentPlantings,
		"Weather":   summary.Weather,
	}, plantingSchema)
	if err != nil {
		return nil, err
	}

	return &usecase.PlantingAdviceOutput{
		Recommendations: nonNil(reply.Recommendations),
		PlantingWindow:  reply.PlantingWindow,
		SoilAmendments:  nonNil(reply.SoilAmendments),
		Risks:           nonNil(reply.Risks),
		Summary:         summary,
	}, nil
}

func (srv *advisorService) YieldOptimization(ctx context.Context, actor *usecase.Actor, input *usecase.YieldOptimizationInput) (*usecase.YieldOptimizationOutput, error) {
	if err := srv.checkAccess(ctx, actor); err != nil {
		return nil, err
	}

	fieldDesc, err := srv.describeFieldRef(ctx, actor, input.FieldID)
	if err != nil {
		return nil, err
	}

	var (
		g           errgroup.Group
		harvests    []*entity.HarvestingLog
		fertilizers []*entity.FertilizerLog
		irrigations []*entity.IrrigationLog
		soil        []*entity.SoilLog
	)
	crop := strings.TrimSpace(input.Crop)
	harvestQuery := recentQuery(yieldHarvestLimit, input.FieldID)
	harvestQuery.Crop = crop

	fetchInto(ctx, srv, &g, entity.RecordKindHarvesting, srv.records.Harvesting, actor.FarmID, harvestQuery, &harvests)
	fetchInto(ctx, srv, &g, entity.RecordKindFertilizer, srv.records.Fertilizer, actor.FarmID, recentQuery(yieldFertilizerLimit, input.FieldID), &fertilizers)
	fetchInto(ctx, srv, &g, entity.RecordKindIrrigation, srv.records.Irrigation, actor.FarmID, recentQuery(yieldIrrigationLimit, input.FieldID), &irrigations)
	fetchInto(ctx, srv, &g, entity.RecordKindSoil, srv.records.Soil, actor.FarmID, recentQuery(yieldSoilLimit, input.FieldID), &soil)
	_ = g.Wait()

	summary, yieldText := summarizeYield(harvests)
	summary.Fertilizer = summarizeFertilizer(fertilizers)
	summary.Irrigation = summarizeIrrigation(irrigations)
	summary.Soil = summarizeSoil(soil)

	reply, err := generate[struct {
		Recommendations []string `json:"recommendations"`
		PriorityActions []string `json:"priority_actions"`
		ExpectedImpact  string   `json:"expected_impact"`
	}](ctx, srv, yieldPrompt, map[string]string{
		"Crop":       crop,
		"Field":      fieldDesc,
		"Yield":      yieldText,
		"Fertilizer": summary.Fertilizer,
		"Irrigation": summary.Irrigation,
		"Soil":       summary.Soil,
	}, yieldSchema)
	if err != nil {
		return nil, err
	}

	return &usecase.YieldOptimizationOutput{
		Recommendations: nonNil(reply.Recommendations),
		PriorityActions: nonNil(reply.PriorityActions),
		ExpectedImpact:  reply.ExpectedImpact,
		Summary:         summary,
	}, nil
}

func (srv *advisorService) LivestockHealth(ctx context.Context, actor *usecase.Actor, input *usecase.LivestockHealthInput) (*usecase.LivestockHealthOutput, error) {
	if err := srv.checkAccess(ctx, actor); err != nil {
		return nil, err
	}

	var (
		g        errgroup.Group
		health   []*entity.HealthLog
		breeding []*entity.BreedingLog
	)
	animalID := strings.TrimSpace(input.AnimalID)
	species := strings.TrimSpace(input.Species)

	fetchInto(ctx, srv, &g, entity.RecordKindHealth, srv.records.Health, actor.FarmID, animalQuery(livestockHealthLimit, animalID, species), &health)
	fetchInto(ctx, srv, &g, entity.RecordKindBreeding, srv.records.Breeding, actor.FarmID, animalQuery(livestockBreedingLimit, animalID, species), &breeding)
	_ = g.Wait()

	history := summarizeAnimalHistory(health, breeding)

	reply, err := generate[struct {
		PossibleConditions []string `json:"possible_conditions"`
		RecommendedActions []string `json:"recommended_actions"`
		Urgency            string   `json:"urgency"`
		VetRecommended     bool     `json:"vet_recommended"`
	}](ctx, srv, livestockPrompt, map[string]string{
		"AnimalID": animalID,
		"Species":  species,
		"Symptoms": strings.TrimSpace(input.Symptoms),
		"History":  history,
	}, livestockSchema)
	if err != nil {
		return nil, err
	}

	return &usecase.LivestockHealthOutput{
		PossibleConditions: nonNil(reply.PossibleConditions),
		RecommendedActions: nonNil(reply.RecommendedActions),
		Urgency:            reply.Urgency,
		VetRecommended:     reply.VetRecommended,
		Summary:            history,
	}, nil
}

func (srv *advisorService) FinancialInsights(ctx context.Context, actor *usecase.Actor, input *usecase.FinancialInsightsInput) (*usecase.FinancialInsightsOutput, error) {
	if err := srv.checkAccess(ctx, actor); err != nil {
		return nil, err
	}
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	query := repository.RecordQuery{From: input.From, To: input.To, Limit: financeRecordLimit}

	var (
		g        errgroup.Group
		revenue  []*entity.RevenueLog
		expenses []*entity.ExpenseLog
	)
	fetchInto(ctx, srv, &g, entity.RecordKindRevenue, srv.records.Revenue, actor.FarmID, query, &revenue)
	fetchInto(ctx, srv, &g, entity.RecordKindExpense, srv.records.Expense, actor.FarmID, query, &expenses)
	_ = g.Wait()

	summary, summaryText := summarizeFinance(revenue, expenses)

	reply, err := generate[struct {
		Insights             []string `json:"insights"`
		CostSavings          []string `json:"cost_savings"`
		RevenueOpportunities []string `json:"revenue_opportunities"`
	}](ctx, srv, financePrompt, map[string]string{
		"Period":  describePeriod(input),
		"Summary": summaryText,
	}, financeSchema)
	if err != nil {
		return nil, err
	}

	return &usecase.FinancialInsightsOutput{
		Insights:             nonNil(reply.Insights),
		CostSavings:          nonNil(reply.CostSavings),
		RevenueOpportunities: nonNil(reply.RevenueOpportunities),
		Summary:              summary,
	}, nil
}

// checkAccess fails fast when no model is configured or the caller's plan
// does not include the advisor.
func (srv *advisorService) checkAccess(ctx context.Context, actor *usecase.Actor) error {
	if srv.llm == nil {
		return domainerrors.ErrAdvisorUnavailable.WithDetails("no language model is configured")
	}
	if !srv.requireSubscription {
		return nil
	}

	user, err := srv.userRepo.FindByUID(ctx, actor.UID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}
	if !user.Subscription.IsActive() {
		return domainerrors.ErrSubscriptionRequired
	}

	return nil
}

// describeFieldRef validates an optional field reference and describes it for the prompt.
func (srv *advisorService) describeFieldRef(ctx context.Context, actor *usecase.Actor, fieldID *uuid.UUID) (string, error) {
	if fieldID == nil {
		return "", nil
	}

	field, err := srv.fieldRepo.FindByID(ctx, actor.FarmID, *fieldID)
	if errors.Is(err, repository.ErrFieldNotFound) {
		return "", domainerrors.ErrFieldNotFound
	}
	if err != nil {
		srv.omitContext(ctx, "field", err)

		return "", nil
	}

	return describeField(field), nil
}

func (srv *advisorService) omitContext(ctx context.Context, source string, err error) {
	srv.log(ctx).Warn("Advisor context read failed, continuing without it", slog.String("source", source), slog.Any("error", err))
}

// fetchInto schedules a bounded record read on g. A failed read leaves dst empty.
func fetchInto[E any](
	ctx context.Context,
	srv *advisorService,
	g *errgroup.Group,
	kind entity.RecordKind,
	repo repository.RecordRepository[E],
	farmID uuid.UUID,
	query repository.RecordQuery,
	dst *[]*E,
) {
	g.Go(func() error {
		records, err := repo.List(ctx, farmID, query)
		if err != nil {
			srv.omitContext(ctx, string(kind), err)

			return nil
		}
		*dst = records

		return nil
	})
}

// generate renders the prompt, calls the model and decodes its JSON reply into T.
func generate[T any](ctx context.Context, srv *advisorService, tmpl *template.Template, data map[string]string, schema *service.Schema) (*T, error) {
	prompt, err := renderPrompt(tmpl, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render advisor prompt")
	}

	raw, err := srv.llm.GenerateJSON(ctx, &service.GenerateRequest{
		SystemInstruction: advisorSystemInstruction,
		Prompt:            prompt,
		Schema:            schema,
	})
	if err != nil {
		srv.log(ctx).Error("Language model call failed", slog.String("flow", tmpl.Name()), slog.Any("error", err))

		return nil, domainerrors.ErrAdvisorUnavailable.WrapMessage(err.Error())
	}

	var reply T
	if err := json.Unmarshal(raw, &reply); err != nil {
		srv.log(ctx).Error("Language model returned malformed JSON", slog.String("flow", tmpl.Name()), slog.Any("error", err))

		return nil, domainerrors.ErrAdvisorUnavailable.WrapMessage("malformed model reply")
	}

	srv.log(ctx).Debug("Advisor flow completed", slog.String("flow", tmpl.Name()))

	return &reply, nil
}

func recentQuery(limit int, fieldID *uuid.UUID) repository.RecordQuery {
	return repository.RecordQuery{Limit: limit, FieldID: fieldID}
}

// animalQuery narrows to one animal when named, otherwise to a species.
func animalQuery(limit int, animalID, species string) repository.RecordQuery {
	query := repository.RecordQuery{Limit: limit}
	if animalID != "" {
		query.AnimalID = animalID
	} else {
		query.Species = species
	}

	return query
}

func describePeriod(input *usecase.FinancialInsightsInput) string {
	switch {
	case input.From != nil && input.To != nil:
		return fmt.Sprintf("%s to %s", input.From.Format(financeSummaryDateLayout), input.To.Format(financeSummaryDateLayout))
	case input.From != nil:
		return "since " + input.From.Format(financeSummaryDateLayout)
	case input.To != nil:
		return "until " + input.To.Format(financeSummaryDateLayout)
	default:
		return ""
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}
