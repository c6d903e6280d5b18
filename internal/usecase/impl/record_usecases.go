package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecordUsecasesParams holds dependencies for every log kind, injected by Fx.
type RecordUsecasesParams struct {
	fx.In

	Records   repository.RecordRepositories
	FieldRepo repository.FieldRepository
	FarmRepo  repository.FarmRepository
	Notifier  usecase.NotificationUsecase
	Logger    *slog.Logger
}

// NewRecordUsecases wires one generic record service per log kind.
func NewRecordUsecases(params RecordUsecasesParams) usecase.RecordUsecases {
	repos := params.Records
	fields := params.FieldRepo
	logger := params.Logger

	tasks := &taskHooks{farmRepo: params.FarmRepo, notifier: params.Notifier, logger: logger}

	return usecase.RecordUsecases{
		Planting:   newRecordService[entity.PlantingLog, *entity.PlantingLog](entity.RecordKindPlanting, repos.Planting, fields, recordHooks[entity.PlantingLog]{}, logger),
		Harvesting: newRecordService[entity.HarvestingLog, *entity.HarvestingLog](entity.RecordKindHarvesting, repos.Harvesting, fields, recordHooks[entity.HarvestingLog]{}, logger),
		Soil:       newRecordService[entity.SoilLog, *entity.SoilLog](entity.RecordKindSoil, repos.Soil, fields, recordHooks[entity.SoilLog]{}, logger),
		Weather:    newRecordService[entity.WeatherLog, *entity.WeatherLog](entity.RecordKindWeather, repos.Weather, fields, recordHooks[entity.WeatherLog]{}, logger),
		Fertilizer: newRecordService[entity.FertilizerLog, *entity.FertilizerLog](entity.RecordKindFertilizer, repos.Fertilizer, fields, recordHooks[entity.FertilizerLog]{}, logger),
		Irrigation: newRecordService[entity.IrrigationLog, *entity.IrrigationLog](entity.RecordKindIrrigation, repos.Irrigation, fields, recordHooks[entity.IrrigationLog]{}, logger),
		Revenue:    newRecordService[entity.RevenueLog, *entity.RevenueLog](entity.RecordKindRevenue, repos.Revenue, fields, recordHooks[entity.RevenueLog]{}, logger),
		Expense:    newRecordService[entity.ExpenseLog, *entity.ExpenseLog](entity.RecordKindExpense, repos.Expense, fields, recordHooks[entity.ExpenseLog]{}, logger),
		Health:     newRecordService[entity.HealthLog, *entity.HealthLog](entity.RecordKindHealth, repos.Health, fields, recordHooks[entity.HealthLog]{}, logger),
		Breeding:   newRecordService[entity.BreedingLog, *entity.BreedingLog](entity.RecordKindBreeding, repos.Breeding, fields, recordHooks[entity.BreedingLog]{}, logger),
		Task: newRecordService[entity.TaskLog, *entity.TaskLog](entity.RecordKindTask, repos.Task, fields, recordHooks[entity.TaskLog]{
			beforeSave: tasks.beforeSave,
			afterSave:  tasks.afterSave,
		}, logger),
	}
}

// taskHooks validate assignees and tell them about new assignments.
type taskHooks struct {
	farmRepo repository.FarmRepository
	notifier usecase.NotificationUsecase
	logger   *slog.Logger
}

func (h *taskHooks) beforeSave(ctx context.Context, actor *usecase.Actor, task *entity.TaskLog) error {
	if task.Status == "" {
		task.Status = entity.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.AssigneeUID == "" {
		return nil
	}

	farm, err := h.farmRepo.FindByID(ctx, actor.FarmID)
	if errors.Is(err, repository.ErrFarmNotFound) {
		return domainerrors.ErrFarmNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load farm")
	}
	if !farm.HasMember(task.AssigneeUID) {
		return domainerrors.ErrValidationFailed.WithDetails("assignee is not a member of this farm")
	}

	return nil
}

func (h *taskHooks) afterSave(ctx context.Context, actor *usecase.Actor, previous, saved *entity.TaskLog) {
	if saved.AssigneeUID == "" || saved.AssigneeUID == actor.UID {
		return
	}
	if previous != nil && previous.AssigneeUID == saved.AssigneeUID {
		return
	}

	message := saved.Title
	if saved.DueDate != nil {
		message = fmt.Sprintf("%s (due %s)", saved.Title, saved.DueDate.Format("2006-01-02"))
	}

	_, err := h.notifier.Notify(ctx, &usecase.NotifyInput{
		UserID:  saved.AssigneeUID,
		Title:   "New task assigned",
		Message: message,
		Kind:    entity.NotificationKindTask,
		Link:    "/tasks/" + saved.ID.String(),
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to notify task assignee",
			slog.String("taskID", saved.ID.String()),
			slog.String("assignee", saved.AssigneeUID),
			slog.Any("error", err),
		)
	}
}
