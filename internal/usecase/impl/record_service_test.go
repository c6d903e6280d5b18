package impl

import (
	"context"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	mockRepo "farmdesk/internal/mocks/repository"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordServiceFixtures struct {
	records   usecase.RecordUsecases
	planting  *mockRepo.MockRecordRepository[entity.PlantingLog]
	weather   *mockRepo.MockRecordRepository[entity.WeatherLog]
	tasks     *mockRepo.MockRecordRepository[entity.TaskLog]
	fieldRepo *mockRepo.MockFieldRepository
	farmRepo  *mockRepo.MockFarmRepository
	notifier  *mockUsecase.MockNotificationUsecase
}

func createTestRecordUsecases(t *testing.T) recordServiceFixtures {
	fx := recordServiceFixtures{
		planting:  mockRepo.NewMockRecordRepository[entity.PlantingLog](t),
		weather:   mockRepo.NewMockRecordRepository[entity.WeatherLog](t),
		tasks:     mockRepo.NewMockRecordRepository[entity.TaskLog](t),
		fieldRepo: mockRepo.NewMockFieldRepository(t),
		farmRepo:  mockRepo.NewMockFarmRepository(t),
		notifier:  mockUsecase.NewMockNotificationUsecase(t),
	}

	fx.records = NewRecordUsecases(RecordUsecasesParams{
		Records: repository.RecordRepositories{
			Planting: fx.planting,
			Weather:  fx.weather,
			Task:     fx.tasks,
		},
		FieldRepo: fx.fieldRepo,
		FarmRepo:  fx.farmRepo,
		Notifier:  fx.notifier,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestRecordService_Create_StampsOwnership(t *testing.T) {
	fx := createTestRecordUsecases(t)
	ctx := context.Background()
	actor := &usecase.Actor{UID: "staff", FarmID: uuid.New()}
	forged := uuid.New()

	fx.planting.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PlantingLog")).Return(nil)

	record := &entity.PlantingLog{Crop: "maize", Quantity: 20}
	record.Date = date(2026, time.March, 1)
	record.FarmID = forged
	record.UserID = "someone-else"

	created, err := fx.records.Planting.Create(ctx, actor, record)

	require.NoError(t, err)
	assert.Equal(t, actor.FarmID, created.FarmID)
	assert.Equal(t, "staff", created.UserID)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRecordService_Create_Validation(t *testing.T) {
	actor := &usecase.Actor{UID: "staff", FarmID: uuid.New()}
	foreignField := uuid.New()

	t.Run("date is required", func(t *testing.T) {
		fx := createTestRecordUsecases(t)

		_, err := fx.records.Planting.Create(context.Background(), actor, &entity.PlantingLog{Crop: "maize"})

		requireErrorCode(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("field must belong to the farm", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		fx.fieldRepo.EXPECT().FindByID(ctx, actor.FarmID, foreignField).Return(nil, repository.ErrFieldNotFound)

		record := &entity.PlantingLog{Crop: "maize"}
		record.Date = date(2026, time.March, 1)
		record.FieldID = &foreignField

		_, err := fx.records.Planting.Create(ctx, actor, record)

		requireErrorCode(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRecordService_Update_KeepsAuditFields(t *testing.T) {
	fx := createTestRecordUsecases(t)
	ctx := context.Background()
	actor := &usecase.Actor{UID: "editor", FarmID: uuid.New()}

	stored := &entity.WeatherLog{TemperatureC: 18}
	stored.ID = uuid.New()
	stored.FarmID = actor.FarmID
	stored.UserID = "author"
	stored.Date = date(2026, time.April, 2)
	stored.CreatedAt = date(2026, time.April, 2)

	fx.weather.EXPECT().FindByID(ctx, actor.FarmID, stored.ID).Return(stored, nil)
	fx.weather.EXPECT().Update(ctx, mock.AnythingOfType("*entity.WeatherLog")).Return(nil)

	change := &entity.WeatherLog{TemperatureC: 21, Conditions: "sunny"}
	change.Date = date(2026, time.April, 3)

	updated, err := fx.records.Weather.Update(ctx, actor, stored.ID, change)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, "author", updated.UserID)
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
	assert.InDelta(t, 21.0, updated.TemperatureC, 1e-9)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestRecordService_List(t *testing.T) {
	actor := &usecase.Actor{UID: "staff", FarmID: uuid.New()}
	from := date(2026, time.May, 10)
	to := date(2026, time.May, 1)
	fieldID := uuid.New()

	t.Run("inverted range", func(t *testing.T) {
		fx := createTestRecordUsecases(t)

		_, err := fx.records.Planting.List(context.Background(), actor, repository.RecordQuery{From: &from, To: &to})

		requireErrorCode(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("field filter on a farm-wide kind", func(t *testing.T) {
		fx := createTestRecordUsecases(t)

		_, err := fx.records.Weather.List(context.Background(), actor, repository.RecordQuery{FieldID: &fieldID})

		requireErrorCode(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("query is normalised", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		fx.planting.EXPECT().
			List(ctx, actor.FarmID, repository.RecordQuery{FieldID: &fieldID, Limit: repository.MaxRecordLimit}).
			Return([]*entity.PlantingLog{}, nil)

		records, err := fx.records.Planting.List(ctx, actor, repository.RecordQuery{FieldID: &fieldID, Limit: 10_000, Offset: -3})

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	fx := createTestRecordUsecases(t)
	ctx := context.Background()
	actor := &usecase.Actor{UID: "staff", FarmID: uuid.New()}
	id := uuid.New()

	fx.planting.EXPECT().Delete(ctx, actor.FarmID, id).Return(repository.ErrRecordNotFound)

	err := fx.records.Planting.Delete(ctx, actor, id)

	requireErrorCode(t, err, domainerrors.ErrRecordNotFound)
}

func TestTaskRecords_Assignment(t *testing.T) {
	actor := &usecase.Actor{UID: "owner", FarmID: uuid.New(), IsOwner: true}
	farm := &entity.Farm{ID: actor.FarmID, OwnerID: "owner", Staff: []string{"staff"}}

	newTask := func(assignee string) *entity.TaskLog {
		task := &entity.TaskLog{Title: "Fix fence", AssigneeUID: assignee}
		task.Date = date(2026, time.June, 1)

		return task
	}

	t.Run("defaults and notifies the assignee", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		fx.farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(farm, nil)
		fx.tasks.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TaskLog")).Return(nil)
		fx.notifier.EXPECT().
			Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
				return in.UserID == "staff" && in.Kind == entity.NotificationKindTask && in.Message == "Fix fence"
			})).
			Return(&entity.Notification{}, nil)

		task, err := fx.records.Task.Create(ctx, actor, newTask("staff"))

		require.NoError(t, err)
		assert.Equal(t, entity.TaskStatusTodo, task.Status)
		assert.Equal(t, "medium", task.Priority)
	})

	t.Run("self assignment is silent", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		fx.farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(farm, nil)
		fx.tasks.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TaskLog")).Return(nil)

		_, err := fx.records.Task.Create(ctx, actor, newTask("owner"))

		require.NoError(t, err)
	})

	t.Run("assignee outside the farm", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		fx.farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(farm, nil)

		_, err := fx.records.Task.Create(ctx, actor, newTask("stranger"))

		requireErrorCode(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unchanged assignee is not notified again", func(t *testing.T) {
		fx := createTestRecordUsecases(t)
		ctx := context.Background()

		stored := newTask("staff")
		stored.ID = uuid.New()
		stored.FarmID = actor.FarmID

		fx.tasks.EXPECT().FindByID(ctx, actor.FarmID, stored.ID).Return(stored, nil)
		fx.farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(farm, nil)
		fx.tasks.EXPECT().Update(ctx, mock.AnythingOfType("*entity.TaskLog")).Return(nil)

		change := newTask("staff")
		change.Status = entity.TaskStatusDone

		updated, err := fx.records.Task.Update(ctx, actor, stored.ID, change)

		require.NoError(t, err)
		assert.Equal(t, entity.TaskStatusDone, updated.Status)
	})
}
