package postgres

import (
	"context"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harvest(farmID uuid.UUID, fieldID *uuid.UUID, date int, quantity float64) *entity.HarvestingLog {
	return &entity.HarvestingLog{
		RecordMeta: entity.RecordMeta{FarmID: farmID, UserID: "uid-1", Date: day(date)},
		FieldLink:  entity.FieldLink{FieldID: fieldID},
		Crop:       "wheat",
		Quantity:   quantity,
		Unit:       "kg",
	}
}

func TestRecordRepository_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRecordRepositories(newTestDB(t)).Harvesting
	farmID := uuid.New()
	fieldA, fieldB := uuid.New(), uuid.New()

	for i, r := range []*entity.HarvestingLog{
		harvest(farmID, &fieldA, 1, 10),
		harvest(farmID, &fieldB, 5, 20),
		harvest(farmID, nil, 10, 30),
		harvest(farmID, &fieldA, 15, 40),
		harvest(uuid.New(), &fieldA, 12, 99),
	} {
		require.NoError(t, repo.Create(ctx, r), "record %d", i)
		require.NotEqual(t, uuid.Nil, r.ID)
	}

	from, to := day(5), day(12)

	tests := []struct {
		name       string
		query      repository.RecordQuery
		quantities []float64
	}{
		{
			name:       "newest first",
			query:      repository.RecordQuery{},
			quantities: []float64{40, 30, 20, 10},
		},
		{
			name:       "date window inclusive",
			query:      repository.RecordQuery{From: &from, To: &to},
			quantities: []float64{30, 20},
		},
		{
			name:       "field filter",
			query:      repository.RecordQuery{FieldID: &fieldA},
			quantities: []float64{40, 10},
		},
		{
			name:       "paging",
			query:      repository.RecordQuery{Limit: 2, Offset: 1},
			quantities: []float64{30, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, farmID, tt.query)
			require.NoError(t, err)

			got := make([]float64, 0, len(records))
			for _, r := range records {
				assert.Equal(t, farmID, r.FarmID)
				got = append(got, r.Quantity)
			}
			assert.Equal(t, tt.quantities, got)
		})
	}
}

func TestRecordRepository_ListEndOfDayIncludesTimedRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRecordRepositories(newTestDB(t)).Harvesting
	farmID := uuid.New()

	afternoon := harvest(farmID, nil, 12, 25)
	afternoon.Date = day(12).Add(14 * time.Hour)
	nextMidnight := harvest(farmID, nil, 13, 99)
	require.NoError(t, repo.Create(ctx, afternoon))
	require.NoError(t, repo.Create(ctx, nextMidnight))

	from, to := day(1), repository.EndOfDay(day(12))
	records, err := repo.List(ctx, farmID, repository.RecordQuery{From: &from, To: &to})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.True(t, afternoon.Date.Equal(records[0].Date))
}

func TestRecordRepository_ListMatchesAttributes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := NewRecordRepositories(newTestDB(t))
	farmID := uuid.New()

	target := &entity.HealthLog{
		RecordMeta: entity.RecordMeta{FarmID: farmID, UserID: "uid-1", Date: day(1)},
		AnimalID:   "cow-7",
		Species:    "Cattle",
		Condition:  "mastitis",
	}
	require.NoError(t, repos.Health.Create(ctx, target))
	for i := 2; i <= 15; i++ {
		require.NoError(t, repos.Health.Create(ctx, &entity.HealthLog{
			RecordMeta: entity.RecordMeta{FarmID: farmID, UserID: "uid-1", Date: day(i)},
			AnimalID:   "ewe-1",
			Species:    "sheep",
			Condition:  "checkup",
		}))
	}

	byAnimal, err := repos.Health.List(ctx, farmID, repository.RecordQuery{AnimalID: "cow-7", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byAnimal, 1)
	assert.Equal(t, "mastitis", byAnimal[0].Condition)

	bySpecies, err := repos.Health.List(ctx, farmID, repository.RecordQuery{Species: "cattle", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bySpecies, 1)

	wheat := harvest(farmID, nil, 3, 10)
	maize := harvest(farmID, nil, 4, 20)
	maize.Crop = "Maize"
	require.NoError(t, repos.Harvesting.Create(ctx, wheat))
	require.NoError(t, repos.Harvesting.Create(ctx, maize))

	harvests, err := repos.Harvesting.List(ctx, farmID, repository.RecordQuery{Crop: "maize", AnimalID: "cow-7"})
	require.NoError(t, err)
	require.Len(t, harvests, 1)
	assert.InDelta(t, 20.0, harvests[0].Quantity, 1e-9)
}

func TestRecordRepository_FieldFilterIgnoredForFarmWideKinds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRecordRepositories(newTestDB(t)).Weather
	farmID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.WeatherLog{
		RecordMeta:   entity.RecordMeta{FarmID: farmID, UserID: "uid-1", Date: day(3)},
		TemperatureC: 21.5,
	}))

	fieldID := uuid.New()
	records, err := repo.List(ctx, farmID, repository.RecordQuery{FieldID: &fieldID})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRecordRepositories(newTestDB(t)).Task
	farmID := uuid.New()

	due := day(20)
	task := &entity.TaskLog{
		RecordMeta:  entity.RecordMeta{FarmID: farmID, UserID: "uid-1", Date: day(1)},
		Title:       "Fix fence",
		AssigneeUID: "uid-2",
		DueDate:     &due,
		Status:      entity.TaskStatusTodo,
		Priority:    "high",
	}
	require.NoError(t, repo.Create(ctx, task))

	task.Status = entity.TaskStatusDone
	task.DueDate = nil
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.FindByID(ctx, farmID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, got.Status)
	assert.Nil(t, got.DueDate)
	assert.Equal(t, "Fix fence", got.Title)
	assert.True(t, day(1).Equal(got.Date))

	_, err = repo.FindByID(ctx, uuid.New(), task.ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	foreign := *got
	foreign.FarmID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &foreign), repository.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), task.ID), repository.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, farmID, task.ID))

	_, err = repo.FindByID(ctx, farmID, task.ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
