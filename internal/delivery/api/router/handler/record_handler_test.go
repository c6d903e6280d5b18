package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordFixture struct {
	e        *echo.Echo
	planting *mockUsecase.MockRecordUsecase[entity.PlantingLog]
	health   *mockUsecase.MockRecordUsecase[entity.HealthLog]
	task     *mockUsecase.MockRecordUsecase[entity.TaskLog]
}

func createTestRecordServer(t *testing.T) *recordFixture {
	fx := &recordFixture{
		planting: mockUsecase.NewMockRecordUsecase[entity.PlantingLog](t),
		health:   mockUsecase.NewMockRecordUsecase[entity.HealthLog](t),
		task:     mockUsecase.NewMockRecordUsecase[entity.TaskLog](t),
	}

	h := NewRecordHandler(RecordHandlerParams{Records: usecase.RecordUsecases{
		Planting: fx.planting,
		Health:   fx.health,
		Task:     fx.task,
	}})

	fx.e = newTestEcho(ownerActor)
	h.RegisterRoutes(fx.e.Group("/records"))

	return fx
}

func TestRecordHandler_CreatePlanting(t *testing.T) {
	fx := createTestRecordServer(t)
	fieldID := uuid.New()

	fx.planting.EXPECT().
		Create(mock.Anything, ownerActor, mock.MatchedBy(func(l *entity.PlantingLog) bool {
			return l.Crop == "corn" && l.Quantity == 40 &&
				l.Date.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)) &&
				l.FieldID != nil && *l.FieldID == fieldID
		})).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, l *entity.PlantingLog) (*entity.PlantingLog, error) {
			l.ID = uuid.New()
			l.FarmID = testFarmID

			return l, nil
		})

	rec := doRequest(fx.e, http.MethodPost, "/records/planting",
		`{"date":"2024-04-02T00:00:00Z","crop":"corn","quantity":40,"unit":"kg","field_id":"`+fieldID.String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created entity.PlantingLog
	decodeData(t, rec, &created)
	assert.Equal(t, testFarmID, created.FarmID)
	assert.Equal(t, "kg", created.Unit)
}

func TestRecordHandler_CreatePlanting_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing date", body: `{"crop":"corn"}`},
		{name: "missing crop", body: `{"date":"2024-04-02T00:00:00Z"}`},
		{name: "negative quantity", body: `{"date":"2024-04-02T00:00:00Z","crop":"corn","quantity":-3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecordServer(t)

			rec := doRequest(fx.e, http.MethodPost, "/records/planting", tt.body)

			requireErrorResponse(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestRecordHandler_ListParsesQuery(t *testing.T) {
	fx := createTestRecordServer(t)
	fieldID := uuid.New()

	fx.planting.EXPECT().
		List(mock.Anything, ownerActor, mock.MatchedBy(func(q repository.RecordQuery) bool {
			return q.From != nil && q.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				q.To != nil && q.To.Equal(time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)) &&
				q.FieldID != nil && *q.FieldID == fieldID &&
				q.Limit == 10 && q.Offset == 20
		})).
		Return([]*entity.PlantingLog{{Crop: "corn"}, {Crop: "wheat"}}, nil)

	rec := doRequest(fx.e, http.MethodGet,
		"/records/planting?from=2024-01-01&to=2024-06-30T12:00:00Z&field_id="+fieldID.String()+"&limit=10&offset=20", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var records []entity.PlantingLog
	decodeData(t, rec, &records)
	assert.Len(t, records, 2)
}

func TestRecordHandler_ListCalendarDateCoversWholeDay(t *testing.T) {
	fx := createTestRecordServer(t)

	fx.health.EXPECT().
		List(mock.Anything, ownerActor, mock.MatchedBy(func(q repository.RecordQuery) bool {
			return q.To != nil && q.To.Equal(time.Date(2024, 3, 12, 23, 59, 59, 999999000, time.UTC)) &&
				q.AnimalID == "cow-7" && q.Species == "cattle"
		})).
		Return([]*entity.HealthLog{}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/records/health?to=2024-03-12&animal_id=cow-7&species=cattle", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRecordHandler_ListRejectsBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad date", query: "from=01/02/2024"},
		{name: "bad field id", query: "field_id=north"},
		{name: "negative limit", query: "limit=-1"},
		{name: "non numeric offset", query: "offset=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecordServer(t)

			rec := doRequest(fx.e, http.MethodGet, "/records/task?"+tt.query, "")

			requireErrorResponse(t, rec, http.StatusBadRequest, "INVALID_QUERY")
		})
	}
}

func TestRecordHandler_UnknownKind(t *testing.T) {
	fx := createTestRecordServer(t)

	for _, target := range []string{"/records/compost", "/records/compost/" + uuid.NewString()} {
		rec := doRequest(fx.e, http.MethodGet, target, "")

		requireErrorResponse(t, rec, http.StatusNotFound, "UNKNOWN_RECORD_KIND")
	}
}

func TestRecordHandler_UpdateTask(t *testing.T) {
	fx := createTestRecordServer(t)
	taskID := uuid.New()

	fx.task.EXPECT().
		Update(mock.Anything, ownerActor, taskID, mock.MatchedBy(func(l *entity.TaskLog) bool {
			return l.Title == "Fix fence" && l.AssigneeUID == "staff-uid"
		})).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, _ uuid.UUID, l *entity.TaskLog) (*entity.TaskLog, error) {
			return l, nil
		})

	rec := doRequest(fx.e, http.MethodPut, "/records/task/"+taskID.String(),
		`{"date":"2024-05-01T00:00:00Z","title":"Fix fence","assignee_uid":"staff-uid"}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRecordHandler_GetAndDelete(t *testing.T) {
	fx := createTestRecordServer(t)
	recordID := uuid.New()

	fx.planting.EXPECT().Get(mock.Anything, ownerActor, recordID).Return(nil, domainerrors.ErrRecordNotFound)
	fx.planting.EXPECT().Delete(mock.Anything, ownerActor, recordID).Return(nil)

	rec := doRequest(fx.e, http.MethodGet, "/records/planting/"+recordID.String(), "")
	requireErrorResponse(t, rec, http.StatusNotFound, "RECORD_NOT_FOUND")

	rec = doRequest(fx.e, http.MethodDelete, "/records/planting/"+recordID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(fx.e, http.MethodDelete, "/records/planting/not-a-uuid", "")
	requireErrorResponse(t, rec, http.StatusBadRequest, "INVALID_ID")
}
