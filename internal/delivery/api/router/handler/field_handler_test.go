package handler

import (
	"net/http"
	"testing"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFieldServer(t *testing.T) (*echo.Echo, *mockUsecase.MockFieldUsecase) {
	fieldUC := mockUsecase.NewMockFieldUsecase(t)
	h := NewFieldHandler(FieldHandlerParams{FieldUC: fieldUC})

	e := newTestEcho(ownerActor)
	e.POST("/fields", h.CreateField)
	e.GET("/fields", h.ListFields)
	e.GET("/fields/:id", h.GetField)
	e.PUT("/fields/:id", h.UpdateField)
	e.DELETE("/fields/:id", h.DeleteField)

	return e, fieldUC
}

func TestFieldHandler_CreateField_PassesBoundary(t *testing.T) {
	e, fieldUC := createTestFieldServer(t)
	boundary := `{"type":"Polygon","coordinates":[[[0,0],[0,0.001],[0.001,0.001],[0.001,0],[0,0]]]}`

	fieldUC.EXPECT().
		Create(mock.Anything, ownerActor, mock.MatchedBy(func(in *usecase.FieldInput) bool {
			return in.Name == "North" && in.SizeHectares == nil && string(in.Boundary) == boundary
		})).
		Return(&entity.Field{ID: uuid.New(), FarmID: testFarmID, Name: "North", SizeHectares: 1.23}, nil)

	rec := doRequest(e, http.MethodPost, "/fields", `{"name":"North","boundary":`+boundary+`}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var field entity.Field
	decodeData(t, rec, &field)
	assert.InDelta(t, 1.23, field.SizeHectares, 1e-9)
}

func TestFieldHandler_Validation(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode string
	}{
		{name: "missing name", method: http.MethodPost, target: "/fields", body: `{"crop_type":"corn"}`, wantCode: "VALIDATION_ERROR"},
		{name: "negative size", method: http.MethodPost, target: "/fields", body: `{"name":"A","size_hectares":-1}`, wantCode: "VALIDATION_ERROR"},
		{name: "bad id on get", method: http.MethodGet, target: "/fields/not-a-uuid", wantCode: "INVALID_ID"},
		{name: "bad id on delete", method: http.MethodDelete, target: "/fields/42", wantCode: "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestFieldServer(t)

			rec := doRequest(e, tt.method, tt.target, tt.body)

			requireErrorResponse(t, rec, http.StatusBadRequest, tt.wantCode)
		})
	}
}

func TestFieldHandler_UpdateField_InvalidBoundary(t *testing.T) {
	e, fieldUC := createTestFieldServer(t)
	fieldID := uuid.New()

	fieldUC.EXPECT().Update(mock.Anything, ownerActor, fieldID, mock.Anything).Return(nil, domainerrors.ErrInvalidBoundary)

	rec := doRequest(e, http.MethodPut, "/fields/"+fieldID.String(), `{"name":"A","boundary":{"type":"Point"}}`)

	requireErrorResponse(t, rec, http.StatusBadRequest, "INVALID_BOUNDARY")
}

func TestFieldHandler_GetField_NotFound(t *testing.T) {
	e, fieldUC := createTestFieldServer(t)
	fieldID := uuid.New()

	fieldUC.EXPECT().Get(mock.Anything, ownerActor, fieldID).Return(nil, domainerrors.ErrFieldNotFound)

	rec := doRequest(e, http.MethodGet, "/fields/"+fieldID.String(), "")

	requireErrorResponse(t, rec, http.StatusNotFound, "FIELD_NOT_FOUND")
}

func TestFieldHandler_DeleteField(t *testing.T) {
	e, fieldUC := createTestFieldServer(t)
	fieldID := uuid.New()

	fieldUC.EXPECT().Delete(mock.Anything, ownerActor, fieldID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/fields/"+fieldID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
