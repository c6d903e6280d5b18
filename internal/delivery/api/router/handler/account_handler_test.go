package handler

import (
	"net/http"
	"testing"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	mockUsecase "farmdesk/internal/mocks/usecase"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountServer(t *testing.T, actor *usecase.Actor) (*echo.Echo, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: nil})

	e := newTestEcho(actor)
	e.POST("/onboarding", h.Onboard)
	e.GET("/me", h.GetProfile)
	e.PUT("/me", h.UpdateProfile)
	e.PUT("/me/push-tokens", h.RegisterPushToken)

	return e, accountUC
}

func TestAccountHandler_Onboard(t *testing.T) {
	newcomer := &usecase.Actor{UID: "new-uid", Email: "new@farm.test"}
	e, accountUC := createTestAccountServer(t, newcomer)

	accountUC.EXPECT().
		Onboard(mock.Anything, &usecase.OnboardInput{
			UID:       "new-uid",
			Email:     "new@farm.test",
			Name:      "Ada",
			FarmName:  "Green Acres",
			Latitude:  45.5,
			Longitude: -122.6,
		}).
		Return(&usecase.OnboardOutput{
			User: &entity.User{UID: "new-uid", IsFarmOwner: true},
			Farm: &entity.Farm{ID: testFarmID, FarmName: "Green Acres"},
		}, nil)

	rec := doRequest(e, http.MethodPost, "/onboarding",
		`{"name":"Ada","farm_name":"Green Acres","latitude":45.5,"longitude":-122.6}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out OnboardResponse
	decodeData(t, rec, &out)
	assert.True(t, out.User.IsFarmOwner)
	assert.Equal(t, testFarmID, out.Farm.ID)
}

func TestAccountHandler_Onboard_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed body",
			body:       `{"farm_name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing farm name",
			body:       `{"name":"Ada"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "latitude out of range",
			body:       `{"farm_name":"Green Acres","latitude":91}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "already onboarded",
			body:       `{"farm_name":"Green Acres"}`,
			ucErr:      domainerrors.ErrUserAlreadyOnboarded,
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_ONBOARDED",
		},
		{
			name:       "database failure",
			body:       `{"farm_name":"Green Acres"}`,
			ucErr:      domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create farm"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, accountUC := createTestAccountServer(t, ownerActor)
			if tt.ucErr != nil {
				accountUC.EXPECT().Onboard(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(e, http.MethodPost, "/onboarding", tt.body)

			requireErrorResponse(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestAccountHandler_RequiresActor(t *testing.T) {
	e, _ := createTestAccountServer(t, nil)

	rec := doRequest(e, http.MethodGet, "/me", "")

	requireErrorResponse(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	e, accountUC := createTestAccountServer(t, ownerActor)

	accountUC.EXPECT().
		UpdateProfile(mock.Anything, "owner-uid", mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "Grace" &&
				in.Preferences != nil && !in.Preferences.Email && in.Preferences.Push
		})).
		Return(&entity.User{UID: "owner-uid", Name: "Grace"}, nil)

	rec := doRequest(e, http.MethodPut, "/me",
		`{"name":"Grace","notification_preferences":{"email":false,"push":true,"task_reminders":true,"billing_alerts":true}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user entity.User
	decodeData(t, rec, &user)
	assert.Equal(t, "Grace", user.Name)
}

func TestAccountHandler_UpdateProfile_RejectsEmptyName(t *testing.T) {
	e, _ := createTestAccountServer(t, ownerActor)

	rec := doRequest(e, http.MethodPut, "/me", `{"name":""}`)

	requireErrorResponse(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestAccountHandler_RegisterPushToken(t *testing.T) {
	e, accountUC := createTestAccountServer(t, ownerActor)

	accountUC.EXPECT().RegisterPushToken(mock.Anything, "owner-uid", "fcm-token-1").Return(nil)

	rec := doRequest(e, http.MethodPut, "/me/push-tokens", `{"token":"fcm-token-1"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAccountHandler_GetProfile_NotFound(t *testing.T) {
	e, accountUC := createTestAccountServer(t, ownerActor)

	accountUC.EXPECT().GetProfile(mock.Anything, "owner-uid").Return(nil, domainerrors.ErrUserNotFound)

	rec := doRequest(e, http.MethodGet, "/me", "")

	requireErrorResponse(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
}
