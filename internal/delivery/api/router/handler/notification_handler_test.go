package handler

import (
	"net/http"
	"testing"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	mockUsecase "farmdesk/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationServer(t *testing.T) (*echo.Echo, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho(ownerActor)
	e.GET("/notifications", h.ListNotifications)
	e.GET("/notifications/unread-count", h.UnreadCount)
	e.POST("/notifications/read-all", h.MarkAllRead)
	e.POST("/notifications/:id/read", h.MarkRead)
	e.DELETE("/notifications/:id", h.DeleteNotification)

	return e, notificationUC
}

func TestNotificationHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantUnread bool
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantUnread: false, wantLimit: 0, wantOffset: 0},
		{name: "unread page", query: "?unread=true&limit=5&offset=10", wantUnread: true, wantLimit: 5, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, notificationUC := createTestNotificationServer(t)

			notificationUC.EXPECT().
				List(mock.Anything, "owner-uid", tt.wantUnread, tt.wantLimit, tt.wantOffset).
				Return([]*entity.Notification{{ID: uuid.New(), Title: "Task assigned"}}, nil)

			rec := doRequest(e, http.MethodGet, "/notifications"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var notifications []entity.Notification
			decodeData(t, rec, &notifications)
			assert.Len(t, notifications, 1)
		})
	}
}

func TestNotificationHandler_List_BadQuery(t *testing.T) {
	e, _ := createTestNotificationServer(t)

	for _, query := range []string{"?unread=maybe", "?limit=abc", "?offset=-2"} {
		rec := doRequest(e, http.MethodGet, "/notifications"+query, "")

		requireErrorResponse(t, rec, http.StatusBadRequest, "INVALID_QUERY")
	}
}

func TestNotificationHandler_Counters(t *testing.T) {
	e, notificationUC := createTestNotificationServer(t)

	notificationUC.EXPECT().UnreadCount(mock.Anything, "owner-uid").Return(int64(3), nil)
	notificationUC.EXPECT().MarkAllRead(mock.Anything, "owner-uid").Return(int64(3), nil)

	rec := doRequest(e, http.MethodGet, "/notifications/unread-count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var unread map[string]int64
	decodeData(t, rec, &unread)
	assert.Equal(t, int64(3), unread["unread"])

	rec = doRequest(e, http.MethodPost, "/notifications/read-all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]int64
	decodeData(t, rec, &updated)
	assert.Equal(t, int64(3), updated["updated"])
}

func TestNotificationHandler_MarkReadAndDelete(t *testing.T) {
	e, notificationUC := createTestNotificationServer(t)
	readID, missingID := uuid.New(), uuid.New()

	notificationUC.EXPECT().MarkRead(mock.Anything, "owner-uid", readID).Return(nil)
	notificationUC.EXPECT().Delete(mock.Anything, "owner-uid", missingID).Return(domainerrors.ErrNotificationNotFound)

	rec := doRequest(e, http.MethodPost, "/notifications/"+readID.String()+"/read", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/notifications/"+missingID.String(), "")
	requireErrorResponse(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
}
