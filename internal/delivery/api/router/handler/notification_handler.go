package handler

import (
	"net/http"
	"strconv"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the caller's in-app inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// ListNotifications accepts unread, limit and offset query parameters.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var unreadOnly bool
	if raw := c.QueryParam("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "unread must be a boolean")
		}
		unreadOnly = parsed
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), actor.UID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), actor.UID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.Delete(c.Request().Context(), actor.UID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
