package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify stores the notification and publishes it for out-of-app delivery.
// Publishing is best-effort; the stored notification is returned either way.
func (srv *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) (*entity.Notification, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notification recipient is required")
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.NotificationKindSystem
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Title:     input.Title,
		Message:   input.Message,
		Kind:      kind,
		Link:      input.Link,
		CreatedAt: time.Now().UTC(),
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID,
		Kind:           string(notification.Kind),
		Title:          notification.Title,
		Message:        notification.Message,
		Link:           notification.Link,
	}
	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.String("notificationID", event.NotificationID),
			slog.Any("error", err),
		)
	}

	return notification, nil
}

func (srv *notificationService) List(ctx context.Context, uid string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := srv.notificationRepo.ListByUser(ctx, uid, unreadOnly, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, uid string) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, uid)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notifications")
	}

	return count, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, uid string, id uuid.UUID) error {
	err := srv.notificationRepo.MarkRead(ctx, uid, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, uid string) (int64, error) {
	updated, err := srv.notificationRepo.MarkAllRead(ctx, uid)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications read")
	}

	return updated, nil
}

func (srv *notificationService) Delete(ctx context.Context, uid string, id uuid.UUID) error {
	err := srv.notificationRepo.Delete(ctx, uid, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notification")
	}

	return nil
}
