package usecase

import (
	"context"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/service"

	"github.com/google/uuid"
)

// NotifyInput addresses one in-app notification.
type NotifyInput struct {
	UserID  string
	Title   string
	Message string
	Kind    entity.NotificationKind
	Link    string
}

// NotificationUsecase defines the interface for in-app notifications.
type NotificationUsecase interface {
	// Notify persists the notification and hands it to the delivery worker.
	Notify(ctx context.Context, input *NotifyInput) (*entity.Notification, error)

	List(ctx context.Context, uid string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, uid string) (int64, error)
	MarkRead(ctx context.Context, uid string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, uid string) (int64, error)
	Delete(ctx context.Context, uid string, id uuid.UUID) error
}

// DeliveryUsecase fans a notification event out over email and push.
type DeliveryUsecase interface {
	// Deliver returns an error only when the event should be redelivered.
	Deliver(ctx context.Context, event *service.NotificationEvent) error
}
