package repository

import (
	"context"
	"errors"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification does not exist for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository stores in-app notifications. Reads and writes are
// scoped to the recipient.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Notification, error)

	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error

	// MarkAllRead flags every unread notification and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
