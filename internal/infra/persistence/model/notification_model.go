package model

import (
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(128);index;not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Link      string    `gorm:"type:varchar(500)"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

func ToNotificationDomain(m *NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Kind:      entity.NotificationKind(m.Kind),
		Link:      m.Link,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func FromNotificationDomain(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Kind:      string(n.Kind),
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
