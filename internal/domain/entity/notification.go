// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind categorises notifications for preference filtering.
type NotificationKind string

const (
	NotificationKindInvitation NotificationKind = "invitation"
	NotificationKindTask       NotificationKind = "task"
	NotificationKindBilling    NotificationKind = "billing"
	NotificationKindSystem     NotificationKind = "system"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
