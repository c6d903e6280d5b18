// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxPushTokens bounds how many device tokens are kept per user.
const MaxPushTokens = 10

// User is one authenticated identity. UID is issued by the identity provider.
type User struct {
	UID          string                  `json:"uid"`
	Email        string                  `json:"email"`
	Name         string                  `json:"name"`
	FarmID       *uuid.UUID              `json:"farm_id,omitempty"`
	IsFarmOwner  bool                    `json:"is_farm_owner"`
	Subscription Subscription            `json:"subscription"`
	Preferences  NotificationPreferences `json:"notification_preferences"`
	PushTokens   []string                `json:"-"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// NotificationPreferences controls which channels a user is reached on.
type NotificationPreferences struct {
	Email         bool `json:"email"`
	Push          bool `json:"push"`
	TaskReminders bool `json:"task_reminders"`
	BillingAlerts bool `json:"billing_alerts"`
}

// DefaultNotificationPreferences is applied to newly created users.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Email:         true,
		Push:          true,
		TaskReminders: true,
		BillingAlerts: true,
	}
}

// HasFarm reports whether the user belongs to a farm.
func (u *User) HasFarm() bool {
	return u.FarmID != nil && *u.FarmID != uuid.Nil
}

// AddPushToken registers a device token, keeping the newest MaxPushTokens.
func (u *User) AddPushToken(token string) {
	u.PushTokens = slices.DeleteFunc(u.PushTokens, func(t string) bool { return t == token })
	u.PushTokens = append(u.PushTokens, token)
	if len(u.PushTokens) > MaxPushTokens {
		u.PushTokens = u.PushTokens[len(u.PushTokens)-MaxPushTokens:]
	}
}

// RemovePushTokens drops every token in invalid.
func (u *User) RemovePushTokens(invalid []string) {
	u.PushTokens = slices.DeleteFunc(u.PushTokens, func(t string) bool {
		return slices.Contains(invalid, t)
	})
}

// WantsKind reports whether a notification of the given kind should be delivered outside the app.
func (p NotificationPreferences) WantsKind(kind NotificationKind) bool {
	switch kind {
	case NotificationKindTask:
		return p.TaskReminders
	case NotificationKindBilling:
		return p.BillingAlerts
	default:
		return true
	}
}
