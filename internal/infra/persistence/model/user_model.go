// Package model holds the GORM persistence models and their mapping to domain entities.
package model

import (
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. UID is issued by the identity provider.
type UserModel struct {
	UID                  string     `gorm:"type:varchar(128);primaryKey"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                 string     `gorm:"type:varchar(100)"`
	FarmID               *uuid.UUID `gorm:"type:uuid;index"`
	IsFarmOwner          bool       `gorm:"not null;default:false"`
	Plan                 string     `gorm:"type:varchar(50);not null"`
	SubscriptionStatus   string     `gorm:"type:varchar(30);not null"`
	StripeCustomerID     string     `gorm:"type:varchar(255);index"`
	StripeSubscriptionID string     `gorm:"type:varchar(255)"`
	CurrentPeriodEnd     *time.Time
	CancelAtPeriodEnd    bool                                              `gorm:"not null;default:false"`
	Preferences          datatypes.JSONType[entity.NotificationPreferences] `gorm:"not null"`
	PushTokens           datatypes.JSONSlice[string]                       `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain maps a persistence model back to a domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		UID:         m.UID,
		Email:       m.Email,
		Name:        m.Name,
		FarmID:      m.FarmID,
		IsFarmOwner: m.IsFarmOwner,
		Subscription: entity.Subscription{
			Plan:                 m.Plan,
			Status:               entity.SubscriptionStatus(m.SubscriptionStatus),
			StripeCustomerID:     m.StripeCustomerID,
			StripeSubscriptionID: m.StripeSubscriptionID,
			CurrentPeriodEnd:     m.CurrentPeriodEnd,
			CancelAtPeriodEnd:    m.CancelAtPeriodEnd,
		},
		Preferences: m.Preferences.Data(),
		PushTokens:  append([]string{}, m.PushTokens...),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	tokens := u.PushTokens
	if tokens == nil {
		tokens = []string{}
	}

	return &UserModel{
		UID:                  u.UID,
		Email:                u.Email,
		Name:                 u.Name,
		FarmID:               u.FarmID,
		IsFarmOwner:          u.IsFarmOwner,
		Plan:                 u.Subscription.Plan,
		SubscriptionStatus:   string(u.Subscription.Status),
		StripeCustomerID:     u.Subscription.StripeCustomerID,
		StripeSubscriptionID: u.Subscription.StripeSubscriptionID,
		CurrentPeriodEnd:     u.Subscription.CurrentPeriodEnd,
		CancelAtPeriodEnd:    u.Subscription.CancelAtPeriodEnd,
		Preferences:          datatypes.NewJSONType(u.Preferences),
		PushTokens:           datatypes.NewJSONSlice(tokens),
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
