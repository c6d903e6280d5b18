package model

import (
	"time"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// InvitationModel mirrors the 'invitations' table.
type InvitationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InviterFarmID  uuid.UUID `gorm:"type:uuid;index;not null"`
	InviterUID     string    `gorm:"type:varchar(128);not null"`
	InvitedUserUID string    `gorm:"type:varchar(128);index;not null"`
	InvitedEmail   string    `gorm:"type:varchar(255);not null"`
	FarmName       string    `gorm:"type:varchar(150)"`
	Status         string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt      time.Time
	RespondedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "invitations"
}

func ToInvitationDomain(m *InvitationModel) *entity.Invitation {
	if m == nil {
		return nil
	}

	return &entity.Invitation{
		ID:             m.ID,
		InviterFarmID:  m.InviterFarmID,
		InviterUID:     m.InviterUID,
		InvitedUserUID: m.InvitedUserUID,
		InvitedEmail:   m.InvitedEmail,
		FarmName:       m.FarmName,
		Status:         entity.InvitationStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		RespondedAt:    m.RespondedAt,
	}
}

func FromInvitationDomain(i *entity.Invitation) *InvitationModel {
	return &InvitationModel{
		ID:             i.ID,
		InviterFarmID:  i.InviterFarmID,
		InviterUID:     i.InviterUID,
		InvitedUserUID: i.InvitedUserUID,
		InvitedEmail:   i.InvitedEmail,
		FarmName:       i.FarmName,
		Status:         string(i.Status),
		CreatedAt:      i.CreatedAt,
		RespondedAt:    i.RespondedAt,
	}
}
