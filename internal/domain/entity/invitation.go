package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus is a plain state field; transitions are enforced by the invitation use case.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

// Invitation asks a registered user to join a farm as staff.
type Invitation struct {
	ID             uuid.UUID        `json:"id"`
	InviterFarmID  uuid.UUID        `json:"inviter_farm_id"`
	InviterUID     string           `json:"inviter_uid"`
	InvitedUserUID string           `json:"invited_user_uid"`
	InvitedEmail   string           `json:"invited_email"`
	FarmName       string           `json:"farm_name"`
	Status         InvitationStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	RespondedAt    *time.Time       `json:"responded_at,omitempty"`
}

// IsPending reports whether the invitation can still be answered.
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}
