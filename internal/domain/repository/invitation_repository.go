package repository

import (
	"context"
	"errors"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvitationNotFound is returned when an invitation does not exist.
var ErrInvitationNotFound = errors.New("invitation not found")

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)

	// FindPending returns the pending invitation from farmID to invitedUID, if any.
	FindPending(ctx context.Context, farmID uuid.UUID, invitedUID string) (*entity.Invitation, error)

	// ListByInvitee returns invitations addressed to uid, newest first. An empty
	// status returns every status.
	ListByInvitee(ctx context.Context, uid string, status entity.InvitationStatus) ([]*entity.Invitation, error)

	// ListByFarm returns invitations sent from the farm, newest first.
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Invitation, error)

	Update(ctx context.Context, invitation *entity.Invitation) error
}
