package usecase

import (
	"context"

	"farmdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// InvitationUsecase moves users into farms as staff.
type InvitationUsecase interface {
	Invite(ctx context.Context, ownerUID, email string) (*entity.Invitation, error)

	// ListReceived returns the invitations addressed to uid that are still pending.
	ListReceived(ctx context.Context, uid string) ([]*entity.Invitation, error)
	ListSent(ctx context.Context, ownerUID string) ([]*entity.Invitation, error)

	Accept(ctx context.Context, uid string, id uuid.UUID) (*entity.Invitation, error)
	Decline(ctx context.Context, uid string, id uuid.UUID) (*entity.Invitation, error)
	Revoke(ctx context.Context, ownerUID string, id uuid.UUID) error

	// InvitationQR renders the accept link of a pending invitation as a PNG.
	InvitationQR(ctx context.Context, ownerUID string, id uuid.UUID) ([]byte, error)
}
