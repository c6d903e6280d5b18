package postgres

import (
	"context"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewInvitationRepository(newTestDB(t))
	farmID := uuid.New()

	pending := &entity.Invitation{
		InviterFarmID:  farmID,
		InviterUID:     "owner",
		InvitedUserUID: "staff",
		InvitedEmail:   "staff@example.com",
		FarmName:       "Green Acres",
		Status:         entity.InvitationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, pending))

	found, err := repo.FindPending(ctx, farmID, "staff")
	require.NoError(t, err)
	assert.Equal(t, pending.ID, found.ID)

	_, err = repo.FindPending(ctx, uuid.New(), "staff")
	assert.ErrorIs(t, err, repository.ErrInvitationNotFound)

	respondedAt := time.Now().UTC()
	found.Status = entity.InvitationStatusDeclined
	found.RespondedAt = &respondedAt
	require.NoError(t, repo.Update(ctx, found))

	_, err = repo.FindPending(ctx, farmID, "staff")
	assert.ErrorIs(t, err, repository.ErrInvitationNotFound)

	second := *pending
	second.ID = uuid.Nil
	require.NoError(t, repo.Create(ctx, &second))

	all, err := repo.ListByInvitee(ctx, "staff", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := repo.ListByInvitee(ctx, "staff", entity.InvitationStatusPending)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, second.ID, open[0].ID)

	sent, err := repo.ListByFarm(ctx, farmID)
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	byID, err := repo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationStatusDeclined, byID.Status)
	require.NotNil(t, byID.RespondedAt)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrInvitationNotFound)
}
