package postgres

import (
	"context"
	"testing"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFarmRepository(newTestDB(t))

	farm := &entity.Farm{OwnerID: "owner", FarmName: "Green Acres", Latitude: 45.5, Longitude: -122.6}
	require.NoError(t, repo.Create(ctx, farm))
	require.NotEqual(t, uuid.Nil, farm.ID)

	got, err := repo.FindByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", got.FarmName)
	assert.Empty(t, got.Staff)

	got.AddStaff("staff-1")
	got.AddStaff("staff-2")
	require.NoError(t, repo.UpdateStaff(ctx, got))

	// A details edit from an older snapshot must not drop the staff.
	stale := *farm
	stale.FarmName = "Greener Acres"
	require.NoError(t, repo.UpdateDetails(ctx, &stale))

	updated, err := repo.FindByIDForUpdate(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-1", "staff-2"}, updated.Staff)
	assert.Equal(t, "Greener Acres", updated.FarmName)
	assert.InDelta(t, 45.5, updated.Latitude, 1e-9)
	assert.True(t, updated.HasMember("staff-2"))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrFarmNotFound)

	err = repo.UpdateStaff(ctx, &entity.Farm{ID: uuid.New(), OwnerID: "x", FarmName: "x"})
	assert.ErrorIs(t, err, repository.ErrFarmNotFound)
}
