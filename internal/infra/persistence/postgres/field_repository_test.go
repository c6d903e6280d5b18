package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFieldRepository(newTestDB(t))
	farmID, otherFarm := uuid.New(), uuid.New()

	boundary := json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`)
	north := &entity.Field{
		FarmID:       farmID,
		Name:         "North",
		SizeHectares: 2.5,
		CropType:     "corn",
		Boundary:     boundary,
		Centroid:     &entity.GeoPoint{Latitude: 0.66, Longitude: 0.33},
	}
	require.NoError(t, repo.Create(ctx, north))
	require.NoError(t, repo.Create(ctx, &entity.Field{FarmID: farmID, Name: "East"}))
	require.NoError(t, repo.Create(ctx, &entity.Field{FarmID: otherFarm, Name: "Elsewhere"}))

	fields, err := repo.ListByFarm(ctx, farmID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "East", fields[0].Name)
	assert.Equal(t, "North", fields[1].Name)
	assert.Nil(t, fields[0].Boundary)
	assert.Nil(t, fields[0].Centroid)

	got, err := repo.FindByID(ctx, farmID, north.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(boundary), string(got.Boundary))
	require.NotNil(t, got.Centroid)
	assert.InDelta(t, 0.66, got.Centroid.Latitude, 1e-9)

	_, err = repo.FindByID(ctx, otherFarm, north.ID)
	assert.ErrorIs(t, err, repository.ErrFieldNotFound)

	got.SizeHectares = 3
	got.CropType = ""
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, farmID, north.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.SizeHectares)
	assert.Empty(t, updated.CropType)

	stolen := *updated
	stolen.FarmID = otherFarm
	assert.ErrorIs(t, repo.Update(ctx, &stolen), repository.ErrFieldNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, otherFarm, north.ID), repository.ErrFieldNotFound)
	require.NoError(t, repo.Delete(ctx, farmID, north.ID))
	assert.ErrorIs(t, repo.Delete(ctx, farmID, north.ID), repository.ErrFieldNotFound)
}
