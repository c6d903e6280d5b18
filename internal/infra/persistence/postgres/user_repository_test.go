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

func newUser(uid, email string) *entity.User {
	return &entity.User{
		UID:          uid,
		Email:        email,
		Name:         uid,
		Subscription: entity.Subscription{Plan: entity.PlanFree, Status: entity.SubscriptionStatusNone},
		Preferences:  entity.DefaultNotificationPreferences(),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newUser("uid-1", "ana@example.com")
	user.PushTokens = []string{"tok-a"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byUID, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byUID.Email)
	assert.Equal(t, []string{"tok-a"}, byUID.PushTokens)
	assert.Equal(t, entity.DefaultNotificationPreferences(), byUID.Preferences)
	assert.False(t, byUID.HasFarm())

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", byEmail.UID)

	_, err = repo.FindByUID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newUser("uid-1", "ana@example.com")))

	tests := []struct {
		name string
		user *entity.User
	}{
		{name: "same uid", user: newUser("uid-1", "other@example.com")},
		{name: "same email", user: newUser("uid-2", "ana@example.com")},
	}

	for _, tt := range tests {
		err := repo.Create(ctx, tt.user)
		assert.ErrorIs(t, err, repository.ErrUserAlreadyExists, tt.name)
	}
}

func TestUserRepository_TargetedUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newUser("uid-1", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	farmID := uuid.New()
	periodEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateMembership(ctx, "uid-1", &farmID, true))
	require.NoError(t, repo.UpdateSubscription(ctx, "uid-1", entity.Subscription{
		Plan:             "pro",
		Status:           entity.SubscriptionStatusActive,
		StripeCustomerID: "cus_123",
		CurrentPeriodEnd: &periodEnd,
	}))
	user.Name = "Ana"
	user.Preferences.Email = false
	require.NoError(t, repo.UpdateProfile(ctx, user))
	require.NoError(t, repo.UpdatePushTokens(ctx, "uid-1", []string{"tok-a", "tok-b"}))

	got, err := repo.FindByStripeCustomerID(ctx, "cus_123")
	require.NoError(t, err)
	assert.Equal(t, farmID, *got.FarmID)
	assert.True(t, got.IsFarmOwner)
	assert.Equal(t, "pro", got.Subscription.Plan)
	assert.True(t, got.Subscription.IsActive())
	assert.True(t, periodEnd.Equal(*got.Subscription.CurrentPeriodEnd))
	assert.Equal(t, "Ana", got.Name)
	assert.False(t, got.Preferences.Email)
	assert.Equal(t, []string{"tok-a", "tok-b"}, got.PushTokens)

	// clearing the farm must persist the NULL
	require.NoError(t, repo.UpdateMembership(ctx, "uid-1", nil, false))

	cleared, err := repo.FindByUIDForUpdate(ctx, "uid-1")
	require.NoError(t, err)
	assert.Nil(t, cleared.FarmID)
	assert.False(t, cleared.IsFarmOwner)
	assert.Equal(t, "pro", cleared.Subscription.Plan)

	assert.ErrorIs(t, repo.UpdateMembership(ctx, "ghost", nil, false), repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.UpdatePushTokens(ctx, "ghost", nil), repository.ErrUserNotFound)
	_, err = repo.FindByUIDForUpdate(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_TokenPruneKeepsConcurrentMembership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newUser("uid-1", "ana@example.com")
	user.PushTokens = []string{"good", "stale"}
	require.NoError(t, repo.Create(ctx, user))

	snapshot, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)

	// The invitee joins a farm after the snapshot was read.
	farmID := uuid.New()
	require.NoError(t, repo.UpdateMembership(ctx, "uid-1", &farmID, false))

	snapshot.RemovePushTokens([]string{"stale"})
	require.NoError(t, repo.UpdatePushTokens(ctx, snapshot.UID, snapshot.PushTokens))

	got, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	require.True(t, got.HasFarm())
	assert.Equal(t, farmID, *got.FarmID)
	assert.Equal(t, []string{"good"}, got.PushTokens)
}
