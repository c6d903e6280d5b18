package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	mockRepo "farmdesk/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireErrorCode asserts err carries an application error with want's code.
func requireErrorCode(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok, "expected an application error, got %v", err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

// txFixture runs every transaction against one mocked repository factory.
type txFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	farmRepo  *mockRepo.MockFarmRepository
	invRepo   *mockRepo.MockInvitationRepository
}

func newTxFixture(t *testing.T) txFixture {
	fx := txFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		farmRepo:  mockRepo.NewMockFarmRepository(t),
		invRepo:   mockRepo.NewMockInvitationRepository(t),
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewFarmRepository().Return(fx.farmRepo).Maybe()
	fx.factory.EXPECT().NewInvitationRepository().Return(fx.invRepo).Maybe()

	return fx
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
