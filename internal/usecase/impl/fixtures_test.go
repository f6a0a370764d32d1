package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bumpr/config"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/repository"
	mockRepo "bumpr/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// repoMocks bundles the repositories handed out by a mocked transaction.
type repoMocks struct {
	factory    *mockRepo.MockRepositoryFactory
	profiles   *mockRepo.MockProfileRepository
	handshakes *mockRepo.MockHandshakeRepository
	moments    *mockRepo.MockMomentRepository
	views      *mockRepo.MockMomentViewRepository
	reputation *mockRepo.MockReputationRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	repos := &repoMocks{
		factory:    mockRepo.NewMockRepositoryFactory(t),
		profiles:   mockRepo.NewMockProfileRepository(t),
		handshakes: mockRepo.NewMockHandshakeRepository(t),
		moments:    mockRepo.NewMockMomentRepository(t),
		views:      mockRepo.NewMockMomentViewRepository(t),
		reputation: mockRepo.NewMockReputationRepository(t),
	}

	repos.factory.EXPECT().ProfileRepo().Return(repos.profiles).Maybe()
	repos.factory.EXPECT().HandshakeRepo().Return(repos.handshakes).Maybe()
	repos.factory.EXPECT().MomentRepo().Return(repos.moments).Maybe()
	repos.factory.EXPECT().MomentViewRepo().Return(repos.views).Maybe()
	repos.factory.EXPECT().ReputationRepo().Return(repos.reputation).Maybe()

	return repos
}

// expectTx runs the transactional closure against repos and propagates its error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *repoMocks) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}
