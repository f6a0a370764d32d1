package impl

import (
	"context"
	"testing"
	"time"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	mockRepo "bumpr/internal/mocks/repository"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reputationServiceFixtures struct {
	service   usecase.ReputationUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
}

func createTestReputationService(t *testing.T) reputationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewReputationService(ReputationServiceParams{
		TxManager: txManager,
		Config:    testConfig(),
		Logger:    discardLogger(),
	})
	svc.(*reputationService).now = func() time.Time { return fixedNow }

	return reputationServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     newRepoMocks(t),
	}
}

func TestReputationService_ApplyEvent_Success(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()
	relatedID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, userID, 5).Return(55, nil)
	fx.repos.reputation.EXPECT().
		Append(ctx, mock.MatchedBy(func(event *entity.ReputationEvent) bool {
			return event.UserID == userID &&
				event.Delta == 5 &&
				event.Reason == reputation.ReasonHandshakeAccepted &&
				*event.RelatedID == relatedID &&
				event.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)

	score, err := fx.service.ApplyEvent(ctx, &usecase.ApplyReputationInput{
		UserID:    userID,
		Delta:     5,
		Reason:    reputation.ReasonHandshakeAccepted,
		RelatedID: &relatedID,
	})

	require.NoError(t, err)
	assert.Equal(t, 55, score)
}

func TestReputationService_ApplyEvent_ClampedScoreKeepsRawDelta(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, userID, -500).Return(0, nil)
	fx.repos.reputation.EXPECT().
		Append(ctx, mock.MatchedBy(func(event *entity.ReputationEvent) bool {
			return event.Delta == -500
		})).
		Return(nil)

	score, err := fx.service.ApplyEvent(ctx, &usecase.ApplyReputationInput{
		UserID: userID,
		Delta:  -500,
		Reason: reputation.ReasonMomentViewed,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestReputationService_ApplyEvent_ProfileNotFoundRecordsNothing(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, userID, 2).Return(0, repository.ErrProfileNotFound)

	_, err := fx.service.ApplyEvent(ctx, &usecase.ApplyReputationInput{
		UserID: userID,
		Delta:  2,
		Reason: reputation.ReasonHandshakeSent,
	})

	requireAppError(t, err, "PROFILE_NOT_FOUND")
	fx.repos.reputation.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestReputationService_ApplyEvent_AppendFailure(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, userID, 3).Return(53, nil)
	fx.repos.reputation.EXPECT().Append(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.ApplyEvent(ctx, &usecase.ApplyReputationInput{
		UserID: userID,
		Delta:  3,
		Reason: reputation.ReasonMomentCreated,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}

func TestReputationService_ApplyEvent_UnknownReason(t *testing.T) {
	fx := createTestReputationService(t)

	_, err := fx.service.ApplyEvent(context.Background(), &usecase.ApplyReputationInput{
		UserID: uuid.New(),
		Delta:  1,
		Reason: "bribe",
	})

	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestReputationService_CurrentScore(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID, CliqueScore: 57}, nil)

	score, err := fx.service.CurrentScore(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 57, score)
}

func TestReputationService_GetSummary_DefaultLimit(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		UserID:          userID,
		CliqueScore:     62,
		TotalHandshakes: 2,
		TotalMoments:    1,
	}, nil)
	fx.repos.reputation.EXPECT().FindByUser(ctx, userID, 20).Return(nil, nil)

	summary, err := fx.service.GetSummary(ctx, userID, 0)

	require.NoError(t, err)
	assert.Equal(t, 62, summary.Score)
	assert.Equal(t, 2, summary.TotalHandshakes)
	assert.Equal(t, 1, summary.TotalMoments)
	assert.NotNil(t, summary.History)
	assert.Empty(t, summary.History)
}

func TestReputationService_GetSummary_NotFound(t *testing.T) {
	fx := createTestReputationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetSummary(ctx, userID, 5)

	requireAppError(t, err, "PROFILE_NOT_FOUND")
}

func TestReputationService_PreviewScore(t *testing.T) {
	fx := createTestReputationService(t)

	assert.Equal(t, reputation.DefaultBaseScore, fx.service.PreviewScore(context.Background(), nil))

	data := reputation.NewData(fixedNow)
	data.VerifiedInteractions = 3
	assert.Equal(t, 56, fx.service.PreviewScore(context.Background(), &data))
}
