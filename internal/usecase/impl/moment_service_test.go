package impl

import (
	"context"
	"testing"
	"time"

	"bumpr/internal/domain/constants"
	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	mockRepo "bumpr/internal/mocks/repository"
	mockSvc "bumpr/internal/mocks/service"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type momentServiceFixtures struct {
	service   usecase.MomentUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
	repos     *repoMocks
}

func createTestMomentService(t *testing.T) momentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewMomentService(MomentServiceParams{
		TxManager:      txManager,
		EventPublisher: publisher,
		Config:         testConfig(),
		Logger:         discardLogger(),
	})
	svc.(*momentService).now = func() time.Time { return fixedNow }

	return momentServiceFixtures{
		service:   svc,
		txManager: txManager,
		publisher: publisher,
		repos:     newRepoMocks(t),
	}
}

func (fx momentServiceFixtures) expectCreate(ctx context.Context, userID uuid.UUID) {
	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)
	fx.repos.moments.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Moment")).Return(nil)
	fx.repos.profiles.EXPECT().IncrementMoments(ctx, userID).Return(nil)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, userID, 3).Return(53, nil)
	fx.repos.reputation.EXPECT().
		Append(ctx, mock.MatchedBy(func(event *entity.ReputationEvent) bool {
			return event.Reason == "moment_created" && event.Delta == 3
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishActivityEvent(ctx, activityOfType(constants.ActivityMomentCreated)).Return(nil)
}

func TestMomentService_Create_Defaults(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectCreate(ctx, userID)

	moment, err := fx.service.Create(ctx, &usecase.CreateMomentInput{
		UserID:   userID,
		VideoURL: "https://cdn.example.com/v.mp4",
		Location: taipei101,
	})

	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(24*time.Hour), moment.ExpiresAt)
	assert.Equal(t, 10, moment.DurationSeconds)
	assert.InDelta(t, 50.0, moment.VisibilityRadius, 0)
	assert.True(t, moment.IsActive)
	assert.Equal(t, 0, moment.ViewCount)
}

func TestMomentService_Create_WithoutVideo(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()
	duration := 10

	fx.expectCreate(ctx, userID)

	moment, err := fx.service.Create(ctx, &usecase.CreateMomentInput{
		UserID:          userID,
		Location:        taipei101,
		DurationSeconds: &duration,
	})

	require.NoError(t, err)
	assert.Empty(t, moment.VideoURL)
	assert.True(t, moment.IsVisible(fixedNow))
}

func TestMomentService_Create_ExpiresInHours(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()
	hours := 48

	fx.expectCreate(ctx, userID)

	moment, err := fx.service.Create(ctx, &usecase.CreateMomentInput{
		UserID:         userID,
		VideoURL:       "v.mp4",
		Location:       taipei101,
		ExpiresInHours: &hours,
	})

	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(48*time.Hour), moment.ExpiresAt)
}

func TestMomentService_Create_PastExpiryIsStoredButHidden(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()
	past := fixedNow.Add(-time.Hour)

	fx.expectCreate(ctx, userID)

	moment, err := fx.service.Create(ctx, &usecase.CreateMomentInput{
		UserID:    userID,
		VideoURL:  "v.mp4",
		Location:  taipei101,
		ExpiresAt: &past,
	})

	require.NoError(t, err)
	assert.Equal(t, past, moment.ExpiresAt)
	assert.False(t, moment.IsVisible(fixedNow))
}

func TestMomentService_Create_Validation(t *testing.T) {
	tooLong := 16
	tooShort := 4
	tooNarrow := 5.0
	zeroHours := 0
	manyHours := 49
	farFuture := fixedNow.Add(72 * time.Hour)

	tests := []struct {
		name  string
		input usecase.CreateMomentInput
		code  string
	}{
		{name: "bad coordinate", input: usecase.CreateMomentInput{VideoURL: "v", Location: geo.NewCoordinate(0, 181)}, code: "INVALID_COORDINATE"},
		{name: "duration too long", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, DurationSeconds: &tooLong}, code: "VALIDATION_FAILED"},
		{name: "duration too short", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, DurationSeconds: &tooShort}, code: "VALIDATION_FAILED"},
		{name: "visibility too narrow", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, VisibilityRadius: &tooNarrow}, code: "VALIDATION_FAILED"},
		{name: "zero hours", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, ExpiresInHours: &zeroHours}, code: "VALIDATION_FAILED"},
		{name: "too many hours", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, ExpiresInHours: &manyHours}, code: "VALIDATION_FAILED"},
		{name: "expiry too far", input: usecase.CreateMomentInput{VideoURL: "v", Location: taipei101, ExpiresAt: &farFuture}, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMomentService(t)
			input := tt.input
			input.UserID = uuid.New()

			_, err := fx.service.Create(context.Background(), &input)

			requireAppError(t, err, tt.code)
		})
	}
}

func TestMomentService_Create_UnknownCreator(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.Create(ctx, &usecase.CreateMomentInput{UserID: userID, VideoURL: "v", Location: taipei101})

	requireAppError(t, err, "PROFILE_NOT_FOUND")
	fx.repos.moments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func momentAt(userID uuid.UUID, dLat float64, expiresAt time.Time, active bool) *entity.Moment {
	return &entity.Moment{
		ID:        uuid.New(),
		UserID:    userID,
		Position:  geo.NewCoordinate(taipei101.Latitude+dLat, taipei101.Longitude),
		ExpiresAt: expiresAt,
		IsActive:  active,
	}
}

func TestMomentService_FindNearby_OnlyVisibleWithCreators(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	later := fixedNow.Add(time.Hour)

	near := momentAt(alice, 0.0009, later, true)
	middle := momentAt(bob, 0.0027, later, true)
	second := momentAt(alice, 0.0018, later, true)
	expired := momentAt(bob, 0.0001, fixedNow, true)
	inactive := momentAt(bob, 0.0001, later, false)
	far := momentAt(bob, 0.0100, later, true)

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().
		FindVisible(ctx, mock.AnythingOfType("geo.Bound"), fixedNow).
		Return([]*entity.Moment{far, middle, expired, inactive, second, near}, nil)
	fx.repos.profiles.EXPECT().
		FindByUserIDs(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool { return len(ids) == 2 })).
		Return([]*entity.Profile{{UserID: alice, Name: "Alice"}, {UserID: bob, Name: "Bob"}}, nil)

	nearby, err := fx.service.FindNearby(ctx, &usecase.NearbyMomentsQuery{Observer: taipei101})

	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, near.ID, nearby[0].Moment.ID)
	assert.Equal(t, second.ID, nearby[1].Moment.ID)
	assert.Equal(t, middle.ID, nearby[2].Moment.ID)
	assert.Equal(t, "Alice", nearby[0].Creator.Name)
	assert.Equal(t, "Bob", nearby[2].Creator.Name)
}

func TestMomentService_FindNearby_CappedByConfig(t *testing.T) {
	fx := createTestMomentService(t)
	fx.service.(*momentService).moment.NearbyLimit = 2
	ctx := context.Background()
	alice := uuid.New()
	later := fixedNow.Add(time.Hour)

	first := momentAt(alice, 0.0001, later, true)
	second := momentAt(alice, 0.0002, later, true)
	third := momentAt(alice, 0.0003, later, true)

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().
		FindVisible(ctx, mock.AnythingOfType("geo.Bound"), fixedNow).
		Return([]*entity.Moment{third, first, second}, nil)
	fx.repos.profiles.EXPECT().
		FindByUserIDs(ctx, mock.Anything).
		Return([]*entity.Profile{{UserID: alice, Name: "Alice"}}, nil)

	nearby, err := fx.service.FindNearby(ctx, &usecase.NearbyMomentsQuery{Observer: taipei101})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, first.ID, nearby[0].Moment.ID)
	assert.Equal(t, second.ID, nearby[1].Moment.ID)
}

func TestMomentService_FindNearby_NoCandidates(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindVisible(ctx, mock.Anything, fixedNow).Return(nil, nil)

	nearby, err := fx.service.FindNearby(ctx, &usecase.NearbyMomentsQuery{Observer: taipei101})

	require.NoError(t, err)
	assert.NotNil(t, nearby)
	assert.Empty(t, nearby)
	fx.repos.profiles.AssertNotCalled(t, "FindByUserIDs", mock.Anything, mock.Anything)
}

func TestMomentService_RecordView_FirstViewCredits(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	creator, viewer := uuid.New(), uuid.New()
	moment := momentAt(creator, 0, fixedNow.Add(time.Hour), true)

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindByID(ctx, moment.ID).Return(moment, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, viewer).Return(&entity.Profile{UserID: viewer}, nil)
	fx.repos.views.EXPECT().
		InsertIfAbsent(ctx, mock.MatchedBy(func(v *entity.MomentView) bool {
			return v.MomentID == moment.ID && v.ViewerID == viewer
		})).
		Return(true, nil)
	fx.repos.moments.EXPECT().IncrementViewCount(ctx, moment.ID).Return(nil)
	fx.repos.profiles.EXPECT().ApplyScoreDelta(ctx, creator, 1).Return(51, nil)
	fx.repos.reputation.EXPECT().Append(ctx, mock.AnythingOfType("*entity.ReputationEvent")).Return(nil)
	fx.publisher.EXPECT().PublishActivityEvent(ctx, activityOfType(constants.ActivityMomentViewed)).Return(nil)

	firstView, err := fx.service.RecordView(ctx, moment.ID, viewer)

	require.NoError(t, err)
	assert.True(t, firstView)
}

func TestMomentService_RecordView_RepeatIsNoop(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	moment := momentAt(uuid.New(), 0, fixedNow.Add(time.Hour), true)
	viewer := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindByID(ctx, moment.ID).Return(moment, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, viewer).Return(&entity.Profile{UserID: viewer}, nil)
	fx.repos.views.EXPECT().InsertIfAbsent(ctx, mock.Anything).Return(false, nil)

	firstView, err := fx.service.RecordView(ctx, moment.ID, viewer)

	require.NoError(t, err)
	assert.False(t, firstView)
	fx.repos.moments.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	fx.repos.profiles.AssertNotCalled(t, "ApplyScoreDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestMomentService_RecordView_UnknownMoment(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMomentNotFound)

	_, err := fx.service.RecordView(ctx, id, uuid.New())

	requireAppError(t, err, "MOMENT_NOT_FOUND")
}

func TestMomentService_RecordView_UnknownViewer(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	moment := momentAt(uuid.New(), 0, fixedNow.Add(time.Hour), true)
	viewer := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindByID(ctx, moment.ID).Return(moment, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, viewer).Return(nil, repository.ErrProfileNotFound)

	firstView, err := fx.service.RecordView(ctx, moment.ID, viewer)

	requireAppError(t, err, "PROFILE_NOT_FOUND")
	assert.False(t, firstView)
	fx.repos.views.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything)
	fx.repos.profiles.AssertNotCalled(t, "ApplyScoreDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestMomentService_ListByUser_Empty(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().FindByUser(ctx, userID).Return(nil, nil)

	moments, err := fx.service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, moments)
	assert.Empty(t, moments)
}

func TestMomentService_DeactivateExpired(t *testing.T) {
	fx := createTestMomentService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.repos.moments.EXPECT().DeactivateExpired(ctx, fixedNow).Return(int64(4), nil)

	count, err := fx.service.DeactivateExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
