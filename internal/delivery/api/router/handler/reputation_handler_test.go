package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bumpr/config"

	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/errors"
	mockUsecase "bumpr/internal/mocks/usecase"
	"bumpr/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReputationHandler(t *testing.T) (*ReputationHandler, *mockUsecase.MockReputationUsecase) {
	reputationUC := mockUsecase.NewMockReputationUsecase(t)

	return NewReputationHandler(ReputationHandlerParams{ReputationUC: reputationUC, Logger: discardLogger()}), reputationUC
}

func TestReputationHandler_GetSummary(t *testing.T) {
	h, reputationUC := newTestReputationHandler(t)
	userID := uuid.New()
	handshakeID := uuid.New()

	reputationUC.EXPECT().GetSummary(mock.Anything, userID, 5).Return(&entity.ReputationSummary{
		Score:           57,
		TotalHandshakes: 1,
		History: []*entity.ReputationEvent{
			{ID: uuid.New(), UserID: userID, Delta: 5, Reason: reputation.ReasonHandshakeAccepted, RelatedID: &handshakeID, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: userID, Delta: 2, Reason: reputation.ReasonHandshakeSent, CreatedAt: time.Now()},
		},
	}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/reputation/" + userID.String() + "?limit=5",
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.GetSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got ReputationResponse
	decodeData(t, rec, &got)
	assert.Equal(t, 57, got.Score)
	assert.Equal(t, 1, got.TotalHandshakes)
	require.Len(t, got.History, 2)
	assert.Equal(t, 5, got.History[0].ChangeAmount)
	assert.Equal(t, reputation.ReasonHandshakeAccepted, got.History[0].Reason)
	assert.Equal(t, &handshakeID, got.History[0].RelatedID)
}

func TestReputationHandler_GetSummary_DefaultLimit(t *testing.T) {
	h, reputationUC := newTestReputationHandler(t)
	userID := uuid.New()

	reputationUC.EXPECT().GetSummary(mock.Anything, userID, 0).
		Return(&entity.ReputationSummary{Score: 50, History: []*entity.ReputationEvent{}}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/reputation/" + userID.String(),
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.GetSummary(c))
	assert.JSONEq(t, `{"score":50,"totalHandshakes":0,"totalMoments":0,"history":[]}`, string(decodeEnvelope(t, rec).Data))
}

func TestReputationHandler_GetSummary_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		setup  func(*mockUsecase.MockReputationUsecase)
	}{
		{name: "bad limit", target: "?limit=many", status: http.StatusBadRequest},
		{name: "negative limit", target: "?limit=-1", status: http.StatusBadRequest},
		{
			name:   "unknown user",
			status: http.StatusNotFound,
			setup: func(uc *mockUsecase.MockReputationUsecase) {
				uc.EXPECT().GetSummary(mock.Anything, mock.Anything, 0).
					Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reputationUC := newTestReputationHandler(t)
			if tt.setup != nil {
				tt.setup(reputationUC)
			}
			userID := uuid.NewString()

			c, rec := newTestContext(testRequest{
				method: http.MethodGet,
				target: "/api/reputation/" + userID + tt.target,
				params: map[string]string{"userId": userID},
			})

			require.NoError(t, h.GetSummary(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestReputationHandler_PreviewScore(t *testing.T) {
	h, reputationUC := newTestReputationHandler(t)

	reputationUC.EXPECT().
		PreviewScore(mock.Anything, mock.MatchedBy(func(data *reputation.Data) bool {
			return data != nil && data.BaseScore == 50 && data.VerifiedInteractions == 10 &&
				len(data.UniqueContexts) == 3
		})).
		Return(88)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/reputation/preview",
		body: `{"baseScore":50,"verifiedInteractions":10,"positiveRatings":8,"negativeRatings":2,` +
			`"uniqueContexts":["a","b","c"],"ratingHistory":[],"lastUpdated":"2024-06-01T12:00:00Z"}`,
	})

	require.NoError(t, h.PreviewScore(c))
	assert.JSONEq(t, `{"score":88}`, string(decodeEnvelope(t, rec).Data))
}

func TestReputationHandler_PreviewScore_EmptyBody(t *testing.T) {
	h, reputationUC := newTestReputationHandler(t)

	reputationUC.EXPECT().PreviewScore(mock.Anything, (*reputation.Data)(nil)).Return(50)

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/reputation/preview"})

	require.NoError(t, h.PreviewScore(c))
	assert.JSONEq(t, `{"score":50}`, string(decodeEnvelope(t, rec).Data))
}

func TestReputationHandler_PreviewScore_DefaultBaseScore(t *testing.T) {
	h, reputationUC := newTestReputationHandler(t)

	reputationUC.EXPECT().
		PreviewScore(mock.Anything, mock.MatchedBy(func(data *reputation.Data) bool {
			return data != nil && data.BaseScore == reputation.DefaultBaseScore && data.PositiveRatings == 8
		})).
		Return(88)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/reputation/preview",
		body:   `{"verifiedInteractions":10,"positiveRatings":8,"negativeRatings":2,"uniqueContexts":["a","b","c"]}`,
	})

	require.NoError(t, h.PreviewScore(c))
	assert.JSONEq(t, `{"score":88}`, string(decodeEnvelope(t, rec).Data))
}

func TestReputationHandler_PreviewScore_ReferenceInputWithService(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	reputationUC := impl.NewReputationService(impl.ReputationServiceParams{
		Config: cfg,
		Logger: discardLogger(),
	})
	h := NewReputationHandler(ReputationHandlerParams{ReputationUC: reputationUC, Logger: discardLogger()})

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/reputation/preview",
		body:   `{"verifiedInteractions":10,"positiveRatings":8,"negativeRatings":2,"uniqueContexts":["a","b","c"]}`,
	})

	require.NoError(t, h.PreviewScore(c))
	assert.JSONEq(t, `{"score":88}`, string(decodeEnvelope(t, rec).Data))
}

func TestReputationHandler_PreviewScore_ChunkedBodies(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantData bool
	}{
		{name: "empty chunked body scores a fresh history"},
		{name: "chunked json body is bound", body: `{"baseScore":70}`, wantData: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reputationUC := newTestReputationHandler(t)
			reputationUC.EXPECT().
				PreviewScore(mock.Anything, mock.MatchedBy(func(data *reputation.Data) bool {
					if !tt.wantData {
						return data == nil
					}

					return data != nil && data.BaseScore == 70
				})).
				Return(50)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/reputation/preview", io.NopCloser(strings.NewReader(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			req.ContentLength = -1
			rec := httptest.NewRecorder()

			require.NoError(t, h.PreviewScore(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
