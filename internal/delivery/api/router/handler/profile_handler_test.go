package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"
	"bumpr/internal/errors"
	mockUsecase "bumpr/internal/mocks/usecase"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: discardLogger()}), profileUC
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			return in.UserID == userID && in.Name == "Mia" && len(in.Interests) == 2
		})).
		Return(&entity.Profile{UserID: userID, Name: "Mia", Status: entity.ProfileStatusOpen, CliqueScore: 50}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/users",
		body:   `{"userId":"` + userID.String() + `","name":"Mia","interests":["coffee","climbing"]}`,
	})

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got ProfileResponse
	decodeData(t, rec, &got)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, 50, got.CliqueScore)
	assert.Equal(t, entity.ProfileStatusOpen, got.Status)
	assert.Equal(t, []string{}, got.Interests)
}

func TestProfileHandler_CreateProfile_InvalidUserID(t *testing.T) {
	h, _ := newTestProfileHandler(t)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/users",
		body:   `{"userId":"not-a-uuid","name":"Mia"}`,
	})

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "userId")
}

func TestProfileHandler_CreateProfile_Duplicate(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrProfileAlreadyExists, "failed to create profile"))

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/users",
		body:   `{"userId":"` + uuid.NewString() + `","name":"Mia"}`,
	})

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PROFILE_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
}

func TestProfileHandler_FindNearby(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	excludeID := uuid.New()
	near := &entity.Profile{UserID: uuid.New(), Name: "Near", Status: entity.ProfileStatusOpen, CliqueScore: 61, Interests: []string{"jazz"}}

	profileUC.EXPECT().
		FindNearby(mock.Anything, mock.MatchedBy(func(q *usecase.NearbyUsersQuery) bool {
			return q.Observer == geo.NewCoordinate(25.033, 121.5654) &&
				q.RadiusMeters != nil && *q.RadiusMeters == 250 &&
				q.ExcludeUserID != nil && *q.ExcludeUserID == excludeID
		})).
		Return([]*entity.NearbyProfile{{Profile: near, DistanceMeters: 42.5}}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/users/nearby?lat=25.033&lng=121.5654&radius=250&excludeUserId=" + excludeID.String(),
	})

	require.NoError(t, h.FindNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []NearbyUserResponse
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, near.UserID, got[0].ID)
	assert.InDelta(t, 42.5, got[0].Distance, 1e-9)
	assert.Equal(t, 61, got[0].CliqueScore)
	assert.Equal(t, []string{"jazz"}, got[0].Interests)
}

func TestProfileHandler_FindNearby_DefaultRadius(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	profileUC.EXPECT().
		FindNearby(mock.Anything, mock.MatchedBy(func(q *usecase.NearbyUsersQuery) bool {
			return q.RadiusMeters == nil && q.ExcludeUserID == nil
		})).
		Return([]*entity.NearbyProfile{}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/users/nearby?lat=1&lng=2"})

	require.NoError(t, h.FindNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestProfileHandler_FindNearby_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "missing lat", target: "/api/users/nearby?lng=2", code: "VALIDATION_FAILED"},
		{name: "non numeric lng", target: "/api/users/nearby?lat=1&lng=east", code: "VALIDATION_FAILED"},
		{name: "bad exclude id", target: "/api/users/nearby?lat=1&lng=2&excludeUserId=me", code: "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestProfileHandler(t)
			c, rec := newTestContext(testRequest{method: http.MethodGet, target: tt.target})

			require.NoError(t, h.FindNearby(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestProfileHandler_FindNearby_RadiusRejected(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	profileUC.EXPECT().FindNearby(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidRadius))

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/users/nearby?lat=1&lng=2&radius=90000"})

	require.NoError(t, h.FindNearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RADIUS", decodeEnvelope(t, rec).Error.Code)
}

func TestProfileHandler_UpdateStatus(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().UpdateStatus(mock.Anything, userID, entity.ProfileStatusBusy).Return(nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/users/" + userID.String() + "/status",
		body:   `{"status":"busy"}`,
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	h, _ := newTestProfileHandler(t)
	userID := uuid.NewString()

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/users/" + userID + "/status",
		body:   `{"status":"away"}`,
		params: map[string]string{"userId": userID},
	})

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_UpdateLocation(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().UpdateLocation(mock.Anything, userID, geo.NewCoordinate(0, 0)).Return(nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/users/" + userID.String() + "/location",
		body:   `{"latitude":0,"longitude":0}`,
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()
	loc := geo.NewCoordinate(10, 20)
	updated := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID, Name: "Mia", LastLocation: &loc, LocationUpdated: &updated}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/users/" + userID.String(),
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.GetProfile(c))

	var got ProfileResponse
	decodeData(t, rec, &got)
	require.NotNil(t, got.LastLocation)
	assert.InDelta(t, 10.0, got.LastLocation.Latitude, 0)
	assert.InDelta(t, 20.0, got.LastLocation.Longitude, 0)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found"))

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/users/" + userID.String(),
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileHandler_GenerateHandshakeQR(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	userID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	profileUC.EXPECT().GenerateHandshakeQR(mock.Anything, userID).Return(png, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/users/" + userID.String() + "/qr",
		params: map[string]string{"userId": userID.String()},
	})

	require.NoError(t, h.GenerateHandshakeQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
