package entity

import (
	"testing"
	"time"

	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_IsDiscoverable(t *testing.T) {
	now := time.Now()
	window := 15 * time.Minute
	loc := geo.NewCoordinate(37.7749, -122.4194)
	fresh := now.Add(-5 * time.Minute)
	stale := now.Add(-16 * time.Minute)
	edge := now.Add(-window)

	tests := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{"open with fresh location", Profile{Status: ProfileStatusOpen, LastLocation: &loc, LocationUpdated: &fresh}, true},
		{"busy", Profile{Status: ProfileStatusBusy, LastLocation: &loc, LocationUpdated: &fresh}, false},
		{"stale location", Profile{Status: ProfileStatusOpen, LastLocation: &loc, LocationUpdated: &stale}, false},
		{"exactly at the window", Profile{Status: ProfileStatusOpen, LastLocation: &loc, LocationUpdated: &edge}, false},
		{"no location", Profile{Status: ProfileStatusOpen}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsDiscoverable(now, window))
		})
	}
}

func TestProfile_Location(t *testing.T) {
	p := &Profile{}
	_, ok := p.Location()
	assert.False(t, ok)

	loc := geo.NewCoordinate(1, 2)
	p.LastLocation = &loc
	got, ok := p.Location()
	assert.True(t, ok)
	assert.Equal(t, loc, got)
}

func TestMoment_IsVisible(t *testing.T) {
	now := time.Now()

	assert.True(t, (&Moment{IsActive: true, ExpiresAt: now.Add(time.Hour)}).IsVisible(now))
	assert.False(t, (&Moment{IsActive: false, ExpiresAt: now.Add(time.Hour)}).IsVisible(now))
	// expired but not yet swept
	assert.False(t, (&Moment{IsActive: true, ExpiresAt: now.Add(-time.Second)}).IsVisible(now))
	assert.False(t, (&Moment{IsActive: true, ExpiresAt: now}).IsVisible(now))
}

func TestHandshake_Respond(t *testing.T) {
	at := time.Now()
	h := &Handshake{
		Status:         HandshakeStatusPending,
		SenderLocation: geo.NewCoordinate(37.7749, -122.4194),
	}
	require.True(t, h.CanRespond())

	receiver := geo.NewCoordinate(37.7759, -122.4194)
	h.Respond(HandshakeStatusAccepted, &receiver, at)

	assert.Equal(t, HandshakeStatusAccepted, h.Status)
	assert.True(t, h.IsActive())
	assert.False(t, h.CanRespond())
	require.NotNil(t, h.DistanceMeters)
	assert.InDelta(t, 111.19, *h.DistanceMeters, 0.1)
	assert.Equal(t, &at, h.RespondedAt)
}

func TestHandshake_RespondWithoutReceiverLocation(t *testing.T) {
	h := &Handshake{Status: HandshakeStatusPending}

	h.Respond(HandshakeStatusDeclined, nil, time.Now())

	assert.Equal(t, HandshakeStatusDeclined, h.Status)
	assert.False(t, h.IsActive())
	assert.Nil(t, h.DistanceMeters)
}

func TestHandshakeStatus_IsResponse(t *testing.T) {
	assert.True(t, HandshakeStatusAccepted.IsResponse())
	assert.True(t, HandshakeStatusDeclined.IsResponse())
	assert.False(t, HandshakeStatusPending.IsResponse())
	assert.False(t, HandshakeStatus("maybe").IsResponse())
}

func TestPairKey_IsOrderIndependent(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	low1, high1 := PairKey(a, b)
	low2, high2 := PairKey(b, a)

	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
	assert.NotEqual(t, low1, high1)
}
