package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bumpr/config"
	"bumpr/internal/domain/constants"
	"bumpr/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ActivityEvent {
	return &service.ActivityEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         constants.ActivityHandshakeSent,
		ActorID:      "actor",
		TargetUserID: "target",
		SubjectID:    "handshake",
		Status:       "pending",
		OccurredAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishActivityEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishActivityEvent(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.ActivityHandshakeSent, received.Message.Attributes["type"])
	assert.Equal(t, "target", received.Message.Attributes["target_user_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ActivityEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "handshake", decoded.SubjectID)
	assert.Equal(t, "pending", decoded.Status)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishActivityEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)
	_, ok := attributes["request_id"]
	assert.False(t, ok)
	assert.Equal(t, "evt-1", attributes["event_id"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishActivityEvent(context.Background(), testEvent()))
			}
		})
	}
}

func TestNewEventPublisher_LocalClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:0/push",
		}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	lc.RequireStart()
	lc.RequireStop()
}
