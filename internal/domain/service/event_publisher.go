package service

import (
	"context"
	"time"
)

// ActivityEvent describes a committed mutation that downstream consumers, such as push delivery, may react to
type ActivityEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`           // One of constants.Activity*
	ActorID      string    `json:"actor_id"`       // User who caused the event
	TargetUserID string    `json:"target_user_id"` // User the event is about, may equal ActorID
	SubjectID    string    `json:"subject_id"`     // Handshake or moment ID
	Status       string    `json:"status,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
