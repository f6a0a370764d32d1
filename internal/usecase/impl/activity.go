package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bumpr/internal/delivery/context"
	"bumpr/internal/domain/service"

	"github.com/google/uuid"
)

// activity describes a committed mutation to announce.
type activity struct {
	Type      string
	ActorID   uuid.UUID
	TargetID  uuid.UUID
	SubjectID uuid.UUID
	Status    string
	At        time.Time
}

// publishActivity announces a committed mutation. Failures are logged and swallowed
// because the store, not the event stream, is the source of truth.
func publishActivity(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, a activity) {
	if publisher == nil {
		return
	}

	event := &service.ActivityEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.New().String(),
		Type:         a.Type,
		ActorID:      a.ActorID.String(),
		TargetUserID: a.TargetID.String(),
		SubjectID:    a.SubjectID.String(),
		Status:       a.Status,
		OccurredAt:   a.At.UTC(),
	}

	if err := publisher.PublishActivityEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish activity event",
			slog.String("type", a.Type),
			slog.String("subject_id", event.SubjectID),
			slog.Any("error", err),
		)
	}
}
