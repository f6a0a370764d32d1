package entity

import (
	"time"

	"bumpr/internal/domain/reputation"

	"github.com/google/uuid"
)

// ReputationEvent is one append-only ledger entry. Delta is stored as requested, never clamped.
type ReputationEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Delta     int
	Reason    reputation.Reason
	RelatedID *uuid.UUID // Handshake or moment that triggered the event.
	CreatedAt time.Time
}

// ReputationSummary is the read model served to clients.
type ReputationSummary struct {
	Score           int
	TotalHandshakes int
	TotalMoments    int
	History         []*ReputationEvent
}
