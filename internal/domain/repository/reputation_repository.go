package repository

import (
	"context"

	"bumpr/internal/domain/entity"

	"github.com/google/uuid"
)

// ReputationRepository stores the append-only reputation ledger.
type ReputationRepository interface {
	// Append records a ledger event.
	Append(ctx context.Context, event *entity.ReputationEvent) error

	// FindByUser lists the most recent events for userID, newest first, at most limit entries.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ReputationEvent, error)
}
