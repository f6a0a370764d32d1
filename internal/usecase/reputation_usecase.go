// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/reputation"

	"github.com/google/uuid"
)

// ReputationUsecase defines the clique score ledger operations.
type ReputationUsecase interface {
	// ApplyEvent credits delta to userID and appends the ledger event in one transaction.
	// It returns the new, clamped score.
	ApplyEvent(ctx context.Context, input *ApplyReputationInput) (int, error)

	// CurrentScore returns the stored score of userID.
	CurrentScore(ctx context.Context, userID uuid.UUID) (int, error)

	// GetSummary returns the score, totals and the most recent ledger events.
	// A non-positive limit uses the configured history size.
	GetSummary(ctx context.Context, userID uuid.UUID, limit int) (*entity.ReputationSummary, error)

	// PreviewScore evaluates the advisory heuristic over client supplied data. Nothing is stored.
	PreviewScore(ctx context.Context, data *reputation.Data) int
}

// ApplyReputationInput defines a single ledger credit or debit.
type ApplyReputationInput struct {
	UserID    uuid.UUID
	Delta     int
	Reason    reputation.Reason
	RelatedID *uuid.UUID
}
