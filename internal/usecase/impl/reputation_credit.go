package impl

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reputationCredit is one ledger mutation applied inside a caller's transaction.
type reputationCredit struct {
	UserID    uuid.UUID
	Delta     int
	Reason    reputation.Reason
	RelatedID *uuid.UUID
	At        time.Time
}

// creditReputation updates the clamped score and appends the unclamped event using the
// repositories of the surrounding transaction. A missing profile records nothing.
func creditReputation(ctx context.Context, repoFactory repository.RepositoryFactory, credit *reputationCredit) (int, error) {
	score, err := repoFactory.ProfileRepo().ApplyScoreDelta(ctx, credit.UserID, credit.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return 0, errors.Wrap(err, "failed to apply score delta")
	}

	event := &entity.ReputationEvent{
		ID:        uuid.New(),
		UserID:    credit.UserID,
		Delta:     credit.Delta,
		Reason:    credit.Reason,
		RelatedID: credit.RelatedID,
		CreatedAt: credit.At,
	}
	if err := repoFactory.ReputationRepo().Append(ctx, event); err != nil {
		return 0, errors.Wrap(err, "failed to append reputation event")
	}

	return score, nil
}

// findProfile loads a profile and maps a miss onto the domain not-found error.
func findProfile(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
