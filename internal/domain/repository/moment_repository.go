package repository

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"
	"bumpr/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrMomentNotFound is returned when a moment is not found.
	ErrMomentNotFound = errors.New("moment not found")
)

// MomentRepository defines the interface for moment-related database operations.
type MomentRepository interface {
	// Create persists a new moment.
	Create(ctx context.Context, moment *entity.Moment) error

	// FindByID retrieves a moment by its ID regardless of visibility.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Moment, error)

	// FindByUser lists the moments created by userID, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Moment, error)

	// FindVisible returns active moments inside bound that have not expired at now.
	FindVisible(ctx context.Context, bound geo.Bound, now time.Time) ([]*entity.Moment, error)

	// IncrementViewCount adds one to the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// DeactivateExpired flips is_active for moments whose expiry has passed and returns how many changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// MomentViewRepository records distinct viewers of a moment.
type MomentViewRepository interface {
	// InsertIfAbsent stores the view unless the viewer has already seen the moment.
	// inserted reports whether a new row was written.
	InsertIfAbsent(ctx context.Context, view *entity.MomentView) (inserted bool, err error)
}
