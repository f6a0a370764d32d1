// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"
	"bumpr/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile already exists for a user.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// DiscoverableQuery narrows the candidate set for a nearby-profile query.
type DiscoverableQuery struct {
	Bound         geo.Bound
	FreshSince    time.Time
	ExcludeUserID *uuid.UUID
}

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile owned by userID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUserIDs retrieves the profiles for the given users. Missing users are skipped.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error)

	// UpdateDetails persists name, bio, avatar and interests.
	UpdateDetails(ctx context.Context, profile *entity.Profile) error

	// UpdateStatus sets the discovery status.
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error

	// UpdateLocation stores the last reported location.
	UpdateLocation(ctx context.Context, userID uuid.UUID, location geo.Coordinate, at time.Time) error

	// FindDiscoverable returns open profiles with a location newer than FreshSince inside Bound.
	// It is a coarse pre-filter; callers still apply the exact distance check.
	FindDiscoverable(ctx context.Context, query DiscoverableQuery) ([]*entity.Profile, error)

	// ApplyScoreDelta adds delta to the clique score, clamped to [0, 100], in a single statement,
	// and returns the new score.
	ApplyScoreDelta(ctx context.Context, userID uuid.UUID, delta int) (int, error)

	// IncrementHandshakes adds one to the accepted handshake counter.
	IncrementHandshakes(ctx context.Context, userID uuid.UUID) error

	// IncrementMoments adds one to the created moment counter.
	IncrementMoments(ctx context.Context, userID uuid.UUID) error
}
