package usecase

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// MomentUsecase defines the ephemeral moment operations.
type MomentUsecase interface {
	Create(ctx context.Context, input *CreateMomentInput) (*entity.Moment, error)
	Get(ctx context.Context, momentID uuid.UUID) (*entity.Moment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Moment, error)

	// FindNearby returns visible moments within the radius with their creators, nearest first.
	FindNearby(ctx context.Context, query *NearbyMomentsQuery) ([]*entity.NearbyMoment, error)

	// RecordView is idempotent per (moment, viewer). firstView reports whether this call counted.
	RecordView(ctx context.Context, momentID, viewerID uuid.UUID) (firstView bool, err error)

	// DeactivateExpired flips expired moments to inactive and returns how many changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}

// CreateMomentInput defines a new moment. Optional fields fall back to configured defaults.
// ExpiresAt takes precedence over ExpiresInHours.
type CreateMomentInput struct {
	UserID           uuid.UUID
	VideoURL         string
	ThumbnailURL     string
	Caption          string
	Location         geo.Coordinate
	LocationName     string
	DurationSeconds  *int
	VisibilityRadius *float64
	ExpiresAt        *time.Time
	ExpiresInHours   *int
}

// NearbyMomentsQuery defines a moment proximity query. A nil radius uses the configured default.
type NearbyMomentsQuery struct {
	Observer     geo.Coordinate
	RadiusMeters *float64
}
