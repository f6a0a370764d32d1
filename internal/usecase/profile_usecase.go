package usecase

import (
	"context"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// ProfileUsecase defines profile management and proximity discovery.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, location geo.Coordinate) error

	// FindNearby returns open profiles with a fresh location within the radius, nearest first.
	FindNearby(ctx context.Context, query *NearbyUsersQuery) ([]*entity.NearbyProfile, error)

	// GenerateHandshakeQR renders a QR code another user can scan to send userID a handshake.
	GenerateHandshakeQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile for an externally owned user.
type CreateProfileInput struct {
	UserID    uuid.UUID
	Name      string
	Bio       string
	AvatarURL string
	Interests []string
}

// UpdateProfileInput defines a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name      *string
	Bio       *string
	AvatarURL *string
	Interests []string // nil keeps the current interests, empty clears them
}

// NearbyUsersQuery defines a proximity query. A nil radius uses the configured default.
type NearbyUsersQuery struct {
	Observer      geo.Coordinate
	RadiusMeters  *float64
	ExcludeUserID *uuid.UUID
}
