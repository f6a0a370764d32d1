package repository

import (
	"context"

	"bumpr/internal/domain/entity"
	"bumpr/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrHandshakeNotFound is returned when a handshake is not found.
	ErrHandshakeNotFound = errors.New("handshake not found")
	// ErrDuplicateHandshake is returned when an active handshake already exists for the pair.
	ErrDuplicateHandshake = errors.New("active handshake already exists")
	// ErrHandshakeNotPending is returned when responding to a handshake that is no longer pending.
	ErrHandshakeNotPending = errors.New("handshake is not pending")
)

// HandshakeRepository defines the interface for handshake-related database operations.
type HandshakeRepository interface {
	// Create persists a new pending handshake. It fails with ErrDuplicateHandshake
	// when an active handshake exists between the same two users in either direction.
	Create(ctx context.Context, handshake *entity.Handshake) error

	// FindByID retrieves a handshake by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Handshake, error)

	// FindActiveBetween returns the pending or accepted handshake between two users, in either direction.
	FindActiveBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Handshake, error)

	// FindPendingForReceiver lists pending handshakes addressed to userID, newest first.
	FindPendingForReceiver(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)

	// FindSentBy lists handshakes sent by userID, newest first.
	FindSentBy(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)

	// FindAcceptedFor lists accepted handshakes where userID is either party, newest first.
	FindAcceptedFor(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)

	// SaveResponse persists the response of a handshake that is still pending.
	// It returns ErrHandshakeNotPending if another response was stored first.
	SaveResponse(ctx context.Context, handshake *entity.Handshake) error
}
