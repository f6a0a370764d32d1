package entity

import (
	"time"

	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// HandshakeStatus is the state of a connection request.
type HandshakeStatus string

const (
	HandshakeStatusPending  HandshakeStatus = "pending"
	HandshakeStatusAccepted HandshakeStatus = "accepted"
	HandshakeStatusDeclined HandshakeStatus = "declined"
)

// IsResponse reports whether s is a valid answer to a pending handshake.
func (s HandshakeStatus) IsResponse() bool {
	return s == HandshakeStatusAccepted || s == HandshakeStatusDeclined
}

// Handshake is a connection request between two users.
// Transitions: pending -> accepted | declined. Both outcomes are terminal.
type Handshake struct {
	ID               uuid.UUID
	SenderID         uuid.UUID
	ReceiverID       uuid.UUID
	Status           HandshakeStatus
	SenderLocation   geo.Coordinate
	ReceiverLocation *geo.Coordinate // Set when the receiver answers with a position.
	DistanceMeters   *float64        // Derived at response time, informational only.
	Message          string
	CreatedAt        time.Time
	RespondedAt      *time.Time
}

// IsActive reports whether the handshake blocks a new one between the same pair.
func (h *Handshake) IsActive() bool {
	return h.Status == HandshakeStatusPending || h.Status == HandshakeStatusAccepted
}

// CanRespond reports whether the handshake still accepts a response.
func (h *Handshake) CanRespond() bool {
	return h.Status == HandshakeStatusPending
}

// Respond moves a pending handshake to its terminal status and derives the
// sender-receiver distance when the receiver position is known.
func (h *Handshake) Respond(status HandshakeStatus, receiverLocation *geo.Coordinate, at time.Time) {
	h.Status = status
	h.RespondedAt = &at
	h.ReceiverLocation = receiverLocation
	h.DistanceMeters = nil

	if receiverLocation != nil {
		distance := geo.DistanceMeters(h.SenderLocation, *receiverLocation)
		h.DistanceMeters = &distance
	}
}

// PairKey orders two user IDs so that (a, b) and (b, a) share one key.
func PairKey(a, b uuid.UUID) (low, high uuid.UUID) {
	if a.String() <= b.String() {
		return a, b
	}

	return b, a
}
