package usecase

import (
	"context"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// HandshakeUsecase defines the connection request workflow.
type HandshakeUsecase interface {
	Send(ctx context.Context, input *SendHandshakeInput) (*entity.Handshake, error)

	// SendFromQR resolves the receiver from scanned QR data and then behaves like Send.
	SendFromQR(ctx context.Context, input *SendHandshakeFromQRInput) (*entity.Handshake, error)

	Respond(ctx context.Context, input *RespondHandshakeInput) (*entity.Handshake, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)
	ListSent(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)
}

// SendHandshakeInput defines a new handshake request.
type SendHandshakeInput struct {
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	SenderLocation geo.Coordinate
	Message        string
}

// SendHandshakeFromQRInput defines a handshake request addressed through a scanned QR code.
type SendHandshakeFromQRInput struct {
	SenderID       uuid.UUID
	QRData         string
	SenderLocation geo.Coordinate
	Message        string
}

// RespondHandshakeInput defines the receiver's answer to a pending handshake.
type RespondHandshakeInput struct {
	HandshakeID      uuid.UUID
	Status           entity.HandshakeStatus
	ReceiverLocation *geo.Coordinate
}
