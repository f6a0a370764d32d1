package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateHandshakeQR renders a PNG QR code that lets another user send userID a handshake
	GenerateHandshakeQR(userID uuid.UUID) ([]byte, error)

	// ParseHandshakeQR parses scanned QR code data and returns the user ID it points to
	ParseHandshakeQR(qrData string) (uuid.UUID, error)
}
