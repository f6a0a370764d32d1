package qrcode

import (
	"encoding/json"

	"bumpr/config"
	"bumpr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const handshakeQRType = "handshake"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON payload encoded into a handshake QR code
type QRCodeData struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the QR code service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateHandshakeQR renders the handshake payload for userID as a PNG
func (s *qrcodeService) GenerateHandshakeQR(userID uuid.UUID) ([]byte, error) {
	payload, err := json.Marshal(QRCodeData{
		UserID: userID.String(),
		Type:   handshakeQRType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseHandshakeQR parses scanned QR data and returns the target user ID
func (s *qrcodeService) ParseHandshakeQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != handshakeQRType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse user ID")
	}

	return userID, nil
}
