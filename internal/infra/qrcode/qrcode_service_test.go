package qrcode

import (
	"encoding/json"
	"testing"

	"bumpr/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateHandshakeQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	userID := uuid.New()

	qrBytes, err := service.GenerateHandshakeQR(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateHandshakeQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			userID := uuid.New()

			qrBytes, err := service.GenerateHandshakeQR(userID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseHandshakeQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	userID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		UserID: userID.String(),
		Type:       "handshake",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	parsedID, err := service.ParseHandshakeQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestQRCodeService_ParseHandshakeQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseHandshakeQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseHandshakeQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid type
	data := QRCodeData{
		UserID: uuid.New().String(),
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseHandshakeQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseHandshakeQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid UUID
	data := QRCodeData{
		UserID: "not-a-valid-uuid",
		Type:       "handshake",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseHandshakeQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse user ID")
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}

	svc := NewFromConfig(cfg)
	qrBytes, err := svc.GenerateHandshakeQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	originalID := uuid.New()

	// Generate QR code
	qrBytes, err := service.GenerateHandshakeQR(originalID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// PNG decoding is out of reach here, so rebuild the scanned payload
	data := QRCodeData{
		UserID: originalID.String(),
		Type:       "handshake",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseHandshakeQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalID, parsedID)
}
