package model

import (
	"time"

	"github.com/google/uuid"
)

// HandshakeModel mirrors the 'handshakes' table.
// PairLow/PairHigh hold the ordered user pair so a partial unique index can reject a second active handshake.
type HandshakeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PairLow        uuid.UUID `gorm:"type:uuid;not null"`
	PairHigh       uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'pending'"`
	SenderLat      float64   `gorm:"not null"`
	SenderLng      float64   `gorm:"not null"`
	ReceiverLat    *float64
	ReceiverLng    *float64
	DistanceMeters *float64
	Message        string `gorm:"type:text"`
	CreatedAt      time.Time
	RespondedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (HandshakeModel) TableName() string {
	return "handshakes"
}
