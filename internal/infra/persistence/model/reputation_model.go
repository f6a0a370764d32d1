package model

import (
	"time"

	"github.com/google/uuid"
)

// ReputationEventModel mirrors the append-only 'reputation_history' table.
type ReputationEventModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChangeAmount int        `gorm:"not null"`
	Reason       string     `gorm:"type:varchar(32);not null"`
	RelatedID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReputationEventModel) TableName() string {
	return "reputation_history"
}
