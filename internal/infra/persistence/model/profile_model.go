package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID is owned by the external identity provider.
type ProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Bio             string    `gorm:"type:text"`
	AvatarURL       string    `gorm:"type:text"`
	Interests       []string  `gorm:"type:jsonb;serializer:json"`
	Status          string    `gorm:"type:varchar(16);not null;default:'open'"`
	LastLocationLat *float64
	LastLocationLng *float64
	LocationUpdated *time.Time `gorm:"index"`
	CliqueScore     int        `gorm:"not null;default:50"`
	TotalHandshakes int        `gorm:"not null;default:0"`
	TotalMoments    int        `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
