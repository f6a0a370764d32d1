package model

import (
	"time"

	"github.com/google/uuid"
)

// MomentModel mirrors the 'moments' table. Rows are deactivated, never deleted.
type MomentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoURL         string    `gorm:"type:text"`
	ThumbnailURL     string    `gorm:"type:text"`
	Caption          string    `gorm:"type:text"`
	LocationLat      float64   `gorm:"not null"`
	LocationLng      float64   `gorm:"not null"`
	LocationName     string    `gorm:"type:varchar(255)"`
	DurationSeconds  int       `gorm:"not null;default:10"`
	VisibilityRadius float64   `gorm:"not null;default:50"`
	ViewCount        int       `gorm:"not null;default:0"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MomentModel) TableName() string {
	return "moments"
}

// MomentViewModel mirrors the 'moment_views' table, unique on (moment_id, viewer_id).
type MomentViewModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MomentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_moment_views_moment_viewer"`
	ViewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_moment_views_moment_viewer"`
	ViewedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MomentViewModel) TableName() string {
	return "moment_views"
}
