package entity

import (
	"time"

	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// Moment is a short, location-tagged video that disappears after ExpiresAt.
type Moment struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	VideoURL         string
	ThumbnailURL     string
	Caption          string
	Position         geo.Coordinate
	LocationName     string
	DurationSeconds  int     // Video length.
	VisibilityRadius float64 // Meters.
	ViewCount        int
	ExpiresAt        time.Time
	IsActive         bool // Flipped to false by the expiry sweep; rows are never deleted.
	CreatedAt        time.Time
}

// IsVisible reports whether the moment may appear in a nearby query at now.
// Expiry is checked directly so an unswept moment is still hidden.
func (m *Moment) IsVisible(now time.Time) bool {
	return m.IsActive && now.Before(m.ExpiresAt)
}

// Location implements geo.Located.
func (m *Moment) Location() (geo.Coordinate, bool) {
	return m.Position, true
}

// MomentView records that a viewer has seen a moment. At most one exists per (MomentID, ViewerID).
type MomentView struct {
	ID       uuid.UUID
	MomentID uuid.UUID
	ViewerID uuid.UUID
	ViewedAt time.Time
}

// NearbyMoment is a visible moment annotated with its creator and distance.
type NearbyMoment struct {
	Moment         *Moment
	Creator        *Profile
	DistanceMeters float64
}

// NearbyProfile is a discoverable profile annotated with its distance.
type NearbyProfile struct {
	Profile        *Profile
	DistanceMeters float64
}
