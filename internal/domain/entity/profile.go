// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
)

// ProfileStatus controls whether a user shows up in proximity discovery.
type ProfileStatus string

const (
	ProfileStatusOpen ProfileStatus = "open"
	ProfileStatusBusy ProfileStatus = "busy"
)

// IsValid reports whether s is a known status.
func (s ProfileStatus) IsValid() bool {
	return s == ProfileStatusOpen || s == ProfileStatusBusy
}

// Profile is a user's discoverable state. The user identity itself is owned by an external system.
type Profile struct {
	UserID          uuid.UUID       // Stable identity, externally owned.
	Name            string          // Display name.
	Bio             string          // Short self description.
	AvatarURL       string          // Optional avatar image.
	Interests       []string        // Free-form interest tags.
	Status          ProfileStatus   // Only open profiles are discoverable.
	LastLocation    *geo.Coordinate // Nil until the client reports a location.
	LocationUpdated *time.Time      // When LastLocation was reported.
	CliqueScore     int             // In [0, 100]; changed only through the reputation ledger.
	TotalHandshakes int             // Accepted handshakes, monotonically increasing.
	TotalMoments    int             // Created moments, monotonically increasing.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location implements geo.Located.
func (p *Profile) Location() (geo.Coordinate, bool) {
	if p.LastLocation == nil {
		return geo.Coordinate{}, false
	}

	return *p.LastLocation, true
}

// HasFreshLocation reports whether the last location was reported less than window ago.
func (p *Profile) HasFreshLocation(now time.Time, window time.Duration) bool {
	if p.LastLocation == nil || p.LocationUpdated == nil {
		return false
	}

	return now.Sub(*p.LocationUpdated) < window
}

// IsDiscoverable reports whether the profile may appear in a nearby query at now.
func (p *Profile) IsDiscoverable(now time.Time, window time.Duration) bool {
	return p.Status == ProfileStatusOpen && p.HasFreshLocation(now, window)
}
