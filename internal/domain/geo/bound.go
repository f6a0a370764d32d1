package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// orb sizes bounds with the equatorial radius, which is larger than EarthRadiusMeters.
// Scale and pad so the box never clips a point the haversine filter would keep.
const boundPadding = orb.EarthRadius / EarthRadiusMeters * 1.01

// Bound is a latitude/longitude box used as a coarse pre-filter before the exact distance check.
type Bound struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64

	// WrapsLongitude is set when the box crosses the antimeridian or touches a pole.
	// Callers must then skip the longitude predicate.
	WrapsLongitude bool
}

// BoundAround returns a box that contains every point within radiusMeters of center.
func BoundAround(center Coordinate, radiusMeters float64) Bound {
	b := geo.NewBoundAroundPoint(center.Point(), radiusMeters*boundPadding)

	bound := Bound{
		MinLat: b.Min.Lat(),
		MaxLat: b.Max.Lat(),
		MinLng: b.Min.Lon(),
		MaxLng: b.Max.Lon(),
	}
	if bound.MinLng > bound.MaxLng || (bound.MinLng <= -180 && bound.MaxLng >= 180) {
		bound.WrapsLongitude = true
	}

	return bound
}

// Contains reports whether c falls inside the box.
func (b Bound) Contains(c Coordinate) bool {
	if c.Latitude < b.MinLat || c.Latitude > b.MaxLat {
		return false
	}
	if b.WrapsLongitude {
		return true
	}

	return c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}
