// Package geo contains the great-circle math used for proximity discovery.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by every distance computation.
const EarthRadiusMeters = 6371000.0

// Coordinate is a WGS-84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// NewCoordinate builds a Coordinate from latitude and longitude.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng}
}

// FromPoint converts an orb point (lon, lat order) into a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Point returns the coordinate as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// IsValid reports whether the coordinate is finite and within geographic bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceMeters returns the haversine distance between a and b in meters.
// Any NaN input yields NaN.
func DistanceMeters(a, b Coordinate) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLng := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// rounding can push h slightly above 1 for antipodal points
	h = math.Min(h, 1)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
