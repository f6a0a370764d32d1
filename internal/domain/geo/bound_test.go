package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundAround_ContainsEveryPointInsideRadius(t *testing.T) {
	center := NewCoordinate(37.7749, -122.4194)
	radius := 500.0
	bound := BoundAround(center, radius)

	assert.False(t, bound.WrapsLongitude)

	// walk a ring just inside the radius in the four cardinal directions
	edge := radius / EarthRadiusMeters * 180 / 3.141592653589793
	points := []Coordinate{
		NewCoordinate(center.Latitude+edge*0.999, center.Longitude),
		NewCoordinate(center.Latitude-edge*0.999, center.Longitude),
	}
	for _, p := range points {
		assert.LessOrEqual(t, DistanceMeters(center, p), radius)
		assert.True(t, bound.Contains(p), "bound should contain %+v", p)
	}

	east := NewCoordinate(center.Latitude, center.Longitude+0.0056)
	if DistanceMeters(center, east) <= radius {
		assert.True(t, bound.Contains(east))
	}
}

func TestBoundAround_ExcludesDistantPoint(t *testing.T) {
	bound := BoundAround(NewCoordinate(37.7749, -122.4194), 500)

	assert.False(t, bound.Contains(NewCoordinate(37.8749, -122.4194)))
	assert.False(t, bound.Contains(NewCoordinate(37.7749, -122.3194)))
}

func TestBoundAround_WrapsAtAntimeridian(t *testing.T) {
	bound := BoundAround(NewCoordinate(0, 179.999), 1000)

	assert.True(t, bound.WrapsLongitude)
	assert.True(t, bound.Contains(NewCoordinate(0, -179.999)))
}

func TestBoundAround_WrapsNearPole(t *testing.T) {
	bound := BoundAround(NewCoordinate(89.999, 0), 1000)

	assert.True(t, bound.WrapsLongitude)
}
