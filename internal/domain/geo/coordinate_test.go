package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	p := NewCoordinate(37.7749, -122.4194)

	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := NewCoordinate(37.7749, -122.4194)
	b := NewCoordinate(37.7849, -122.4094)

	assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-9)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Coordinate
		want  float64
		delta float64
	}{
		{
			name:  "0.001 degree of latitude",
			a:     NewCoordinate(37.7749, -122.4194),
			b:     NewCoordinate(37.7759, -122.4194),
			want:  111.19,
			delta: 0.1,
		},
		{
			name:  "one degree of longitude at the equator",
			a:     NewCoordinate(0, 0),
			b:     NewCoordinate(0, 1),
			want:  111194.93,
			delta: 1,
		},
		{
			name:  "antipodal points",
			a:     NewCoordinate(0, 0),
			b:     NewCoordinate(0, 180),
			want:  math.Pi * EarthRadiusMeters,
			delta: 1,
		},
		{
			name:  "across the antimeridian",
			a:     NewCoordinate(0, 179.999),
			b:     NewCoordinate(0, -179.999),
			want:  222.39,
			delta: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceMeters(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	got := DistanceMeters(NewCoordinate(math.NaN(), 0), NewCoordinate(0, 0))

	assert.True(t, math.IsNaN(got))
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"origin", NewCoordinate(0, 0), true},
		{"bounds inclusive", NewCoordinate(-90, 180), true},
		{"latitude too high", NewCoordinate(90.1, 0), false},
		{"longitude too low", NewCoordinate(0, -180.1), false},
		{"NaN", NewCoordinate(math.NaN(), 0), false},
		{"Inf", NewCoordinate(0, math.Inf(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.IsValid())
		})
	}
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := NewCoordinate(25.033, 121.565)

	p := c.Point()

	assert.Equal(t, orb.Point{121.565, 25.033}, p)
	assert.Equal(t, c, FromPoint(p))
}
