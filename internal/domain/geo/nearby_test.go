package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type place struct {
	name  string
	coord *Coordinate
}

func (p place) Location() (Coordinate, bool) {
	if p.coord == nil {
		return Coordinate{}, false
	}

	return *p.coord, true
}

func at(name string, lat, lng float64) place {
	c := NewCoordinate(lat, lng)

	return place{name: name, coord: &c}
}

var observer = NewCoordinate(37.7749, -122.4194)

func TestFindNearby_KeepsCandidatesWithinRadius(t *testing.T) {
	candidates := []place{
		at("north 111m", 37.7759, -122.4194),
		at("far away", 37.8749, -122.4194),
		at("same spot", 37.7749, -122.4194),
	}

	matches := FindNearby(observer, 500, candidates)

	require.Len(t, matches, 2)
	assert.Equal(t, "north 111m", matches[0].Item.name)
	assert.InDelta(t, 111.19, matches[0].DistanceMeters, 0.1)
	assert.Equal(t, "same spot", matches[1].Item.name)
	assert.Equal(t, 0.0, matches[1].DistanceMeters)
}

func TestFindNearby_NeverExceedsRadius(t *testing.T) {
	var candidates []place
	for i := 0; i < 50; i++ {
		candidates = append(candidates, at("p", 37.7749+float64(i)*0.0005, -122.4194))
	}

	for _, radius := range []float64{1, 100, 500, 2000} {
		for _, m := range FindNearby(observer, radius, candidates) {
			assert.LessOrEqual(t, m.DistanceMeters, radius)
		}
	}
}

func TestFindNearby_ZeroRadiusIsEmpty(t *testing.T) {
	matches := FindNearby(observer, 0, []place{at("same spot", 37.7749, -122.4194)})

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindNearby_NoCandidatesIsEmpty(t *testing.T) {
	matches := FindNearby[place](observer, 500, nil)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindNearby_SkipsUnknownLocation(t *testing.T) {
	matches := FindNearby(observer, 500, []place{{name: "nowhere"}})

	assert.Empty(t, matches)
}

func TestNearest_SortsAndTruncates(t *testing.T) {
	candidates := []place{
		at("300m", 37.7776, -122.4194),
		at("100m", 37.7758, -122.4194),
		at("200m", 37.7767, -122.4194),
		at("outside", 37.7849, -122.4194),
	}

	matches := Nearest(observer, 500, candidates, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "100m", matches[0].Item.name)
	assert.Equal(t, "200m", matches[1].Item.name)
}

func TestTruncate_NonPositiveLimitKeepsAll(t *testing.T) {
	matches := []Match[place]{{}, {}, {}}

	assert.Len(t, Truncate(matches, 0), 3)
	assert.Len(t, Truncate(matches, 5), 3)
	assert.Len(t, Truncate(matches, 1), 1)
}
