package geo

import (
	"cmp"
	"slices"
)

// Located is implemented by anything that may carry a position.
// ok is false when the position is unknown.
type Located interface {
	Location() (coord Coordinate, ok bool)
}

// Match pairs a candidate with its distance from the observer.
type Match[T Located] struct {
	Item           T
	DistanceMeters float64
}

// FindNearby keeps the candidates whose distance from observer is at most radiusMeters.
// Candidates without a location never match. A non-positive radius yields no matches.
// The relative order of candidates is preserved; see SortByDistance.
func FindNearby[T Located](observer Coordinate, radiusMeters float64, candidates []T) []Match[T] {
	if radiusMeters <= 0 || len(candidates) == 0 {
		return []Match[T]{}
	}

	matches := make([]Match[T], 0, len(candidates))
	for _, candidate := range candidates {
		coord, ok := candidate.Location()
		if !ok {
			continue
		}

		distance := DistanceMeters(observer, coord)
		// NaN fails this comparison and is dropped
		if distance <= radiusMeters {
			matches = append(matches, Match[T]{Item: candidate, DistanceMeters: distance})
		}
	}

	return matches
}

// SortByDistance orders matches by ascending distance, keeping ties in input order.
func SortByDistance[T Located](matches []Match[T]) {
	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})
}

// Truncate returns at most limit matches. A non-positive limit returns all of them.
func Truncate[T Located](matches []Match[T], limit int) []Match[T] {
	if limit <= 0 || len(matches) <= limit {
		return matches
	}

	return matches[:limit]
}

// Nearest filters, sorts and truncates in one step.
func Nearest[T Located](observer Coordinate, radiusMeters float64, candidates []T, limit int) []Match[T] {
	matches := FindNearby(observer, radiusMeters, candidates)
	SortByDistance(matches)

	return Truncate(matches, limit)
}
