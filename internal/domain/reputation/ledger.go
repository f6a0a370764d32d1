// Package reputation holds the clique score arithmetic: the persisted ledger rules
// and the client-side heuristic estimate.
package reputation

const (
	MinScore         = 0
	MaxScore         = 100
	DefaultBaseScore = 50
)

// Score deltas applied by the ledger
const (
	DeltaHandshakeSent     = 2
	DeltaHandshakeAccepted = 5
	DeltaMomentCreated     = 3
	DeltaMomentViewed      = 1
)

// Reason labels a ledger event.
type Reason string

const (
	ReasonHandshakeSent     Reason = "handshake_sent"
	ReasonHandshakeAccepted Reason = "handshake_accepted"
	ReasonMomentCreated     Reason = "moment_created"
	ReasonMomentViewed      Reason = "moment_viewed"
)

// IsValid reports whether r is a known reason.
func (r Reason) IsValid() bool {
	switch r {
	case ReasonHandshakeSent, ReasonHandshakeAccepted, ReasonMomentCreated, ReasonMomentViewed:
		return true
	default:
		return false
	}
}

// Clamp bounds score to [MinScore, MaxScore].
func Clamp(score int) int {
	return max(MinScore, min(MaxScore, score))
}

// Apply returns the score after one ledger event.
func Apply(old, delta int) int {
	return Clamp(old + delta)
}

// Fold replays deltas from base, clamping after each step like the store does.
func Fold(base int, deltas ...int) int {
	score := Clamp(base)
	for _, d := range deltas {
		score = Apply(score, d)
	}

	return score
}
