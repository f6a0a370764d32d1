package reputation

import (
	"math"
	"time"
)

const (
	interactionWeight    = 2
	interactionCap       = 20
	ratingSpread         = 40
	contextWeight        = 2
	contextCap           = 10
	credibilityCap       = 10
	neutralRating        = 3
	decayPeriodDays      = 30
	hoursPerDay          = 24
	reputationNormalizer = 100
)

// Rating is one peer rating in the heuristic input.
type Rating struct {
	Rating             int `json:"rating"`             // 1..5
	FromUserReputation int `json:"fromUserReputation"` // 0..100
}

// Data is the locally accumulated interaction history a client scores.
type Data struct {
	BaseScore            int       `json:"baseScore"`
	VerifiedInteractions int       `json:"verifiedInteractions"`
	PositiveRatings      int       `json:"positiveRatings"`
	NegativeRatings      int       `json:"negativeRatings"`
	UniqueContexts       []string  `json:"uniqueContexts"`
	RatingHistory        []Rating  `json:"ratingHistory"`
	LastUpdated          time.Time `json:"lastUpdated"`
}

// NewData returns an empty history seeded with DefaultBaseScore.
func NewData(now time.Time) Data {
	return Data{BaseScore: DefaultBaseScore, LastUpdated: now}
}

// ComputeScore derives an advisory score from Data. It never touches the ledger.
func ComputeScore(data Data, now time.Time) int {
	score := float64(data.BaseScore)

	score += math.Min(float64(data.VerifiedInteractions*interactionWeight), interactionCap)

	if total := data.PositiveRatings + data.NegativeRatings; total > 0 {
		ratio := float64(data.PositiveRatings) / float64(total)
		score += (ratio - 0.5) * ratingSpread
	}

	score += math.Min(float64(countUnique(data.UniqueContexts)*contextWeight), contextCap)

	var credibility float64
	for _, r := range data.RatingHistory {
		credibility += float64(r.Rating-neutralRating) * float64(r.FromUserReputation) / reputationNormalizer
	}
	score += math.Max(-credibilityCap, math.Min(credibilityCap, credibility))

	if !data.LastUpdated.IsZero() {
		days := now.Sub(data.LastUpdated).Hours() / hoursPerDay
		if days > 0 {
			score -= math.Floor(days / decayPeriodDays)
		}
	}

	score = math.Max(MinScore, math.Min(MaxScore, score))

	return int(math.Round(score))
}

func countUnique(contexts []string) int {
	seen := make(map[string]struct{}, len(contexts))
	for _, c := range contexts {
		seen[c] = struct{}{}
	}

	return len(seen)
}
