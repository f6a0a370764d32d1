package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 42, Clamp(42))
	assert.Equal(t, 100, Clamp(130))
}

func TestFold_HandshakeSentThenAccepted(t *testing.T) {
	assert.Equal(t, 57, Fold(50, DeltaHandshakeSent, DeltaHandshakeAccepted))
}

func TestFold_LargeNegativeBurstClampsToZero(t *testing.T) {
	assert.Equal(t, 0, Fold(50, DeltaHandshakeSent, -100))
}

func TestFold_ClampsAtEachStep(t *testing.T) {
	assert.Equal(t, 100, Fold(99, DeltaMomentCreated))
	assert.Equal(t, 0, Fold(1, -5))
	// the floor is hit before the credit, so the credit counts from zero
	assert.Equal(t, 3, Fold(1, -5, DeltaMomentCreated))
}

func TestFold_StaysInRange(t *testing.T) {
	deltas := []int{5, -30, 100, -200, 2, 3, 1, 90, 90}
	score := DefaultBaseScore
	for _, d := range deltas {
		score = Apply(score, d)
		assert.GreaterOrEqual(t, score, MinScore)
		assert.LessOrEqual(t, score, MaxScore)
	}
	assert.Equal(t, Fold(DefaultBaseScore, deltas...), score)
}

func TestReason_IsValid(t *testing.T) {
	assert.True(t, ReasonHandshakeSent.IsValid())
	assert.True(t, ReasonMomentViewed.IsValid())
	assert.False(t, Reason("bribe").IsValid())
}
