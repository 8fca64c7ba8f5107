package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/high-horse/drawauth/dhash"
)

func TestEvaluate_InclusiveThreshold(t *testing.T) {
	assert.True(t, Evaluate(25, 25).Accepted)
	assert.False(t, Evaluate(26, 25).Accepted)
	assert.True(t, Evaluate(35, 35).Accepted)
	assert.False(t, Evaluate(36, 35).Accepted)
}

func TestEvaluate_Fields(t *testing.T) {
	r := Evaluate(16, 25)
	assert.Equal(t, 16, r.Distance)
	assert.Equal(t, 25, r.Threshold)
	assert.InDelta(t, 75.0, r.MatchPercentage, 1e-9)
	assert.True(t, r.Accepted)

	assert.InDelta(t, 100.0, Evaluate(0, 0).MatchPercentage, 1e-9)
	assert.InDelta(t, 0.0, Evaluate(dhash.Bits, 64).MatchPercentage, 1e-9)
	assert.False(t, Evaluate(0, -1).Accepted)
}

func TestEvaluate_Monotonic(t *testing.T) {
	for threshold := 0; threshold <= dhash.Bits; threshold++ {
		for d1 := 0; d1 <= dhash.Bits; d1++ {
			for d2 := d1; d2 <= dhash.Bits; d2++ {
				if Evaluate(d2, threshold).Accepted {
					assert.True(t, Evaluate(d1, threshold).Accepted, "d1=%d d2=%d t=%d", d1, d2, threshold)
				}
			}
		}
	}
}

func TestPercentageThresholdConversion(t *testing.T) {
	assert.InDelta(t, 45.3, PercentageFor(35), 0.1)
	assert.InDelta(t, 60.9, PercentageFor(25), 0.1)

	assert.Equal(t, 35, ThresholdFor(45))
	assert.Equal(t, 25, ThresholdFor(60))
	assert.Equal(t, 0, ThresholdFor(150))
	assert.Equal(t, dhash.Bits, ThresholdFor(-10))
	for threshold := 0; threshold <= dhash.Bits; threshold++ {
		assert.Equal(t, threshold, ThresholdFor(PercentageFor(threshold)))
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "accepted: distance 0/64, match 100.0% (required >= 60.9%)", Evaluate(0, 25).String())
	assert.Equal(t, "rejected: distance 40/64, match 37.5% (required >= 45.3%)", Evaluate(40, 35).String())
}
