// Package match turns Hamming distances between fingerprints into
// authentication decisions.
package match

import (
	"fmt"
	"math"

	"github.com/high-horse/drawauth/dhash"
)

// Result is the outcome of one verification attempt.
type Result struct {
	Distance        int     `json:"distance"`
	MatchPercentage float64 `json:"match_percentage"`
	Threshold       int     `json:"threshold"`
	Accepted        bool    `json:"accepted"`
}

// Evaluate classifies a distance against the acceptance threshold. The
// threshold is inclusive: a distance equal to it is accepted. A negative
// threshold rejects everything.
func Evaluate(distance, threshold int) Result {
	return Result{
		Distance:        distance,
		MatchPercentage: Percentage(distance),
		Threshold:       threshold,
		Accepted:        distance <= threshold,
	}
}

// Compare evaluates the distance between two fingerprints.
func Compare(a, b dhash.Fingerprint, threshold int) Result {
	return Evaluate(dhash.Distance(a, b), threshold)
}

// Percentage is the share of matching bits for a distance, from 0 to 100.
func Percentage(distance int) float64 {
	return (1 - float64(distance)/dhash.Bits) * 100
}

// PercentageFor returns the lowest match percentage accepted at threshold.
// 35 gives about 45%, 25 about 60%.
func PercentageFor(threshold int) float64 {
	return Percentage(threshold)
}

// ThresholdFor returns the largest threshold whose accepted results all match
// at least percentage. The result is clamped to [0, dhash.Bits].
func ThresholdFor(percentage float64) int {
	t := int(math.Floor((1 - percentage/100) * dhash.Bits))
	switch {
	case t < 0:
		return 0
	case t > dhash.Bits:
		return dhash.Bits
	}
	return t
}

func (r Result) String() string {
	verdict := "rejected"
	if r.Accepted {
		verdict = "accepted"
	}
	return fmt.Sprintf("%s: distance %d/%d, match %.1f%% (required >= %.1f%%)",
		verdict, r.Distance, dhash.Bits, r.MatchPercentage, PercentageFor(r.Threshold))
}
