package mastery

import (
	"math"
	"sort"
)

const (
	// DefaultDecayBase halves an attempt's weight for each step it sits
	// behind the most recent one.
	DefaultDecayBase = 0.5

	// DefaultSlowFactor marks a correct attempt as "slow" when its time
	// exceeds this multiple of the item's median time.
	DefaultSlowFactor = 2.0

	// DefaultSlowCredit is the weight multiplier applied to slow-but-correct
	// attempts. Fast-and-correct is stronger mastery evidence.
	DefaultSlowCredit = 0.5

	// DefaultNeedsReviewThreshold is the score below which an item counts
	// as weak for review selection and regeneration targeting.
	DefaultNeedsReviewThreshold = 0.80
)

// Params holds the tunable constants of the mastery formula. The exact
// values are product decisions, not physical law; see engine.Config for
// how they are loaded.
type Params struct {
	DecayBase            float64
	SlowFactor           float64
	SlowCredit           float64
	NeedsReviewThreshold float64
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		DecayBase:            DefaultDecayBase,
		SlowFactor:           DefaultSlowFactor,
		SlowCredit:           DefaultSlowCredit,
		NeedsReviewThreshold: DefaultNeedsReviewThreshold,
	}
}

// Observation is one attempt as seen by the scoring formula: whether it
// was correct and how long it took. Callers pass observations ordered
// oldest to newest.
type Observation struct {
	Correct       bool
	TimeTakenSecs float64
}

// Score computes the recency-weighted correctness score for one item's
// attempt history. The most recent attempt carries the highest weight;
// each older attempt's weight decays by DecayBase per position. Correct
// answers slower than SlowFactor times the item's median time contribute
// at SlowCredit weight. The result is clamped to [0, 1] and rounded to
// two decimals to match the persisted precision. No attempts means no
// mastery evidence: exactly 0.
func Score(history []Observation, p Params) float64 {
	if len(history) == 0 {
		return 0.0
	}

	median := medianTime(history)

	var weightSum, valueSum float64
	last := len(history) - 1
	for i, obs := range history {
		w := math.Pow(p.DecayBase, float64(last-i))

		value := 0.0
		if obs.Correct {
			value = 1.0
			if median > 0 && obs.TimeTakenSecs > p.SlowFactor*median {
				value = p.SlowCredit
			}
		}

		weightSum += w
		valueSum += w * value
	}

	if weightSum == 0 {
		return 0.0
	}
	return Round(clamp(valueSum/weightSum, 0, 1))
}

// DocumentScore aggregates item scores into the document score: the
// unweighted mean over the document's current item set. Items that have
// never been attempted score 0 and still dilute the mean; a document with
// no items has no mastery.
func DocumentScore(itemIDs []string, scores map[string]float64) float64 {
	if len(itemIDs) == 0 {
		return 0.0
	}

	var sum float64
	for _, id := range itemIDs {
		sum += scores[id] // missing ⇒ 0
	}
	return Round(clamp(sum/float64(len(itemIDs)), 0, 1))
}

// NeedsReview reports whether an item score is below the review threshold.
func (p Params) NeedsReview(score float64) bool {
	return score < p.NeedsReviewThreshold
}

// Round rounds a score to the two-decimal precision of the stored columns.
func Round(score float64) float64 {
	return math.Round(score*100) / 100
}

func medianTime(history []Observation) float64 {
	times := make([]float64, len(history))
	for i, obs := range history {
		times[i] = obs.TimeTakenSecs
	}
	sort.Float64s(times)

	n := len(times)
	if n%2 == 1 {
		return times[n/2]
	}
	return (times[n/2-1] + times[n/2]) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
