package spacedrep

import "math"

const (
	// InitialIntervalDays is the interval of the very first schedule for
	// a (document, learner) pair.
	InitialIntervalDays = 1

	// MaxIntervalDays caps interval growth.
	MaxIntervalDays = 90
)

// Policy holds the spaced-repetition tuning constants. The reference
// values follow the multiplicative ease rule; all of them are product
// configuration, not fixed law.
type Policy struct {
	// StrongThreshold and above doubles the interval.
	StrongThreshold float64
	// PartialThreshold and above (below strong) grows it gently.
	PartialThreshold float64

	StrongMultiplier  float64
	PartialMultiplier float64
	WeakMultiplier    float64

	InitialDays int
	MaxDays     int
}

// DefaultPolicy returns the reference policy.
func DefaultPolicy() Policy {
	return Policy{
		StrongThreshold:   0.8,
		PartialThreshold:  0.5,
		StrongMultiplier:  2.0,
		PartialMultiplier: 1.3,
		WeakMultiplier:    0.5,
		InitialDays:       InitialIntervalDays,
		MaxDays:           MaxIntervalDays,
	}
}

// NextInterval maps the previous interval and the session's performance
// factor (fraction of correctly answered questions, 0 when nothing was
// answered) to the new interval in days:
//
//	pf ≥ strong:   ceil(prev × strong multiplier), capped
//	pf ≥ partial:  ceil(prev × partial multiplier), capped
//	pf < partial:  floor(prev × weak multiplier), never below 1
func (p Policy) NextInterval(prevDays int, performance float64) int {
	if prevDays < 1 {
		prevDays = 1
	}

	var next int
	switch {
	case performance >= p.StrongThreshold:
		next = int(math.Ceil(float64(prevDays) * p.StrongMultiplier))
	case performance >= p.PartialThreshold:
		next = int(math.Ceil(float64(prevDays) * p.PartialMultiplier))
	default:
		next = int(math.Floor(float64(prevDays) * p.WeakMultiplier))
	}

	if next > p.MaxDays {
		next = p.MaxDays
	}
	if next < 1 {
		next = 1
	}
	return next
}
