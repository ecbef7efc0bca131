package mastery

import (
	"math"
	"testing"
)

func obs(correct bool, secs float64) Observation {
	return Observation{Correct: correct, TimeTakenSecs: secs}
}

func TestScore_EmptyHistoryIsZero(t *testing.T) {
	if got := Score(nil, DefaultParams()); got != 0.0 {
		t.Errorf("Score(empty) = %v, want exactly 0", got)
	}
}

func TestScore_AllCorrectFast(t *testing.T) {
	history := []Observation{obs(true, 5), obs(true, 6), obs(true, 4)}
	if got := Score(history, DefaultParams()); got != 1.0 {
		t.Errorf("Score = %v, want 1.0", got)
	}
}

func TestScore_AllWrong(t *testing.T) {
	history := []Observation{obs(false, 5), obs(false, 6), obs(false, 4)}
	if got := Score(history, DefaultParams()); got != 0.0 {
		t.Errorf("Score = %v, want 0.0", got)
	}
}

func TestScore_RecentAttemptsDominate(t *testing.T) {
	p := DefaultParams()
	improving := Score([]Observation{obs(false, 5), obs(false, 5), obs(true, 5)}, p)
	declining := Score([]Observation{obs(true, 5), obs(false, 5), obs(false, 5)}, p)

	if improving <= declining {
		t.Errorf("improving (%v) should outscore declining (%v)", improving, declining)
	}
	if improving <= 0.5 {
		t.Errorf("improving = %v, want > 0.5 (latest attempt carries most weight)", improving)
	}
}

func TestScore_SingleAttempt(t *testing.T) {
	p := DefaultParams()
	if got := Score([]Observation{obs(true, 10)}, p); got != 1.0 {
		t.Errorf("single correct = %v, want 1.0", got)
	}
	if got := Score([]Observation{obs(false, 10)}, p); got != 0.0 {
		t.Errorf("single wrong = %v, want 0.0", got)
	}
}

func TestScore_SlowCorrectDownWeighted(t *testing.T) {
	p := DefaultParams()
	// Median of {5, 5, 5, 30} is 5; 30 > 2.0*5, so the last attempt is slow.
	slow := Score([]Observation{obs(true, 5), obs(true, 5), obs(true, 5), obs(true, 30)}, p)
	fast := Score([]Observation{obs(true, 5), obs(true, 5), obs(true, 5), obs(true, 5)}, p)

	if slow >= fast {
		t.Errorf("slow-correct (%v) should score below fast-correct (%v)", slow, fast)
	}
	if slow <= 0.5 {
		t.Errorf("slow-correct = %v, still mostly-correct history, want > 0.5", slow)
	}
}

func TestScore_SlowWrongNotDoublePenalized(t *testing.T) {
	p := DefaultParams()
	// A wrong answer contributes 0 regardless of speed.
	a := Score([]Observation{obs(true, 5), obs(false, 50)}, p)
	b := Score([]Observation{obs(true, 5), obs(false, 5)}, p)
	if a != b {
		t.Errorf("wrong-slow (%v) and wrong-fast (%v) should score identically", a, b)
	}
}

func TestScore_BoundedAndRounded(t *testing.T) {
	p := DefaultParams()
	histories := [][]Observation{
		{obs(true, 1)},
		{obs(true, 1), obs(false, 2), obs(true, 100), obs(false, 0)},
		{obs(false, 0), obs(false, 0), obs(true, 0)},
		{obs(true, 3), obs(true, 9), obs(false, 2), obs(true, 40), obs(true, 1), obs(false, 7)},
	}
	for i, h := range histories {
		got := Score(h, p)
		if got < 0 || got > 1 {
			t.Errorf("history %d: score %v out of [0,1]", i, got)
		}
		if math.Abs(got*100-math.Round(got*100)) > 1e-9 {
			t.Errorf("history %d: score %v not rounded to 2 decimals", i, got)
		}
	}
}

func TestDocumentScore_Mean(t *testing.T) {
	scores := map[string]float64{"a": 1.0, "b": 0.5, "c": 0.0}
	got := DocumentScore([]string{"a", "b", "c"}, scores)
	if got != 0.5 {
		t.Errorf("DocumentScore = %v, want 0.5", got)
	}
}

func TestDocumentScore_UnattemptedItemsDilute(t *testing.T) {
	scores := map[string]float64{"a": 1.0}
	got := DocumentScore([]string{"a", "b"}, scores) // b unattempted ⇒ 0
	if got != 0.5 {
		t.Errorf("DocumentScore = %v, want 0.5", got)
	}
}

func TestDocumentScore_NoItems(t *testing.T) {
	if got := DocumentScore(nil, nil); got != 0.0 {
		t.Errorf("DocumentScore(no items) = %v, want 0", got)
	}
}

func TestDocumentScore_Idempotent(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	scores := map[string]float64{"a": 0.33, "b": 0.67, "c": 1.0}
	first := DocumentScore(ids, scores)
	second := DocumentScore(ids, scores)
	if first != second {
		t.Errorf("recompute changed the value: %v then %v", first, second)
	}
}

func TestNeedsReview(t *testing.T) {
	p := DefaultParams()
	if !p.NeedsReview(0.79) {
		t.Error("0.79 should need review")
	}
	if p.NeedsReview(0.80) {
		t.Error("0.80 should not need review (threshold is exclusive)")
	}
}
