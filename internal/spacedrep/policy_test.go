package spacedrep

import "testing"

func TestNextInterval_Tiers(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name        string
		prev        int
		performance float64
		want        int
	}{
		{"strong doubles", 10, 0.9, 20},
		{"strong at threshold", 10, 0.8, 20},
		{"strong rounds up", 3, 1.0, 6},
		{"partial grows", 10, 0.6, 13},
		{"partial at threshold", 10, 0.5, 13},
		{"partial rounds up", 3, 0.7, 4}, // ceil(3.9)
		{"weak halves", 10, 0.4, 5},
		{"weak floors", 5, 0.2, 2}, // floor(2.5)
		{"weak never below one", 1, 0.0, 1},
		{"strong capped", 80, 1.0, MaxIntervalDays},
		{"cap exact", 45, 0.95, 90},
		{"zero prev treated as one", 0, 1.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.NextInterval(tt.prev, tt.performance); got != tt.want {
				t.Errorf("NextInterval(%d, %v) = %d, want %d", tt.prev, tt.performance, got, tt.want)
			}
		})
	}
}

func TestNextInterval_PerfectRecallAlwaysGrowsOrCaps(t *testing.T) {
	p := DefaultPolicy()
	for prev := 1; prev <= 200; prev++ {
		next := p.NextInterval(prev, 1.0)
		if prev < p.MaxDays && next <= prev {
			t.Fatalf("prev %d: next %d did not grow", prev, next)
		}
		if next > p.MaxDays {
			t.Fatalf("prev %d: next %d exceeds cap", prev, next)
		}
	}
}

func TestNextInterval_TotalBlackoutShrinksToFloor(t *testing.T) {
	p := DefaultPolicy()
	for prev := 2; prev <= 200; prev++ {
		next := p.NextInterval(prev, 0.0)
		if next >= prev {
			t.Fatalf("prev %d: next %d did not shrink", prev, next)
		}
		if next < 1 {
			t.Fatalf("prev %d: next %d below floor", prev, next)
		}
	}

	// Repeated failure converges to the one-day floor.
	days := 90
	for i := 0; i < 10; i++ {
		days = p.NextInterval(days, 0.0)
	}
	if days != 1 {
		t.Errorf("after repeated failures interval = %d, want 1", days)
	}
}
