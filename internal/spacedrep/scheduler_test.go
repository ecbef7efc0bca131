package spacedrep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memora-labs/memora/internal/store"
)

// fakeSchedules is an in-memory ScheduleRepo with version checking, plus
// a switch to force conflicts for retry tests.
type fakeSchedules struct {
	schedules      map[string]store.Schedule
	conflictsLeft  int
	getErr, putErr error
}

func newFakeSchedules() *fakeSchedules {
	return &fakeSchedules{schedules: make(map[string]store.Schedule)}
}

func key(documentID, learnerID string) string { return documentID + "/" + learnerID }

func (f *fakeSchedules) Get(_ context.Context, documentID, learnerID string) (*store.Schedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	sc, ok := f.schedules[key(documentID, learnerID)]
	if !ok {
		return nil, nil
	}
	cp := sc
	return &cp, nil
}

func (f *fakeSchedules) Create(_ context.Context, sc store.Schedule) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.schedules[key(sc.DocumentID, sc.LearnerID)] = sc
	return nil
}

func (f *fakeSchedules) Update(_ context.Context, sc store.Schedule) error {
	if f.putErr != nil {
		return f.putErr
	}
	k := key(sc.DocumentID, sc.LearnerID)
	current := f.schedules[k]
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		// Simulate another writer sneaking in.
		current.Version++
		f.schedules[k] = current
		return store.ErrVersionConflict
	}
	if current.Version != sc.Version {
		return store.ErrVersionConflict
	}
	sc.Version++
	f.schedules[k] = sc
	return nil
}

func (f *fakeSchedules) DueBefore(_ context.Context, t time.Time) ([]store.Schedule, error) {
	var out []store.Schedule
	for _, sc := range f.schedules {
		if !sc.NextReviewDate.After(t) {
			out = append(out, sc)
		}
	}
	return out, nil
}

func repos(f *fakeSchedules) *store.Repos {
	return &store.Repos{Schedules: f}
}

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestUpdateSchedule_FirstSessionStartsAtOneDay(t *testing.T) {
	f := newFakeSchedules()
	sched := NewScheduler(DefaultPolicy())

	sc, err := sched.UpdateSchedule(context.Background(), repos(f), "doc-1", "l1", 0.6, testNow)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if sc.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 for first schedule", sc.IntervalDays)
	}
	if !sc.NextReviewDate.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want now+1d", sc.NextReviewDate)
	}
}

func TestUpdateSchedule_DateAlwaysNowPlusInterval(t *testing.T) {
	f := newFakeSchedules()
	sched := NewScheduler(DefaultPolicy())
	ctx := context.Background()

	if _, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, testNow); err != nil {
		t.Fatalf("first: %v", err)
	}
	later := testNow.AddDate(0, 0, 3)
	sc, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, later)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if sc.IntervalDays != 2 {
		t.Errorf("interval = %d, want 2", sc.IntervalDays)
	}
	if !sc.NextReviewDate.Equal(later.AddDate(0, 0, sc.IntervalDays)) {
		t.Errorf("next review = %v, want update time + interval", sc.NextReviewDate)
	}
}

func TestUpdateSchedule_GrowsThenShrinks(t *testing.T) {
	f := newFakeSchedules()
	sched := NewScheduler(DefaultPolicy())
	ctx := context.Background()

	perf := []float64{0.9, 1.0, 1.0, 0.2}
	wantIntervals := []int{1, 2, 4, 2}
	for i, pf := range perf {
		sc, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", pf, testNow)
		if err != nil {
			t.Fatalf("session %d: %v", i+1, err)
		}
		if sc.IntervalDays != wantIntervals[i] {
			t.Errorf("session %d: interval = %d, want %d", i+1, sc.IntervalDays, wantIntervals[i])
		}
	}
}

func TestUpdateSchedule_RetriesOnVersionConflict(t *testing.T) {
	f := newFakeSchedules()
	ctx := context.Background()
	sched := NewScheduler(DefaultPolicy())

	if _, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, testNow); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f.conflictsLeft = 2
	sc, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, testNow)
	if err != nil {
		t.Fatalf("update with conflicts: %v", err)
	}
	if sc.IntervalDays != 2 {
		t.Errorf("interval = %d, want 2 after retried update", sc.IntervalDays)
	}
}

func TestUpdateSchedule_GivesUpAfterMaxRetries(t *testing.T) {
	f := newFakeSchedules()
	ctx := context.Background()
	sched := NewScheduler(DefaultPolicy())

	if _, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, testNow); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f.conflictsLeft = maxUpdateRetries + 1
	_, err := sched.UpdateSchedule(ctx, repos(f), "doc-1", "l1", 1.0, testNow)
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("err = %v, want wrapped ErrVersionConflict", err)
	}
}

func TestUpdateSchedule_StoreErrorPropagates(t *testing.T) {
	f := newFakeSchedules()
	f.getErr = errors.New("store down")
	sched := NewScheduler(DefaultPolicy())

	_, err := sched.UpdateSchedule(context.Background(), repos(f), "doc-1", "l1", 0.5, testNow)
	if !errors.Is(err, f.getErr) {
		t.Fatalf("err = %v, want store error", err)
	}
}
