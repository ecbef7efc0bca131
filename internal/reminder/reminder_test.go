package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memora-labs/memora/internal/store"
)

type fakeSchedules struct {
	due []store.Schedule
	err error

	gotBefore time.Time
}

func (f *fakeSchedules) Get(context.Context, string, string) (*store.Schedule, error) {
	return nil, nil
}

func (f *fakeSchedules) Create(context.Context, store.Schedule) error { return nil }
func (f *fakeSchedules) Update(context.Context, store.Schedule) error { return nil }

func (f *fakeSchedules) DueBefore(_ context.Context, t time.Time) ([]store.Schedule, error) {
	f.gotBefore = t
	return f.due, f.err
}

type fakeNotifier struct {
	calls [][]DueReview
	err   error
}

func (f *fakeNotifier) NotifyDue(_ context.Context, reviews []DueReview) error {
	f.calls = append(f.calls, reviews)
	return f.err
}

func TestRunOnce_NotifiesDuePairs(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	schedules := &fakeSchedules{due: []store.Schedule{
		{DocumentID: "doc-1", LearnerID: "l1", IntervalDays: 2, NextReviewDate: now.AddDate(0, 0, -1)},
		{DocumentID: "doc-2", LearnerID: "l2", IntervalDays: 1, NextReviewDate: now},
	}}
	notifier := &fakeNotifier{}

	svc := New(schedules, notifier, nil)
	svc.now = func() time.Time { return now }

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	if !schedules.gotBefore.Equal(now) {
		t.Errorf("scan cutoff = %v, want %v", schedules.gotBefore, now)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("notifier calls = %d, want 1", len(notifier.calls))
	}
	got := notifier.calls[0]
	if len(got) != 2 {
		t.Fatalf("due reviews = %d, want 2", len(got))
	}
	if got[0].DocumentID != "doc-1" || got[0].IntervalDays != 2 {
		t.Errorf("unexpected first review: %+v", got[0])
	}
}

func TestRunOnce_NothingDueSkipsNotifier(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := New(&fakeSchedules{}, notifier, nil)

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notifier called %d times for an empty scan", len(notifier.calls))
	}
}

func TestRunOnce_PropagatesErrors(t *testing.T) {
	scanErr := errors.New("store down")
	svc := New(&fakeSchedules{err: scanErr}, &fakeNotifier{}, nil)
	if err := svc.RunOnce(context.Background()); !errors.Is(err, scanErr) {
		t.Errorf("scan error = %v, want %v", err, scanErr)
	}

	notifyErr := errors.New("channel closed")
	svc = New(&fakeSchedules{due: []store.Schedule{{DocumentID: "d", LearnerID: "l"}}},
		&fakeNotifier{err: notifyErr}, nil)
	if err := svc.RunOnce(context.Background()); !errors.Is(err, notifyErr) {
		t.Errorf("notify error = %v, want %v", err, notifyErr)
	}
}

func TestStartStop(t *testing.T) {
	svc := New(&fakeSchedules{}, &fakeNotifier{}, nil)
	if err := svc.Start(time.Minute); err != nil {
		t.Fatalf("Start: %v", err)
	}
	svc.Stop()
}
