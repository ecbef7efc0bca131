package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// The pragmas travel in the DSN, so every pooled connection must
	// carry them, not just the first.
	conn1, err := s.DB().Conn(ctx)
	if err != nil {
		t.Fatalf("conn1: %v", err)
	}
	defer conn1.Close()
	conn2, err := s.DB().Conn(ctx)
	if err != nil {
		t.Fatalf("conn2: %v", err)
	}
	defer conn2.Close()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for i, conn := range []*sql.Conn{conn1, conn2} {
		for _, tt := range tests {
			var got string
			err := conn.QueryRowContext(ctx, "PRAGMA "+tt.pragma).Scan(&got)
			if err != nil {
				t.Errorf("conn %d PRAGMA %s: %v", i, tt.pragma, err)
				continue
			}
			if got != tt.want {
				t.Errorf("conn %d PRAGMA %s = %q, want %q", i, tt.pragma, got, tt.want)
			}
		}
	}
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := r.Attempts.Append(ctx, Attempt{
			ItemID:        "item-1",
			LearnerID:     "learner-1",
			DocumentID:    "doc-1",
			SessionID:     "sess-1",
			Correct:       i%2 == 0,
			TimeTakenSecs: float64(i + 1),
			OccurredAt:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// An attempt for another item must not leak into the listing.
	err := r.Attempts.Append(ctx, Attempt{
		ItemID: "item-2", LearnerID: "learner-1", DocumentID: "doc-1",
		SessionID: "sess-1", Correct: true, TimeTakenSecs: 2,
		OccurredAt: base,
	})
	if err != nil {
		t.Fatalf("append other item: %v", err)
	}

	attempts, err := r.Attempts.ListByItem(ctx, "item-1", "learner-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(attempts))
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i].OccurredAt.Before(attempts[i-1].OccurredAt) {
			t.Errorf("attempts out of order at %d", i)
		}
	}
	if attempts[0].TimeTakenSecs != 1 {
		t.Errorf("oldest attempt time = %v, want 1", attempts[0].TimeTakenSecs)
	}
}

func TestCatalogPutListRetire(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	items := []Item{
		{ItemID: "i1", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"osmosis"}},
		{ItemID: "i2", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"diffusion"}},
	}
	for _, it := range items {
		if err := r.Catalog.Put(ctx, it); err != nil {
			t.Fatalf("put %s: %v", it.ItemID, err)
		}
	}

	got, err := r.Catalog.ListByDocument(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}

	if err := r.Catalog.Retire(ctx, "i1", "l1"); err != nil {
		t.Fatalf("retire: %v", err)
	}
	got, err = r.Catalog.ListByDocument(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("list after retire: %v", err)
	}
	if len(got) != 1 || got[0].ItemID != "i2" {
		t.Fatalf("retired item still listed: %+v", got)
	}

	// Put is an upsert.
	if err := r.Catalog.Put(ctx, Item{ItemID: "i2", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"transport"}}); err != nil {
		t.Fatalf("re-put: %v", err)
	}
	got, _ = r.Catalog.ListByDocument(ctx, "doc-1", "l1")
	if len(got) != 1 || len(got[0].Keywords) != 1 || got[0].Keywords[0] != "transport" {
		t.Fatalf("upsert did not replace keywords: %+v", got)
	}
}

func TestMasteryScoresRoundTrip(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	err := r.Mastery.PutItemScore(ctx, ItemScore{ItemID: "i1", LearnerID: "l1", DocumentID: "doc-1", Score: 0.75})
	if err != nil {
		t.Fatalf("put item score: %v", err)
	}
	// Recompute overwrites, never accumulates.
	err = r.Mastery.PutItemScore(ctx, ItemScore{ItemID: "i1", LearnerID: "l1", DocumentID: "doc-1", Score: 0.5})
	if err != nil {
		t.Fatalf("re-put item score: %v", err)
	}

	scores, err := r.Mastery.ItemScores(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("item scores: %v", err)
	}
	if scores["i1"] != 0.5 {
		t.Errorf("score = %v, want 0.5", scores["i1"])
	}

	_, ok, err := r.Mastery.DocumentScore(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("document score: %v", err)
	}
	if ok {
		t.Error("expected no document score yet")
	}

	if err := r.Mastery.PutDocumentScore(ctx, DocumentScore{DocumentID: "doc-1", LearnerID: "l1", Score: 0.62}); err != nil {
		t.Fatalf("put document score: %v", err)
	}
	got, ok, err := r.Mastery.DocumentScore(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("document score: %v", err)
	}
	if !ok || got != 0.62 {
		t.Errorf("document score = %v ok=%v, want 0.62 true", got, ok)
	}
}

func TestScheduleVersionConflict(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	err := r.Schedules.Create(ctx, Schedule{
		DocumentID: "doc-1", LearnerID: "l1",
		IntervalDays: 1, NextReviewDate: now.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sc, err := r.Schedules.Get(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sc == nil || sc.Version != 0 {
		t.Fatalf("schedule = %+v, want version 0", sc)
	}

	sc.IntervalDays = 2
	sc.NextReviewDate = now.AddDate(0, 0, 2)
	if err := r.Schedules.Update(ctx, *sc); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Re-applying with the stale version must conflict.
	err = r.Schedules.Update(ctx, *sc)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}

	fresh, _ := r.Schedules.Get(ctx, "doc-1", "l1")
	if fresh.Version != 1 || fresh.IntervalDays != 2 {
		t.Errorf("schedule = %+v, want version 1, interval 2", fresh)
	}
}

func TestScheduleGetMissing(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()

	sc, err := r.Schedules.Get(context.Background(), "nope", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sc != nil {
		t.Fatalf("expected nil schedule, got %+v", sc)
	}
}

func TestDueBefore(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	pairs := []struct {
		doc  string
		next time.Time
	}{
		{"doc-due", now.AddDate(0, 0, -1)},
		{"doc-today", now},
		{"doc-later", now.AddDate(0, 0, 5)},
	}
	for _, p := range pairs {
		err := r.Schedules.Create(ctx, Schedule{
			DocumentID: p.doc, LearnerID: "l1",
			IntervalDays: 1, NextReviewDate: p.next,
		})
		if err != nil {
			t.Fatalf("create %s: %v", p.doc, err)
		}
	}

	due, err := r.Schedules.DueBefore(ctx, now)
	if err != nil {
		t.Fatalf("due before: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due, want 2", len(due))
	}
	if due[0].DocumentID != "doc-due" {
		t.Errorf("first due = %s, want doc-due (most overdue first)", due[0].DocumentID)
	}
}

func TestCounterIncrement(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	n, err := r.Counters.Get(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh counter = %d, want 0", n)
	}

	for want := 1; want <= 4; want++ {
		got, err := r.Counters.Increment(ctx, "doc-1", "l1")
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if got != want {
			t.Errorf("increment = %d, want %d", got, want)
		}
	}

	// A different pair keeps its own count.
	got, err := r.Counters.Increment(ctx, "doc-2", "l1")
	if err != nil {
		t.Fatalf("increment other pair: %v", err)
	}
	if got != 1 {
		t.Errorf("other pair counter = %d, want 1", got)
	}
}

func TestInTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.InTx(ctx, func(r *Repos) error {
		if err := r.Mastery.PutDocumentScore(ctx, DocumentScore{DocumentID: "doc-1", LearnerID: "l1", Score: 0.9}); err != nil {
			return err
		}
		if _, err := r.Counters.Increment(ctx, "doc-1", "l1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	r := s.Repos()
	if _, ok, _ := r.Mastery.DocumentScore(ctx, "doc-1", "l1"); ok {
		t.Error("document score survived rollback")
	}
	if n, _ := r.Counters.Get(ctx, "doc-1", "l1"); n != 0 {
		t.Errorf("counter = %d after rollback, want 0", n)
	}
}

func TestAuditEvents(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	err := r.Events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1", LearnerID: "l1", DocumentID: "doc-1",
		QuestionsAnswered: 5, CorrectCount: 3, Score: 0.6,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = r.Events.AppendRegenEvent(ctx, RegenEventData{
		LearnerID: "l1", DocumentID: "doc-1",
		WeakTopics: []string{"osmosis"}, Success: false, ErrorMessage: "generator offline",
	})
	if err != nil {
		t.Fatalf("append regen event: %v", err)
	}

	sessions, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	if len(sessions) != 1 || sessions[0].CorrectCount != 3 {
		t.Fatalf("session events = %+v", sessions)
	}

	regens, err := s.Client().RegenEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query regen events: %v", err)
	}
	if len(regens) != 1 || regens[0].Success {
		t.Fatalf("regen events = %+v", regens)
	}
	if regens[0].Sequence == sessions[0].Sequence {
		t.Error("events share a sequence number")
	}
}

func TestInTxAssignsSequences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Sequence allocation must ride the transaction's own connection;
	// an append inside InTx that waited on the pool would never finish
	// while the transaction holds the write lock.
	err := s.InTx(ctx, func(r *Repos) error {
		for i := 0; i < 2; i++ {
			err := r.Attempts.Append(ctx, Attempt{
				ItemID: "i1", LearnerID: "l1", DocumentID: "doc-1",
				SessionID: "sess-1", Correct: true, TimeTakenSecs: 3,
			})
			if err != nil {
				return err
			}
		}
		return r.Events.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "sess-1", LearnerID: "l1", DocumentID: "doc-1",
			QuestionsAnswered: 2, CorrectCount: 2, Score: 1,
		})
	})
	if err != nil {
		t.Fatalf("in tx: %v", err)
	}

	attempts, err := s.Repos().Attempts.ListByItem(ctx, "i1", "l1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].Sequence == attempts[1].Sequence {
		t.Error("attempts share a sequence number")
	}

	sessions, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d session events, want 1", len(sessions))
	}
	for _, a := range attempts {
		if a.Sequence == sessions[0].Sequence {
			t.Error("attempt and session event share a sequence number")
		}
	}
}

func TestCounterIncrementConcurrentTransactions(t *testing.T) {
	const writers = 20

	s := openTestStore(t)
	ctx := context.Background()

	// Increments race without any in-process lock; the SQL-level add
	// plus per-transaction read-back must still hand out each count
	// exactly once.
	counts := make(chan int, writers)
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.InTx(ctx, func(r *Repos) error {
				n, err := r.Counters.Increment(ctx, "doc-1", "l1")
				if err != nil {
					return err
				}
				counts <- n
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	close(counts)
	for err := range errs {
		if err != nil {
			t.Fatalf("increment tx: %v", err)
		}
	}

	var got []int
	for n := range counts {
		got = append(got, n)
	}
	sort.Ints(got)
	for i, n := range got {
		if n != i+1 {
			t.Fatalf("counts = %v, want 1..%d exactly once each", got, writers)
		}
	}

	final, err := s.Repos().Counters.Get(ctx, "doc-1", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if final != writers {
		t.Errorf("final count = %d, want %d", final, writers)
	}
}
