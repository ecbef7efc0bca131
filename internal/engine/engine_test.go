package engine

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-labs/memora/internal/adaptive"
	"github.com/memora-labs/memora/internal/store"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, regen adaptive.Regenerator) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open("sqlite", filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	e := New(st, regen, nil, DefaultConfig())
	t.Cleanup(e.Close)
	return e, st
}

func seedItems(t *testing.T, st *store.Store, documentID, learnerID string, keywords map[string][]string) {
	t.Helper()
	ctx := context.Background()
	for itemID, kws := range keywords {
		err := st.Repos().Catalog.Put(ctx, store.Item{
			ItemID:     itemID,
			DocumentID: documentID,
			LearnerID:  learnerID,
			Keywords:   kws,
		})
		require.NoError(t, err)
	}
}

type captureRegen struct {
	mu   sync.Mutex
	got  []adaptive.RegenRequest
	fail error
}

func (c *captureRegen) Regenerate(_ context.Context, req adaptive.RegenRequest) error {
	c.mu.Lock()
	c.got = append(c.got, req)
	c.mu.Unlock()
	return c.fail
}

func (c *captureRegen) requests() []adaptive.RegenRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]adaptive.RegenRequest(nil), c.got...)
}

func submit(e *Engine, documentID, learnerID string, at time.Time, answers ...Answer) (*Result, error) {
	return e.ProcessSubmission(context.Background(), Submission{
		LearnerID:   learnerID,
		DocumentID:  documentID,
		Answers:     answers,
		CompletedAt: at,
	})
}

func TestProcessSubmission_FirstSession(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{
		"i1": {"osmosis"}, "i2": {"osmosis"}, "i3": {"diffusion"},
		"i4": {"membranes"}, "i5": {"membranes"},
	})

	res, err := submit(e, "doc-1", "l1", testNow,
		Answer{ItemID: "i1", Correct: true, TimeTakenSecs: 5},
		Answer{ItemID: "i2", Correct: true, TimeTakenSecs: 6},
		Answer{ItemID: "i3", Correct: true, TimeTakenSecs: 4},
		Answer{ItemID: "i4", Correct: false, TimeTakenSecs: 9},
		Answer{ItemID: "i5", Correct: false, TimeTakenSecs: 11},
	)
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, 5, res.QuestionsAnswered)
	assert.Equal(t, 3, res.CorrectCount)
	assert.InDelta(t, 0.6, res.SessionScore, 1e-9)

	assert.InDelta(t, 1.0, res.ItemScores["i1"], 1e-9)
	assert.InDelta(t, 0.0, res.ItemScores["i4"], 1e-9)
	assert.InDelta(t, 0.6, res.DocumentScore, 1e-9)

	assert.Equal(t, 1, res.Schedule.IntervalDays, "first session always schedules one day out")
	assert.Equal(t, testNow.Add(24*time.Hour), res.Schedule.NextReviewDate)

	assert.Equal(t, 1, res.Regeneration.SessionCount)
	assert.False(t, res.Regeneration.Due)
}

func TestProcessSubmission_ThirdSessionTriggersRegeneration(t *testing.T) {
	regen := &captureRegen{}
	e, st := newTestEngine(t, regen)
	seedItems(t, st, "doc-1", "l1", map[string][]string{
		"i1": {"osmosis"},
		"i2": {"diffusion", "membranes"},
	})

	at := testNow
	for i := 1; i <= 3; i++ {
		res, err := submit(e, "doc-1", "l1", at,
			Answer{ItemID: "i1", Correct: true, TimeTakenSecs: 5})
		require.NoError(t, err)
		assert.Equal(t, i, res.Regeneration.SessionCount)
		if i < 3 {
			assert.False(t, res.Regeneration.Due)
		} else {
			assert.True(t, res.Regeneration.Due)
			// i2 was never attempted, so its keywords target the batch.
			assert.Equal(t, []string{"diffusion", "membranes"}, res.Regeneration.WeakTopics)
		}
		at = at.Add(24 * time.Hour)
	}

	e.Close()
	got := regen.requests()
	require.Len(t, got, 1)
	assert.Equal(t, "doc-1", got[0].DocumentID)
	assert.Equal(t, []string{"diffusion", "membranes"}, got[0].WeakTopics)
}

func TestProcessSubmission_IntervalGrowsOnStrongPerformance(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil})

	want := []int{1, 2, 4}
	at := testNow
	for _, w := range want {
		res, err := submit(e, "doc-1", "l1", at,
			Answer{ItemID: "i1", Correct: true, TimeTakenSecs: 5})
		require.NoError(t, err)
		assert.Equal(t, w, res.Schedule.IntervalDays)
		assert.Equal(t, at.AddDate(0, 0, w), res.Schedule.NextReviewDate)
		at = at.AddDate(0, 0, w)
	}
}

func TestProcessSubmission_WeakPerformanceShrinksInterval(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil, "i2": nil})

	all := func(correct bool) []Answer {
		return []Answer{
			{ItemID: "i1", Correct: correct, TimeTakenSecs: 5},
			{ItemID: "i2", Correct: correct, TimeTakenSecs: 5},
		}
	}

	at := testNow
	for _, step := range []struct {
		correct bool
		want    int
	}{
		{true, 1},  // first session
		{true, 2},  // 1 * 2.0
		{true, 4},  // 2 * 2.0
		{false, 2}, // 4 * 0.5
	} {
		res, err := submit(e, "doc-1", "l1", at, all(step.correct)...)
		require.NoError(t, err)
		assert.Equal(t, step.want, res.Schedule.IntervalDays)
		at = at.Add(24 * time.Hour)
	}
}

func TestProcessSubmission_InvalidInputLeavesNoTrace(t *testing.T) {
	e, st := newTestEngine(t, nil)
	ctx := context.Background()

	cases := []Submission{
		{LearnerID: "", DocumentID: "doc-1", Answers: []Answer{{ItemID: "i1"}}},
		{LearnerID: "l1", DocumentID: "", Answers: []Answer{{ItemID: "i1"}}},
		{LearnerID: "l1", DocumentID: "doc-1"},
		{LearnerID: "l1", DocumentID: "doc-1", Answers: []Answer{{ItemID: ""}}},
		{LearnerID: "l1", DocumentID: "doc-1", Answers: []Answer{{ItemID: "i1", TimeTakenSecs: -1}}},
	}
	for _, sub := range cases {
		_, err := e.ProcessSubmission(ctx, sub)
		var invalid *ErrInvalidInput
		assert.ErrorAs(t, err, &invalid)
	}

	attempts, err := st.Repos().Attempts.ListByItem(ctx, "i1", "l1")
	require.NoError(t, err)
	assert.Empty(t, attempts, "rejected submissions must not persist anything")

	count, err := st.Repos().Counters.Get(ctx, "doc-1", "l1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProcessSubmission_RegenerationFailureDoesNotFailSubmission(t *testing.T) {
	regen := &captureRegen{fail: errors.New("generator offline")}
	e, st := newTestEngine(t, regen)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": {"osmosis"}})

	var last *Result
	for i := 0; i < 3; i++ {
		var err error
		last, err = submit(e, "doc-1", "l1", testNow,
			Answer{ItemID: "i1", Correct: false, TimeTakenSecs: 5})
		require.NoError(t, err)
	}
	assert.True(t, last.Regeneration.Due)

	e.Close()
	require.Len(t, regen.requests(), 1, "failed regeneration still ran exactly once")
}

func TestProcessSubmission_ClosedStore(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil})
	require.NoError(t, st.Close())

	_, err := e.ProcessSubmission(context.Background(), Submission{
		LearnerID:  "l1",
		DocumentID: "doc-1",
		Answers:    []Answer{{ItemID: "i1", Correct: true, TimeTakenSecs: 5}},
	})
	var dep *ErrDependencyUnavailable
	assert.ErrorAs(t, err, &dep, "an unreachable store is a dependency failure, not a generic error")
}

func TestProcessSubmission_CanceledContext(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ProcessSubmission(ctx, Submission{
		LearnerID:  "l1",
		DocumentID: "doc-1",
		Answers:    []Answer{{ItemID: "i1", Correct: true, TimeTakenSecs: 5}},
	})
	var dep *ErrDependencyUnavailable
	assert.ErrorAs(t, err, &dep)
}

func TestProcessSubmission_ConcurrentSamePairNoLostUpdates(t *testing.T) {
	const workers = 50

	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil})
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := submit(e, "doc-1", "l1", testNow,
				Answer{ItemID: "i1", Correct: true, TimeTakenSecs: 5})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := st.Repos().Counters.Get(ctx, "doc-1", "l1")
	require.NoError(t, err)
	assert.Equal(t, workers, count, "every session must be counted exactly once")

	attempts, err := st.Repos().Attempts.ListByItem(ctx, "i1", "l1")
	require.NoError(t, err)
	assert.Len(t, attempts, workers)

	sched, err := st.Repos().Schedules.Get(ctx, "doc-1", "l1")
	require.NoError(t, err)
	require.NotNil(t, sched)
	assert.Equal(t, int64(workers-1), sched.Version, "one create plus one versioned update per later session")

	score, found, err := st.Repos().Mastery.DocumentScore(ctx, "doc-1", "l1")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestProcessSubmission_PairsProgressIndependently(t *testing.T) {
	e, st := newTestEngine(t, nil)
	seedItems(t, st, "doc-1", "l1", map[string][]string{"i1": nil})
	seedItems(t, st, "doc-2", "l1", map[string][]string{"i2": nil})

	_, err := submit(e, "doc-1", "l1", testNow, Answer{ItemID: "i1", Correct: true, TimeTakenSecs: 5})
	require.NoError(t, err)
	res, err := submit(e, "doc-2", "l1", testNow, Answer{ItemID: "i2", Correct: false, TimeTakenSecs: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Regeneration.SessionCount, "counters are per pair")
	assert.Equal(t, 1, res.Schedule.IntervalDays)

	score, found, err := st.Repos().Mastery.DocumentScore(context.Background(), "doc-1", "l1")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 1.0, score, 1e-9, "doc-2 session must not touch doc-1 mastery")
}
