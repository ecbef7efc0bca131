package adaptive

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-labs/memora/internal/store"
)

type fakeCounters struct {
	counts map[string]int
	err    error
}

func (f *fakeCounters) Increment(_ context.Context, documentID, learnerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	k := documentID + "/" + learnerID
	f.counts[k]++
	return f.counts[k], nil
}

func (f *fakeCounters) Get(_ context.Context, documentID, learnerID string) (int, error) {
	return f.counts[documentID+"/"+learnerID], nil
}

type fakeCatalog struct {
	items []store.Item
}

func (f *fakeCatalog) Put(_ context.Context, it store.Item) error {
	f.items = append(f.items, it)
	return nil
}

func (f *fakeCatalog) ListByDocument(_ context.Context, documentID, learnerID string) ([]store.Item, error) {
	var out []store.Item
	for _, it := range f.items {
		if it.DocumentID == documentID && it.LearnerID == learnerID && !it.Retired {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Retire(_ context.Context, itemID, learnerID string) error {
	for i := range f.items {
		if f.items[i].ItemID == itemID && f.items[i].LearnerID == learnerID {
			f.items[i].Retired = true
		}
	}
	return nil
}

type fakeMastery struct {
	scores map[string]float64
}

func (f *fakeMastery) PutItemScore(_ context.Context, _ store.ItemScore) error     { return nil }
func (f *fakeMastery) PutDocumentScore(_ context.Context, _ store.DocumentScore) error { return nil }

func (f *fakeMastery) ItemScores(_ context.Context, _, _ string) (map[string]float64, error) {
	return f.scores, nil
}

func (f *fakeMastery) DocumentScore(_ context.Context, _, _ string) (float64, bool, error) {
	return 0, false, nil
}

func triggerRepos(fc *fakeCounters, cat *fakeCatalog, m *fakeMastery) *store.Repos {
	return &store.Repos{Counters: fc, Catalog: cat, Mastery: m}
}

func TestRecordCompletedSession_CountsAndPeriod(t *testing.T) {
	fc := &fakeCounters{}
	trig := NewTrigger(DefaultConfig())
	r := triggerRepos(fc, &fakeCatalog{}, &fakeMastery{})
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		d, err := trig.RecordCompletedSession(ctx, r, "doc-1", "l1")
		require.NoError(t, err)
		assert.Equal(t, i, d.SessionCount, "session %d", i)
		assert.Equal(t, i%3 == 0, d.Due, "session %d due", i)
	}
}

func TestRecordCompletedSession_WeakTopicsOnlyWhenDue(t *testing.T) {
	fc := &fakeCounters{}
	cat := &fakeCatalog{items: []store.Item{
		{ItemID: "i1", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"osmosis", "membranes"}},
		{ItemID: "i2", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"diffusion"}},
		{ItemID: "i3", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"osmosis"}},
	}}
	m := &fakeMastery{scores: map[string]float64{
		"i1": 0.95, // mastered, excluded from targeting
		"i2": 0.40,
		// i3 unattempted ⇒ 0 ⇒ weak
	}}
	trig := NewTrigger(DefaultConfig())
	r := triggerRepos(fc, cat, m)
	ctx := context.Background()

	d1, err := trig.RecordCompletedSession(ctx, r, "doc-1", "l1")
	require.NoError(t, err)
	assert.False(t, d1.Due)
	assert.Nil(t, d1.WeakTopics, "no targeting work off-period")

	_, err = trig.RecordCompletedSession(ctx, r, "doc-1", "l1")
	require.NoError(t, err)

	d3, err := trig.RecordCompletedSession(ctx, r, "doc-1", "l1")
	require.NoError(t, err)
	assert.True(t, d3.Due)
	assert.Equal(t, []string{"diffusion", "osmosis"}, d3.WeakTopics)
}

func TestRecordCompletedSession_PairsIndependent(t *testing.T) {
	fc := &fakeCounters{}
	trig := NewTrigger(DefaultConfig())
	r := triggerRepos(fc, &fakeCatalog{}, &fakeMastery{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := trig.RecordCompletedSession(ctx, r, "doc-1", "l1")
		require.NoError(t, err)
	}
	d, err := trig.RecordCompletedSession(ctx, r, "doc-2", "l1")
	require.NoError(t, err)
	assert.Equal(t, 1, d.SessionCount, "doc-2 has its own counter")
	assert.False(t, d.Due)
}

func TestRecordCompletedSession_AllMasteredMeansNoTopics(t *testing.T) {
	fc := &fakeCounters{counts: map[string]int{"doc-1/l1": 2}}
	cat := &fakeCatalog{items: []store.Item{
		{ItemID: "i1", DocumentID: "doc-1", LearnerID: "l1", Keywords: []string{"osmosis"}},
	}}
	m := &fakeMastery{scores: map[string]float64{"i1": 0.9}}
	trig := NewTrigger(DefaultConfig())

	d, err := trig.RecordCompletedSession(context.Background(), triggerRepos(fc, cat, m), "doc-1", "l1")
	require.NoError(t, err)
	assert.True(t, d.Due)
	assert.Empty(t, d.WeakTopics)
}

func TestRecordCompletedSession_CounterErrorPropagates(t *testing.T) {
	down := errors.New("store down")
	fc := &fakeCounters{err: down}
	trig := NewTrigger(DefaultConfig())

	_, err := trig.RecordCompletedSession(context.Background(), triggerRepos(fc, &fakeCatalog{}, &fakeMastery{}), "doc-1", "l1")
	assert.ErrorIs(t, err, down)
}

func TestNewTrigger_DefaultsZeroPeriod(t *testing.T) {
	trig := NewTrigger(Config{Period: 0, WeakThreshold: 0.8})
	fc := &fakeCounters{counts: map[string]int{"doc-1/l1": 2}}

	d, err := trig.RecordCompletedSession(context.Background(), triggerRepos(fc, &fakeCatalog{}, &fakeMastery{}), "doc-1", "l1")
	require.NoError(t, err)
	assert.True(t, d.Due, "zero period falls back to the default of 3")
}
