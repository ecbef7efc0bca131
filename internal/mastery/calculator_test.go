package mastery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memora-labs/memora/internal/store"
)

type fakeAttempts struct {
	attempts map[string][]store.Attempt // key: itemID
	err      error
}

func (f *fakeAttempts) Append(_ context.Context, a store.Attempt) error {
	if f.attempts == nil {
		f.attempts = make(map[string][]store.Attempt)
	}
	f.attempts[a.ItemID] = append(f.attempts[a.ItemID], a)
	return nil
}

func (f *fakeAttempts) ListByItem(_ context.Context, itemID, _ string) ([]store.Attempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.attempts[itemID], nil
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
	for i, it := range f.items {
		if it.ItemID == itemID && it.LearnerID == learnerID {
			f.items[i].Retired = true
		}
	}
	return nil
}

type fakeMastery struct {
	itemScores map[string]store.ItemScore
	docScores  map[string]store.DocumentScore
}

func newFakeMastery() *fakeMastery {
	return &fakeMastery{
		itemScores: make(map[string]store.ItemScore),
		docScores:  make(map[string]store.DocumentScore),
	}
}

func (f *fakeMastery) PutItemScore(_ context.Context, sc store.ItemScore) error {
	f.itemScores[sc.ItemID] = sc
	return nil
}

func (f *fakeMastery) PutDocumentScore(_ context.Context, sc store.DocumentScore) error {
	f.docScores[sc.DocumentID] = sc
	return nil
}

func (f *fakeMastery) ItemScores(_ context.Context, documentID, _ string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, sc := range f.itemScores {
		if sc.DocumentID == documentID {
			out[sc.ItemID] = sc.Score
		}
	}
	return out, nil
}

func (f *fakeMastery) DocumentScore(_ context.Context, documentID, _ string) (float64, bool, error) {
	sc, ok := f.docScores[documentID]
	return sc.Score, ok, nil
}

func testRepos(fa *fakeAttempts, fc *fakeCatalog, fm *fakeMastery) *store.Repos {
	return &store.Repos{Attempts: fa, Catalog: fc, Mastery: fm}
}

func seedAttempt(fa *fakeAttempts, itemID string, correct bool, secs float64) {
	_ = fa.Append(context.Background(), store.Attempt{
		ItemID: itemID, LearnerID: "l1", DocumentID: "doc-1",
		Correct: correct, TimeTakenSecs: secs, OccurredAt: time.Now(),
	})
}

func TestComputeItemMastery_NoAttempts(t *testing.T) {
	fa := &fakeAttempts{}
	fm := newFakeMastery()
	calc := NewCalculator(DefaultParams())

	score, err := calc.ComputeItemMastery(context.Background(), testRepos(fa, &fakeCatalog{}, fm), "i1", "l1", "doc-1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if score != 0.0 {
		t.Errorf("score = %v, want 0", score)
	}
	if persisted, ok := fm.itemScores["i1"]; !ok || persisted.Score != 0.0 {
		t.Errorf("persisted = %+v, want score 0 stored", persisted)
	}
}

func TestComputeItemMastery_PersistsRecomputedScore(t *testing.T) {
	fa := &fakeAttempts{}
	seedAttempt(fa, "i1", false, 5)
	seedAttempt(fa, "i1", true, 5)
	fm := newFakeMastery()
	calc := NewCalculator(DefaultParams())

	score, err := calc.ComputeItemMastery(context.Background(), testRepos(fa, &fakeCatalog{}, fm), "i1", "l1", "doc-1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if score <= 0.5 || score >= 1.0 {
		t.Errorf("score = %v, want in (0.5, 1.0) for wrong-then-correct", score)
	}
	if fm.itemScores["i1"].Score != score {
		t.Errorf("persisted %v, returned %v", fm.itemScores["i1"].Score, score)
	}
	if fm.itemScores["i1"].DocumentID != "doc-1" {
		t.Errorf("documentID = %q, want doc-1", fm.itemScores["i1"].DocumentID)
	}
}

func TestComputeItemMastery_StoreErrorPropagates(t *testing.T) {
	storeDown := errors.New("store down")
	fa := &fakeAttempts{err: storeDown}
	calc := NewCalculator(DefaultParams())

	_, err := calc.ComputeItemMastery(context.Background(), testRepos(fa, &fakeCatalog{}, newFakeMastery()), "i1", "l1", "doc-1")
	if !errors.Is(err, storeDown) {
		t.Fatalf("err = %v, want store error (never silently 0)", err)
	}
}

func TestComputeDocumentMastery_MeanOverItemSet(t *testing.T) {
	fc := &fakeCatalog{items: []store.Item{
		{ItemID: "i1", DocumentID: "doc-1", LearnerID: "l1"},
		{ItemID: "i2", DocumentID: "doc-1", LearnerID: "l1"},
		{ItemID: "i3", DocumentID: "doc-1", LearnerID: "l1"},
	}}
	fm := newFakeMastery()
	fm.itemScores["i1"] = store.ItemScore{ItemID: "i1", DocumentID: "doc-1", Score: 0.9}
	fm.itemScores["i2"] = store.ItemScore{ItemID: "i2", DocumentID: "doc-1", Score: 0.6}
	// i3 never attempted.
	calc := NewCalculator(DefaultParams())

	score, err := calc.ComputeDocumentMastery(context.Background(), testRepos(&fakeAttempts{}, fc, fm), "doc-1", "l1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if score != 0.5 {
		t.Errorf("score = %v, want 0.5 ((0.9+0.6+0)/3)", score)
	}
	if fm.docScores["doc-1"].Score != 0.5 {
		t.Errorf("persisted = %v, want 0.5", fm.docScores["doc-1"].Score)
	}
}

func TestComputeDocumentMastery_RetiredItemsExcluded(t *testing.T) {
	fc := &fakeCatalog{items: []store.Item{
		{ItemID: "i1", DocumentID: "doc-1", LearnerID: "l1"},
		{ItemID: "i2", DocumentID: "doc-1", LearnerID: "l1", Retired: true},
	}}
	fm := newFakeMastery()
	fm.itemScores["i1"] = store.ItemScore{ItemID: "i1", DocumentID: "doc-1", Score: 0.8}
	fm.itemScores["i2"] = store.ItemScore{ItemID: "i2", DocumentID: "doc-1", Score: 0.0}
	calc := NewCalculator(DefaultParams())

	score, err := calc.ComputeDocumentMastery(context.Background(), testRepos(&fakeAttempts{}, fc, fm), "doc-1", "l1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if score != 0.8 {
		t.Errorf("score = %v, want 0.8 (retired item out of the aggregate)", score)
	}
}

func TestComputeDocumentMastery_EmptyDocument(t *testing.T) {
	calc := NewCalculator(DefaultParams())
	score, err := calc.ComputeDocumentMastery(context.Background(), testRepos(&fakeAttempts{}, &fakeCatalog{}, newFakeMastery()), "doc-x", "l1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if score != 0.0 {
		t.Errorf("score = %v, want 0 for a document with no items", score)
	}
}
