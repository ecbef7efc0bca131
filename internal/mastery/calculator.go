package mastery

import (
	"context"

	"github.com/memora-labs/memora/internal/store"
)

// Calculator recomputes mastery projections from the attempt log. It is
// stateless: repositories are passed per call so the submission pipeline
// can hand it transaction-bound ones.
type Calculator struct {
	params Params
}

// NewCalculator creates a calculator with the given parameters.
func NewCalculator(p Params) *Calculator {
	return &Calculator{params: p}
}

// Params returns the calculator's parameter set.
func (c *Calculator) Params() Params {
	return c.params
}

// ComputeItemMastery recomputes and persists the mastery score for one
// (item, learner) pair from its full attempt history. Returns the new
// score.
func (c *Calculator) ComputeItemMastery(ctx context.Context, r *store.Repos, itemID, learnerID, documentID string) (float64, error) {
	attempts, err := r.Attempts.ListByItem(ctx, itemID, learnerID)
	if err != nil {
		return 0, err
	}

	history := make([]Observation, len(attempts))
	for i, a := range attempts {
		history[i] = Observation{
			Correct:       a.Correct,
			TimeTakenSecs: a.TimeTakenSecs,
		}
	}

	score := Score(history, c.params)
	err = r.Mastery.PutItemScore(ctx, store.ItemScore{
		ItemID:     itemID,
		LearnerID:  learnerID,
		DocumentID: documentID,
		Score:      score,
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

// ComputeDocumentMastery recomputes and persists the aggregate score for
// one (document, learner) pair over the document's current item set.
// Always a full recompute; stored and derivable state never drift.
func (c *Calculator) ComputeDocumentMastery(ctx context.Context, r *store.Repos, documentID, learnerID string) (float64, error) {
	items, err := r.Catalog.ListByDocument(ctx, documentID, learnerID)
	if err != nil {
		return 0, err
	}

	scores, err := r.Mastery.ItemScores(ctx, documentID, learnerID)
	if err != nil {
		return 0, err
	}

	itemIDs := make([]string, len(items))
	for i, it := range items {
		itemIDs[i] = it.ItemID
	}

	score := DocumentScore(itemIDs, scores)
	err = r.Mastery.PutDocumentScore(ctx, store.DocumentScore{
		DocumentID: documentID,
		LearnerID:  learnerID,
		Score:      score,
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}
