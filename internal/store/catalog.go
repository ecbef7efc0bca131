package store

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
	"github.com/memora-labs/memora/ent/quizitem"
)

type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) Put(ctx context.Context, it Item) error {
	existing, err := r.client.QuizItem.Query().
		Where(
			quizitem.ItemID(it.ItemID),
			quizitem.LearnerID(it.LearnerID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query quiz item: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetDocumentID(it.DocumentID).
			SetKeywords(it.Keywords).
			SetRetired(it.Retired).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update quiz item: %w", err)
		}
		return nil
	}

	_, err = r.client.QuizItem.Create().
		SetItemID(it.ItemID).
		SetDocumentID(it.DocumentID).
		SetLearnerID(it.LearnerID).
		SetKeywords(it.Keywords).
		SetRetired(it.Retired).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create quiz item: %w", err)
	}
	return nil
}

func (r *catalogRepo) ListByDocument(ctx context.Context, documentID, learnerID string) ([]Item, error) {
	rows, err := r.client.QuizItem.Query().
		Where(
			quizitem.DocumentID(documentID),
			quizitem.LearnerID(learnerID),
			quizitem.Retired(false),
		).
		Order(ent.Asc(quizitem.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query document items: %w", err)
	}

	items := make([]Item, len(rows))
	for i, q := range rows {
		items[i] = Item{
			ItemID:     q.ItemID,
			DocumentID: q.DocumentID,
			LearnerID:  q.LearnerID,
			Keywords:   q.Keywords,
			Retired:    q.Retired,
		}
	}
	return items, nil
}

func (r *catalogRepo) Retire(ctx context.Context, itemID, learnerID string) error {
	n, err := r.client.QuizItem.Update().
		Where(
			quizitem.ItemID(itemID),
			quizitem.LearnerID(learnerID),
		).
		SetRetired(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("retire quiz item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("retire quiz item: %s not found", itemID)
	}
	return nil
}
