package store

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
	"github.com/memora-labs/memora/ent/documentmastery"
	"github.com/memora-labs/memora/ent/itemmastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) PutItemScore(ctx context.Context, sc ItemScore) error {
	existing, err := r.client.ItemMastery.Query().
		Where(
			itemmastery.ItemID(sc.ItemID),
			itemmastery.LearnerID(sc.LearnerID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query item mastery: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetScore(sc.Score).
			SetDocumentID(sc.DocumentID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update item mastery: %w", err)
		}
		return nil
	}

	_, err = r.client.ItemMastery.Create().
		SetItemID(sc.ItemID).
		SetLearnerID(sc.LearnerID).
		SetDocumentID(sc.DocumentID).
		SetScore(sc.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create item mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) PutDocumentScore(ctx context.Context, sc DocumentScore) error {
	existing, err := r.client.DocumentMastery.Query().
		Where(
			documentmastery.DocumentID(sc.DocumentID),
			documentmastery.LearnerID(sc.LearnerID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query document mastery: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetScore(sc.Score).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update document mastery: %w", err)
		}
		return nil
	}

	_, err = r.client.DocumentMastery.Create().
		SetDocumentID(sc.DocumentID).
		SetLearnerID(sc.LearnerID).
		SetScore(sc.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create document mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) ItemScores(ctx context.Context, documentID, learnerID string) (map[string]float64, error) {
	rows, err := r.client.ItemMastery.Query().
		Where(
			itemmastery.DocumentID(documentID),
			itemmastery.LearnerID(learnerID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item scores: %w", err)
	}

	scores := make(map[string]float64, len(rows))
	for _, m := range rows {
		scores[m.ItemID] = m.Score
	}
	return scores, nil
}

func (r *masteryRepo) DocumentScore(ctx context.Context, documentID, learnerID string) (float64, bool, error) {
	m, err := r.client.DocumentMastery.Query().
		Where(
			documentmastery.DocumentID(documentID),
			documentmastery.LearnerID(learnerID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query document score: %w", err)
	}
	return m.Score, true, nil
}
