package store

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
	"github.com/memora-labs/memora/ent/attemptevent"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) error {
	seqNum, err := nextSequence(ctx, r.client)
	if err != nil {
		return err
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetItemID(a.ItemID).
		SetLearnerID(a.LearnerID).
		SetDocumentID(a.DocumentID).
		SetSessionID(a.SessionID).
		SetCorrect(a.Correct).
		SetTimeTakenSecs(a.TimeTakenSecs)

	if !a.OccurredAt.IsZero() {
		builder = builder.SetTimestamp(a.OccurredAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByItem(ctx context.Context, itemID, learnerID string) ([]Attempt, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.ItemID(itemID),
			attemptevent.LearnerID(learnerID),
		).
		Order(ent.Asc(attemptevent.FieldTimestamp), ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, len(events))
	for i, e := range events {
		attempts[i] = Attempt{
			ItemID:        e.ItemID,
			LearnerID:     e.LearnerID,
			DocumentID:    e.DocumentID,
			SessionID:     e.SessionID,
			Correct:       e.Correct,
			TimeTakenSecs: e.TimeTakenSecs,
			OccurredAt:    e.Timestamp,
			Sequence:      e.Sequence,
		}
	}
	return attempts, nil
}
