package store

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
)

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := nextSequence(ctx, r.client)
	if err != nil {
		return err
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetDocumentID(data.DocumentID).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectCount(data.CorrectCount).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRegenEvent(ctx context.Context, data RegenEventData) error {
	seqNum, err := nextSequence(ctx, r.client)
	if err != nil {
		return err
	}

	builder := r.client.RegenEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetDocumentID(data.DocumentID).
		SetSuccess(data.Success)

	if len(data.WeakTopics) > 0 {
		builder = builder.SetWeakTopics(data.WeakTopics)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save regen event: %w", err)
	}
	return nil
}
