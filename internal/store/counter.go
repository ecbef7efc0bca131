package store

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
	"github.com/memora-labs/memora/ent/sessioncounter"
)

type counterRepo struct {
	client *ent.Client
}

// Increment bumps the pair's completed-session count by one and returns
// the new value. The add happens in SQL (completed_sessions + 1), so
// concurrent increments from other processes are never lost; read back
// inside the submission transaction, the returned count is this
// submission's own.
func (r *counterRepo) Increment(ctx context.Context, documentID, learnerID string) (int, error) {
	for {
		n, err := r.client.SessionCounter.Update().
			Where(
				sessioncounter.DocumentID(documentID),
				sessioncounter.LearnerID(learnerID),
			).
			AddCompletedSessions(1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("increment session counter: %w", err)
		}
		if n > 0 {
			return r.Get(ctx, documentID, learnerID)
		}

		err = r.client.SessionCounter.Create().
			SetDocumentID(documentID).
			SetLearnerID(learnerID).
			SetCompletedSessions(1).
			Exec(ctx)
		if err == nil {
			return 1, nil
		}
		if !ent.IsConstraintError(err) {
			return 0, fmt.Errorf("create session counter: %w", err)
		}
		// Lost the create race to another writer; add to its row.
	}
}

func (r *counterRepo) Get(ctx context.Context, documentID, learnerID string) (int, error) {
	existing, err := r.client.SessionCounter.Query().
		Where(
			sessioncounter.DocumentID(documentID),
			sessioncounter.LearnerID(learnerID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query session counter: %w", err)
	}
	return existing.CompletedSessions, nil
}
