package spacedrep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memora-labs/memora/internal/store"
)

// maxUpdateRetries bounds the optimistic-concurrency retry loop. The
// submission pipeline already serializes per pair in-process; retries
// only fire when another process updated the same pair concurrently.
const maxUpdateRetries = 5

// Scheduler turns session performance into review schedule updates.
type Scheduler struct {
	policy Policy
}

// NewScheduler creates a scheduler with the given policy.
func NewScheduler(policy Policy) *Scheduler {
	return &Scheduler{policy: policy}
}

// Policy returns the scheduler's policy.
func (s *Scheduler) Policy() Policy {
	return s.policy
}

// UpdateSchedule applies the interval rule for one completed session and
// persists the result. The first update for a pair starts from the
// initial interval; later updates read the stored interval and write the
// new one under a version check, retrying on conflict so no update is
// ever lost.
//
// next_review_date is always now plus the new interval; the two fields
// never change independently.
func (s *Scheduler) UpdateSchedule(ctx context.Context, r *store.Repos, documentID, learnerID string, performance float64, now time.Time) (store.Schedule, error) {
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		existing, err := r.Schedules.Get(ctx, documentID, learnerID)
		if err != nil {
			return store.Schedule{}, err
		}

		if existing == nil {
			sc := store.Schedule{
				DocumentID:     documentID,
				LearnerID:      learnerID,
				IntervalDays:   s.policy.InitialDays,
				NextReviewDate: now.AddDate(0, 0, s.policy.InitialDays),
			}
			if err := r.Schedules.Create(ctx, sc); err != nil {
				return store.Schedule{}, err
			}
			return sc, nil
		}

		next := s.policy.NextInterval(existing.IntervalDays, performance)
		sc := store.Schedule{
			DocumentID:     documentID,
			LearnerID:      learnerID,
			IntervalDays:   next,
			NextReviewDate: now.AddDate(0, 0, next),
			Version:        existing.Version,
		}

		err = r.Schedules.Update(ctx, sc)
		if err == nil {
			sc.Version = existing.Version + 1
			return sc, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return store.Schedule{}, err
		}
		// Conflict: re-read the fresh interval and try again.
	}

	return store.Schedule{}, fmt.Errorf("update schedule for %s/%s: %w after %d attempts",
		documentID, learnerID, store.ErrVersionConflict, maxUpdateRetries)
}
