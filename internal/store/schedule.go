package store

import (
	"context"
	"fmt"
	"time"

	"github.com/memora-labs/memora/ent"
	"github.com/memora-labs/memora/ent/reviewschedule"
)

type scheduleRepo struct {
	client *ent.Client
}

func (r *scheduleRepo) Get(ctx context.Context, documentID, learnerID string) (*Schedule, error) {
	row, err := r.client.ReviewSchedule.Query().
		Where(
			reviewschedule.DocumentID(documentID),
			reviewschedule.LearnerID(learnerID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return &Schedule{
		DocumentID:     row.DocumentID,
		LearnerID:      row.LearnerID,
		IntervalDays:   row.IntervalDays,
		NextReviewDate: row.NextReviewDate,
		Version:        row.Version,
	}, nil
}

func (r *scheduleRepo) Create(ctx context.Context, sc Schedule) error {
	_, err := r.client.ReviewSchedule.Create().
		SetDocumentID(sc.DocumentID).
		SetLearnerID(sc.LearnerID).
		SetIntervalDays(sc.IntervalDays).
		SetNextReviewDate(sc.NextReviewDate).
		SetVersion(sc.Version).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// Update applies the schedule change only if the stored version still
// matches sc.Version. A zero row count means someone else updated the
// pair since the caller's read.
func (r *scheduleRepo) Update(ctx context.Context, sc Schedule) error {
	n, err := r.client.ReviewSchedule.Update().
		Where(
			reviewschedule.DocumentID(sc.DocumentID),
			reviewschedule.LearnerID(sc.LearnerID),
			reviewschedule.Version(sc.Version),
		).
		SetIntervalDays(sc.IntervalDays).
		SetNextReviewDate(sc.NextReviewDate).
		SetVersion(sc.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *scheduleRepo) DueBefore(ctx context.Context, t time.Time) ([]Schedule, error) {
	rows, err := r.client.ReviewSchedule.Query().
		Where(reviewschedule.NextReviewDateLTE(t)).
		Order(ent.Asc(reviewschedule.FieldNextReviewDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due schedules: %w", err)
	}

	schedules := make([]Schedule, len(rows))
	for i, row := range rows {
		schedules[i] = Schedule{
			DocumentID:     row.DocumentID,
			LearnerID:      row.LearnerID,
			IntervalDays:   row.IntervalDays,
			NextReviewDate: row.NextReviewDate,
			Version:        row.Version,
		}
	}
	return schedules, nil
}
