package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/memora-labs/memora/internal/adaptive"
	"github.com/memora-labs/memora/internal/mastery"
	"github.com/memora-labs/memora/internal/spacedrep"
	"github.com/memora-labs/memora/internal/store"
)

// Answer is one graded quiz answer inside a submission.
type Answer struct {
	ItemID        string
	Correct       bool
	TimeTakenSecs float64
}

// Submission is a completed quiz session for one (document, learner)
// pair. CompletedAt defaults to the current time when zero.
type Submission struct {
	LearnerID   string
	DocumentID  string
	Answers     []Answer
	CompletedAt time.Time
}

// Result reports everything one submission changed.
type Result struct {
	SessionID         string
	QuestionsAnswered int
	CorrectCount      int
	// SessionScore is the fraction of correct answers, rounded to two
	// decimals. It is the performance factor fed to the scheduler.
	SessionScore float64
	// ItemScores maps each answered item to its recomputed mastery.
	ItemScores    map[string]float64
	DocumentScore float64
	Schedule      store.Schedule
	Regeneration  adaptive.Decision
}

// Engine runs the full submission pipeline: attempt recording, mastery
// recomputation, review scheduling and the adaptive regeneration
// trigger. Stages one to three commit atomically; regeneration is
// dispatched asynchronously after the commit.
type Engine struct {
	store *store.Store
	calc  *mastery.Calculator
	sched *spacedrep.Scheduler
	trig  *adaptive.Trigger
	disp  *adaptive.Dispatcher
	locks *pairLocks
	log   *slog.Logger
	cfg   Config

	now func() time.Time
}

// New builds an engine over the store. A nil regenerator disables
// dispatch; trigger decisions are still recorded and returned. A nil
// logger discards logs.
func New(st *store.Store, regen adaptive.Regenerator, log *slog.Logger, cfg Config) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		store: st,
		calc:  mastery.NewCalculator(cfg.Mastery),
		sched: spacedrep.NewScheduler(cfg.Schedule),
		trig:  adaptive.NewTrigger(cfg.Trigger),
		locks: newPairLocks(),
		log:   log,
		cfg:   cfg,
		now:   time.Now,
	}
	if regen != nil {
		e.disp = adaptive.NewDispatcher(regen, st.Repos().Events, log, cfg.RegenQueueSize, cfg.RegenTimeout)
	}
	return e
}

// Close drains the regeneration queue. The store is owned by the caller
// and stays open.
func (e *Engine) Close() {
	if e.disp != nil {
		e.disp.Close()
	}
}

// ProcessSubmission applies one completed quiz session. On any error
// before or during the transaction nothing is persisted and the
// submission can be retried as a whole.
func (e *Engine) ProcessSubmission(ctx context.Context, sub Submission) (*Result, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	now := sub.CompletedAt
	if now.IsZero() {
		now = e.now()
	}

	correct := 0
	for _, a := range sub.Answers {
		if a.Correct {
			correct++
		}
	}
	res := &Result{
		SessionID:         uuid.NewString(),
		QuestionsAnswered: len(sub.Answers),
		CorrectCount:      correct,
		SessionScore:      mastery.Round(float64(correct) / float64(len(sub.Answers))),
		ItemScores:        make(map[string]float64),
	}

	mu := e.locks.lock(sub.DocumentID, sub.LearnerID)
	defer mu.Unlock()

	if e.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.StoreTimeout)
		defer cancel()
	}

	err := e.store.InTx(ctx, func(r *store.Repos) error {
		for _, a := range sub.Answers {
			att := store.Attempt{
				ItemID:        a.ItemID,
				LearnerID:     sub.LearnerID,
				DocumentID:    sub.DocumentID,
				SessionID:     res.SessionID,
				Correct:       a.Correct,
				TimeTakenSecs: a.TimeTakenSecs,
				OccurredAt:    now,
			}
			if err := r.Attempts.Append(ctx, att); err != nil {
				return err
			}
		}

		for _, itemID := range distinctItems(sub.Answers) {
			score, err := e.calc.ComputeItemMastery(ctx, r, itemID, sub.LearnerID, sub.DocumentID)
			if err != nil {
				return err
			}
			res.ItemScores[itemID] = score
		}

		docScore, err := e.calc.ComputeDocumentMastery(ctx, r, sub.DocumentID, sub.LearnerID)
		if err != nil {
			return err
		}
		res.DocumentScore = docScore

		sched, err := e.sched.UpdateSchedule(ctx, r, sub.DocumentID, sub.LearnerID, res.SessionScore, now)
		if err != nil {
			return err
		}
		res.Schedule = sched

		decision, err := e.trig.RecordCompletedSession(ctx, r, sub.DocumentID, sub.LearnerID)
		if err != nil {
			return err
		}
		res.Regeneration = decision

		return r.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         res.SessionID,
			LearnerID:         sub.LearnerID,
			DocumentID:        sub.DocumentID,
			QuestionsAnswered: res.QuestionsAnswered,
			CorrectCount:      res.CorrectCount,
			Score:             res.SessionScore,
		})
	})
	if err != nil {
		// Everything the transaction can fail with is a store-layer
		// problem (timeout, closed or unreachable database, lock
		// contention) except version-conflict exhaustion, which keeps
		// its own identity for callers that retry.
		if errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}
		return nil, &ErrDependencyUnavailable{Err: err}
	}

	e.log.Info("submission processed",
		"session_id", res.SessionID,
		"document_id", sub.DocumentID,
		"learner_id", sub.LearnerID,
		"score", res.SessionScore,
		"document_mastery", res.DocumentScore,
		"interval_days", res.Schedule.IntervalDays,
		"regen_due", res.Regeneration.Due)

	if res.Regeneration.Due && e.disp != nil {
		e.disp.Dispatch(adaptive.RegenRequest{
			DocumentID:  sub.DocumentID,
			LearnerID:   sub.LearnerID,
			WeakTopics:  res.Regeneration.WeakTopics,
			RequestedAt: now,
		})
	}

	return res, nil
}

func validateSubmission(sub Submission) error {
	if sub.LearnerID == "" {
		return &ErrInvalidInput{Field: "learner_id", Reason: "must not be empty"}
	}
	if sub.DocumentID == "" {
		return &ErrInvalidInput{Field: "document_id", Reason: "must not be empty"}
	}
	if len(sub.Answers) == 0 {
		return &ErrInvalidInput{Field: "answers", Reason: "must contain at least one answer"}
	}
	for _, a := range sub.Answers {
		if a.ItemID == "" {
			return &ErrInvalidInput{Field: "answers", Reason: "item_id must not be empty"}
		}
		if a.TimeTakenSecs < 0 {
			return &ErrInvalidInput{Field: "answers", Reason: "time_taken_secs must not be negative"}
		}
	}
	return nil
}

func distinctItems(answers []Answer) []string {
	seen := make(map[string]bool, len(answers))
	var out []string
	for _, a := range answers {
		if seen[a.ItemID] {
			continue
		}
		seen[a.ItemID] = true
		out = append(out, a.ItemID)
	}
	return out
}
