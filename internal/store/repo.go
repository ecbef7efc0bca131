package store

import (
	"context"
	"errors"
	"time"

	"github.com/memora-labs/memora/ent"
)

// ErrVersionConflict is returned by ScheduleRepo.Update when the row's
// version no longer matches the one the caller read. The caller re-reads
// and retries.
var ErrVersionConflict = errors.New("schedule version conflict")

// Attempt is one recorded answer to a quiz item. Attempts are immutable
// once appended; everything else the engine stores is derivable from them.
type Attempt struct {
	ItemID        string
	LearnerID     string
	DocumentID    string
	SessionID     string
	Correct       bool
	TimeTakenSecs float64
	OccurredAt    time.Time
	Sequence      int64
}

// Item is the engine's view of a quiz item: document membership, topic
// keywords, and whether the item has been retired from the aggregate.
type Item struct {
	ItemID     string
	DocumentID string
	LearnerID  string
	Keywords   []string
	Retired    bool
}

// ItemScore is the persisted mastery projection for one (item, learner).
type ItemScore struct {
	ItemID     string
	LearnerID  string
	DocumentID string
	Score      float64
}

// DocumentScore is the persisted aggregate for one (document, learner).
type DocumentScore struct {
	DocumentID string
	LearnerID  string
	Score      float64
}

// Schedule is the spaced-repetition state for one (document, learner).
type Schedule struct {
	DocumentID     string
	LearnerID      string
	IntervalDays   int
	NextReviewDate time.Time
	Version        int64
}

// SessionEventData captures one completed submission for the audit log.
type SessionEventData struct {
	SessionID         string
	LearnerID         string
	DocumentID        string
	QuestionsAnswered int
	CorrectCount      int
	Score             float64
}

// RegenEventData captures a regeneration dispatch outcome.
type RegenEventData struct {
	LearnerID    string
	DocumentID   string
	WeakTopics   []string
	Success      bool
	ErrorMessage string
}

// AttemptRepo is the append/read surface of the attempt log.
type AttemptRepo interface {
	// Append records a new attempt, assigning it the next global sequence.
	Append(ctx context.Context, a Attempt) error

	// ListByItem returns all attempts for (item, learner) ordered oldest
	// to newest.
	ListByItem(ctx context.Context, itemID, learnerID string) ([]Attempt, error)
}

// CatalogRepo maintains the quiz-item read model.
type CatalogRepo interface {
	// Put inserts or replaces the item row.
	Put(ctx context.Context, it Item) error

	// ListByDocument returns the document's non-retired items.
	ListByDocument(ctx context.Context, documentID, learnerID string) ([]Item, error)

	// Retire marks an item as retired, removing it from the mastery
	// aggregate.
	Retire(ctx context.Context, itemID, learnerID string) error
}

// MasteryRepo persists the mastery projections.
type MasteryRepo interface {
	PutItemScore(ctx context.Context, sc ItemScore) error
	PutDocumentScore(ctx context.Context, sc DocumentScore) error

	// ItemScores returns the current score per item id for a document's
	// items. Items with no stored score are absent from the map.
	ItemScores(ctx context.Context, documentID, learnerID string) (map[string]float64, error)

	// DocumentScore returns the stored aggregate, or 0 with ok=false when
	// none exists yet.
	DocumentScore(ctx context.Context, documentID, learnerID string) (float64, bool, error)
}

// ScheduleRepo persists review schedules with optimistic concurrency.
type ScheduleRepo interface {
	// Get returns the schedule for the pair, or nil if none exists yet.
	Get(ctx context.Context, documentID, learnerID string) (*Schedule, error)

	// Create inserts the first schedule for a pair.
	Create(ctx context.Context, sc Schedule) error

	// Update writes the schedule only if the stored version still equals
	// sc.Version, bumping it by one. Returns ErrVersionConflict otherwise.
	Update(ctx context.Context, sc Schedule) error

	// DueBefore returns all schedules whose next review date is at or
	// before t, soonest first.
	DueBefore(ctx context.Context, t time.Time) ([]Schedule, error)
}

// CounterRepo tracks completed sessions per pair.
type CounterRepo interface {
	// Increment adds one to the pair's counter and returns the new value.
	Increment(ctx context.Context, documentID, learnerID string) (int, error)

	// Get returns the current counter value (0 if the pair is unseen).
	Get(ctx context.Context, documentID, learnerID string) (int, error)
}

// EventRepo provides append access to the audit event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendRegenEvent(ctx context.Context, data RegenEventData) error
}

// Repos bundles all repositories over one ent client, which may be
// transaction-bound (see Store.InTx).
type Repos struct {
	Attempts  AttemptRepo
	Catalog   CatalogRepo
	Mastery   MasteryRepo
	Schedules ScheduleRepo
	Counters  CounterRepo
	Events    EventRepo
}

func newRepos(client *ent.Client) *Repos {
	return &Repos{
		Attempts:  &attemptRepo{client: client},
		Catalog:   &catalogRepo{client: client},
		Mastery:   &masteryRepo{client: client},
		Schedules: &scheduleRepo{client: client},
		Counters:  &counterRepo{client: client},
		Events:    &eventRepo{client: client},
	}
}
