package adaptive

import (
	"context"
	"sort"

	"github.com/memora-labs/memora/internal/store"
)

// DefaultPeriod triggers regeneration on every 3rd completed session.
const DefaultPeriod = 3

// Config holds the trigger tuning. WeakThreshold mirrors the mastery
// needs-review threshold; items scoring below it supply the topic
// keywords that bias the next generated batch.
type Config struct {
	Period        int
	WeakThreshold float64
}

// DefaultConfig returns the reference trigger configuration.
func DefaultConfig() Config {
	return Config{
		Period:        DefaultPeriod,
		WeakThreshold: 0.80,
	}
}

// Decision is the outcome of recording a completed session.
type Decision struct {
	// Due is true when the new session count is a positive multiple of
	// the period.
	Due bool
	// SessionCount is the counter value after the increment.
	SessionCount int
	// WeakTopics is the deduplicated keyword set of weak items. Only
	// populated when Due.
	WeakTopics []string
}

// Trigger decides when accumulated mastery evidence warrants a new
// adaptive quiz batch.
type Trigger struct {
	cfg Config
}

// NewTrigger creates a trigger with the given configuration.
func NewTrigger(cfg Config) *Trigger {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	return &Trigger{cfg: cfg}
}

// RecordCompletedSession increments the pair's session counter and
// evaluates the periodic trigger against the value the increment
// returned, so a session can never be double-counted or skipped between
// the two steps.
func (t *Trigger) RecordCompletedSession(ctx context.Context, r *store.Repos, documentID, learnerID string) (Decision, error) {
	count, err := r.Counters.Increment(ctx, documentID, learnerID)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		Due:          count%t.cfg.Period == 0,
		SessionCount: count,
	}
	if !d.Due {
		return d, nil
	}

	topics, err := t.weakTopics(ctx, r, documentID, learnerID)
	if err != nil {
		return Decision{}, err
	}
	d.WeakTopics = topics
	return d, nil
}

// weakTopics collects the keywords of non-retired items whose current
// mastery score sits below the threshold. Unattempted items score 0 and
// therefore count as weak.
func (t *Trigger) weakTopics(ctx context.Context, r *store.Repos, documentID, learnerID string) ([]string, error) {
	items, err := r.Catalog.ListByDocument(ctx, documentID, learnerID)
	if err != nil {
		return nil, err
	}
	scores, err := r.Mastery.ItemScores(ctx, documentID, learnerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var topics []string
	for _, it := range items {
		if scores[it.ItemID] >= t.cfg.WeakThreshold {
			continue
		}
		for _, kw := range it.Keywords {
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			topics = append(topics, kw)
		}
	}

	sort.Strings(topics)
	return topics, nil
}
