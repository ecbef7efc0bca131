package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/memora-labs/memora/internal/store"
)

// DefaultScanInterval is how often the due-review scan runs.
const DefaultScanInterval = time.Hour

// DueReview is one (document, learner) pair whose next review date has
// passed.
type DueReview struct {
	DocumentID     string
	LearnerID      string
	NextReviewDate time.Time
	IntervalDays   int
}

// Notifier delivers due-review reminders. Surfacing them to learners is
// outside the engine; callers plug in their own delivery channel.
type Notifier interface {
	NotifyDue(ctx context.Context, reviews []DueReview) error
}

// Service periodically scans the schedule table and hands due pairs to
// the notifier. A pair stays due until a new submission pushes its
// next review date forward, so repeated scans re-report it.
type Service struct {
	schedules store.ScheduleRepo
	notifier  Notifier
	log       *slog.Logger
	scheduler *gocron.Scheduler

	now func() time.Time
}

// New creates a reminder service. A nil logger discards logs.
func New(schedules store.ScheduleRepo, notifier Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		schedules: schedules,
		notifier:  notifier,
		log:       log,
		scheduler: gocron.NewScheduler(time.UTC),
		now:       time.Now,
	}
}

// Start begins the periodic scan. A non-positive interval falls back to
// the default.
func (s *Service) Start(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	if _, err := s.scheduler.Every(interval).Do(s.scan); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop halts the periodic scan. In-flight scans finish.
func (s *Service) Stop() {
	s.scheduler.Stop()
}

func (s *Service) scan() {
	if err := s.RunOnce(context.Background()); err != nil {
		s.log.Error("due-review scan failed", "error", err)
	}
}

// RunOnce performs a single scan, notifying for every pair due as of
// now. Exposed for manual checks alongside the periodic schedule.
func (s *Service) RunOnce(ctx context.Context) error {
	due, err := s.schedules.DueBefore(ctx, s.now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	reviews := make([]DueReview, 0, len(due))
	for _, sc := range due {
		reviews = append(reviews, DueReview{
			DocumentID:     sc.DocumentID,
			LearnerID:      sc.LearnerID,
			NextReviewDate: sc.NextReviewDate,
			IntervalDays:   sc.IntervalDays,
		})
	}

	s.log.Info("due reviews found", "count", len(reviews))
	return s.notifier.NotifyDue(ctx, reviews)
}
