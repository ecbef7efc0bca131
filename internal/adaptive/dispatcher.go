package adaptive

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/memora-labs/memora/internal/store"
)

// DefaultQueueSize bounds the regeneration backlog.
const DefaultQueueSize = 32

// RegenRequest is the ephemeral trigger event handed to the Content
// Regenerator. It is not persisted by the engine; the RegenEvent audit
// row records the outcome.
type RegenRequest struct {
	DocumentID  string
	LearnerID   string
	WeakTopics  []string
	RequestedAt time.Time
}

// Regenerator produces and persists a new quiz batch for a trigger. It
// is an external collaborator; the engine only supplies the targeting
// data.
type Regenerator interface {
	Regenerate(ctx context.Context, req RegenRequest) error
}

// Dispatcher hands trigger events to the regenerator on a background
// worker. Regeneration is best-effort: failures are logged and recorded,
// never surfaced to the submission that caused them, and the queue drops
// rather than blocks when full.
type Dispatcher struct {
	regen   Regenerator
	events  store.EventRepo
	log     *slog.Logger
	timeout time.Duration

	pending chan RegenRequest
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher and starts its worker. A nil events
// repo disables audit rows; a nil logger discards logs.
func NewDispatcher(regen Regenerator, events store.EventRepo, log *slog.Logger, queueSize int, timeout time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		regen:   regen,
		events:  events,
		log:     log,
		timeout: timeout,
		pending: make(chan RegenRequest, queueSize),
	}
	d.wg.Add(1)
	go d.processLoop()
	return d
}

// Dispatch enqueues a regeneration request without blocking. A full
// queue drops the request; the next due trigger for the pair will ask
// again.
func (d *Dispatcher) Dispatch(req RegenRequest) {
	select {
	case d.pending <- req:
	default:
		d.log.Warn("regeneration queue full, dropping request",
			"document_id", req.DocumentID, "learner_id", req.LearnerID)
	}
}

func (d *Dispatcher) processLoop() {
	defer d.wg.Done()
	for req := range d.pending {
		d.process(req)
	}
}

func (d *Dispatcher) process(req RegenRequest) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	err := d.regen.Regenerate(ctx, req)
	if err != nil {
		d.log.Error("adaptive regeneration failed",
			"document_id", req.DocumentID,
			"learner_id", req.LearnerID,
			"weak_topics", req.WeakTopics,
			"error", err)
	} else {
		d.log.Info("adaptive regeneration dispatched",
			"document_id", req.DocumentID,
			"learner_id", req.LearnerID,
			"weak_topics", req.WeakTopics)
	}

	if d.events == nil {
		return
	}
	data := store.RegenEventData{
		LearnerID:  req.LearnerID,
		DocumentID: req.DocumentID,
		WeakTopics: req.WeakTopics,
		Success:    err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if logErr := d.events.AppendRegenEvent(ctx, data); logErr != nil {
		d.log.Warn("failed to record regen event", "error", logErr)
	}
}

// Close stops accepting requests and waits for in-flight work to finish.
func (d *Dispatcher) Close() {
	close(d.pending)
	d.wg.Wait()
}
