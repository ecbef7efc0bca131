package adaptive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-labs/memora/internal/store"
)

type recordingRegen struct {
	mu   sync.Mutex
	got  []RegenRequest
	err  error
	slow time.Duration
}

func (r *recordingRegen) Regenerate(ctx context.Context, req RegenRequest) error {
	if r.slow > 0 {
		select {
		case <-time.After(r.slow):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	r.got = append(r.got, req)
	r.mu.Unlock()
	return r.err
}

func (r *recordingRegen) requests() []RegenRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RegenRequest(nil), r.got...)
}

type recordingEvents struct {
	mu     sync.Mutex
	regens []store.RegenEventData
}

func (r *recordingEvents) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func (r *recordingEvents) AppendRegenEvent(_ context.Context, data store.RegenEventData) error {
	r.mu.Lock()
	r.regens = append(r.regens, data)
	r.mu.Unlock()
	return nil
}

func (r *recordingEvents) appended() []store.RegenEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.RegenEventData(nil), r.regens...)
}

func TestDispatcher_DeliversRequest(t *testing.T) {
	regen := &recordingRegen{}
	events := &recordingEvents{}
	d := NewDispatcher(regen, events, nil, 4, time.Second)

	d.Dispatch(RegenRequest{
		DocumentID: "doc-1",
		LearnerID:  "l1",
		WeakTopics: []string{"osmosis"},
	})
	d.Close()

	got := regen.requests()
	require.Len(t, got, 1)
	assert.Equal(t, "doc-1", got[0].DocumentID)
	assert.Equal(t, []string{"osmosis"}, got[0].WeakTopics)

	appended := events.appended()
	require.Len(t, appended, 1)
	assert.True(t, appended[0].Success)
	assert.Empty(t, appended[0].ErrorMessage)
}

func TestDispatcher_FailureIsRecordedNotFatal(t *testing.T) {
	regen := &recordingRegen{err: errors.New("provider unavailable")}
	events := &recordingEvents{}
	d := NewDispatcher(regen, events, nil, 4, time.Second)

	d.Dispatch(RegenRequest{DocumentID: "doc-1", LearnerID: "l1"})
	d.Close()

	appended := events.appended()
	require.Len(t, appended, 1)
	assert.False(t, appended[0].Success)
	assert.Contains(t, appended[0].ErrorMessage, "provider unavailable")
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	block := make(chan struct{})
	regen := &blockingRegen{release: block, started: make(chan struct{})}
	d := NewDispatcher(regen, nil, nil, 1, 0)

	// First request occupies the worker, second fills the queue, third
	// must drop instead of blocking the caller.
	d.Dispatch(RegenRequest{DocumentID: "a"})
	<-regen.started
	d.Dispatch(RegenRequest{DocumentID: "b"})

	done := make(chan struct{})
	go func() {
		d.Dispatch(RegenRequest{DocumentID: "c"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	close(block)
	d.Close()
	assert.Equal(t, 2, regen.count(), "dropped request must not be processed")
}

type blockingRegen struct {
	release <-chan struct{}
	started chan struct{}
	mu      sync.Mutex
	n       int

	once sync.Once
}

func (b *blockingRegen) Regenerate(context.Context, RegenRequest) error {
	b.once.Do(func() { close(b.started) })
	<-b.release
	b.mu.Lock()
	b.n++
	b.mu.Unlock()
	return nil
}

func (b *blockingRegen) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

func TestDispatcher_TimeoutCancelsSlowRegeneration(t *testing.T) {
	regen := &recordingRegen{slow: 5 * time.Second}
	events := &recordingEvents{}
	d := NewDispatcher(regen, events, nil, 4, 20*time.Millisecond)

	d.Dispatch(RegenRequest{DocumentID: "doc-1", LearnerID: "l1"})
	d.Close()

	appended := events.appended()
	require.Len(t, appended, 1)
	assert.False(t, appended[0].Success)
	assert.Contains(t, appended[0].ErrorMessage, "context deadline exceeded")
}

func TestDispatcher_NilEventsRepoIsAllowed(t *testing.T) {
	regen := &recordingRegen{}
	d := NewDispatcher(regen, nil, nil, 4, time.Second)

	d.Dispatch(RegenRequest{DocumentID: "doc-1"})
	d.Close()

	require.Len(t, regen.requests(), 1)
}
