package engine

import "sync"

// pairLocks serializes submissions per (document, learner) pair so that
// concurrent submissions for the same pair apply sequentially while
// unrelated pairs proceed in parallel. Locks are created on first use
// and kept for the life of the engine; the pair space is small enough
// that eviction is not worth the bookkeeping.
type pairLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPairLocks() *pairLocks {
	return &pairLocks{locks: make(map[string]*sync.Mutex)}
}

func (p *pairLocks) lock(documentID, learnerID string) *sync.Mutex {
	key := documentID + "\x00" + learnerID

	p.mu.Lock()
	m, ok := p.locks[key]
	if !ok {
		m = &sync.Mutex{}
		p.locks[key] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m
}
