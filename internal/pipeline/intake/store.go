package intake

import (
	"context"
	"sync"
	"time"
)

// Store is the narrow contract over the externally-owned session storage.
// Get returns (nil, nil) when no state exists for the session. The intake
// flow is a read-modify-write over this store with no cross-request locking;
// two concurrent turns for one session can race and one update can be lost.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Put(ctx context.Context, state *State) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-process Store for tests and single-node development.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
	ttl    time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		states: make(map[string]*State),
		ttl:    ttl,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*State, error) {
	m.mu.RLock()
	st, ok := m.states[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if m.ttl > 0 && time.Since(st.UpdatedAt) > m.ttl {
		m.mu.Lock()
		delete(m.states, sessionID)
		m.mu.Unlock()
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (m *MemoryStore) Put(_ context.Context, state *State) error {
	cp := *state
	m.mu.Lock()
	m.states[state.SessionID] = &cp
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.states, sessionID)
	m.mu.Unlock()
	return nil
}
