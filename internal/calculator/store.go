package calculator

import (
	"sync"

	"github.com/google/uuid"

	"calc-api/internal/engine"
)

// Store holds every live calculator session in memory, keyed by session ID.
// Each session is one engine.State; transitions run under the store lock, so
// a session has exactly one logical writer at a time. Nothing is persisted —
// sessions vanish on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]engine.State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]engine.State)}
}

// Create starts a fresh session and returns its ID and initial state.
func (st *Store) Create() (string, engine.State) {
	id := uuid.New().String()
	state := engine.New()

	st.mu.Lock()
	st.sessions[id] = state
	st.mu.Unlock()

	return id, state
}

// Get returns the current state of a session.
func (st *Store) Get(id string) (engine.State, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	state, ok := st.sessions[id]
	return state, ok
}

// Apply replaces a session's state with fn(state) atomically and returns the
// successor. The second result is false when the session does not exist.
func (st *Store) Apply(id string, fn func(engine.State) engine.State) (engine.State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	state, ok := st.sessions[id]
	if !ok {
		return engine.State{}, false
	}

	next := fn(state)
	st.sessions[id] = next
	return next, true
}

// Delete discards a session. It reports whether the session existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
