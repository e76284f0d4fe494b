package session

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/sjperalta/rental-desk/internal/statemachine"
)

// Store keeps the open drafts in memory, keyed by session id
type Store struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	node          *snowflake.Node
	defaultMethod string
	now           func() time.Time
}

// NewStore creates an empty store. Surcharge ids are generated by node.
func NewStore(node *snowflake.Node, defaultMethod string) *Store {
	if defaultMethod == "" {
		defaultMethod = "Cash"
	}
	return &Store{
		sessions:      make(map[string]*Session),
		node:          node,
		defaultMethod: defaultMethod,
		now:           time.Now,
	}
}

// Create opens a new draft for owner
func (st *Store) Create(owner uint) *Session {
	s := newSession(uuid.NewString(), owner, st.node, st.defaultMethod, st.now)

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session; false when it was not present
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of open sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than ttl and returns their ids.
// Drafts with a submission in flight are kept.
func (st *Store) Sweep(ttl time.Duration) []string {
	cutoff := st.now().Add(-ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	var removed []string
	for id, s := range st.sessions {
		if s.State() == statemachine.DraftSubmitting {
			continue
		}
		if s.TouchedAt().Before(cutoff) {
			delete(st.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}
