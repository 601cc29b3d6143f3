package viewstate

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry keeps one State per web visitor.
type Registry struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]*entry
	idleTimeout time.Duration
	now         func() time.Time
}

type entry struct {
	mu       sync.Mutex
	state    *State
	lastSeen time.Time
}

// NewRegistry creates a registry that forgets visitors idle for longer than
// idleTimeout. A zero timeout keeps states until the process exits.
func NewRegistry(idleTimeout time.Duration) *Registry {
	return &Registry{
		entries:     make(map[uuid.UUID]*entry),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// NewID allocates a visitor id.
func (r *Registry) NewID() uuid.UUID {
	return uuid.New()
}

// With runs fn with exclusive access to the visitor's state, creating a fresh
// state on first use.
func (r *Registry) With(id uuid.UUID, fn func(*State)) {
	e := r.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

func (r *Registry) get(id uuid.UUID) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.entries[id]
	if !ok {
		r.sweepLocked(now)
		e = &entry{state: New()}
		r.entries[id] = e
	}
	e.lastSeen = now
	return e
}

// Sweep evicts idle visitors and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

func (r *Registry) sweepLocked(now time.Time) int {
	if r.idleTimeout <= 0 {
		return 0
	}
	removed := 0
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.idleTimeout {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked visitors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
