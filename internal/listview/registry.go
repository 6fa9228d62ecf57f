package listview

import (
	"sync"
	"time"
)

// Registry hands out one controller per session for a single view, so the
// view's pagination state survives across requests from the same operator.
// Controllers idle longer than ttl are dropped on the next access.
type Registry[T any] struct {
	mu       sync.Mutex
	factory  func() *Controller[T]
	ttl      time.Duration
	entries  map[string]*registryEntry[T]
	lastScan time.Time
	now      func() time.Time
}

type registryEntry[T any] struct {
	ctl      *Controller[T]
	lastSeen time.Time
}

// defaultRegistryTTL bounds how long an untouched view's state is kept.
const defaultRegistryTTL = 30 * time.Minute

// NewRegistry creates a registry that builds controllers with factory.
// A non-positive ttl falls back to 30 minutes. Panics if factory is nil.
func NewRegistry[T any](factory func() *Controller[T], ttl time.Duration) *Registry[T] {
	if factory == nil {
		panic("listview.NewRegistry: factory must not be nil")
	}
	if ttl <= 0 {
		ttl = defaultRegistryTTL
	}
	return &Registry[T]{
		factory: factory,
		ttl:     ttl,
		entries: make(map[string]*registryEntry[T]),
		now:     time.Now,
	}
}

// For returns the controller for the given session, creating it on first
// access.
func (r *Registry[T]) For(sessionID string) *Controller[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	e, ok := r.entries[sessionID]
	if !ok {
		e = &registryEntry[T]{ctl: r.factory()}
		r.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.ctl
}

// Drop discards the controller for the given session, if any. Called on
// logout so a later login starts from a fresh view.
func (r *Registry[T]) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// sweepLocked evicts idle entries. Runs at most once per ttl interval to
// keep For cheap.
func (r *Registry[T]) sweepLocked(now time.Time) {
	if now.Sub(r.lastScan) < r.ttl {
		return
	}
	r.lastScan = now
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, id)
		}
	}
}
