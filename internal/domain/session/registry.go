// internal/domain/session/registry.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/printmart/internal/domain/catalog"
)

// Registry hands out one Store per session id and drops stores that have
// been idle longer than the TTL
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry

	catalog *catalog.Catalog
	opts    []Option
	ttl     time.Duration
	now     func() time.Time
	logger  *logrus.Entry
}

type entry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry creates a session registry. Every store it creates gets opts,
// plus a LogListener tagged with the session id.
func NewRegistry(cat *catalog.Catalog, ttl time.Duration, logger *logrus.Logger, opts ...Option) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		catalog:  cat,
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.WithField("component", "session_registry"),
	}
}

// Get returns the store for id, creating it on first use
func (r *Registry) Get(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = now
		return e.store
	}

	opts := append([]Option{}, r.opts...)
	opts = append(opts, WithListener(LogListener(r.logger.WithField("session_id", id))))
	store := NewStore(r.catalog, opts...)
	r.sessions[id] = &entry{store: store, lastSeen: now}

	r.logger.WithField("session_id", id).Debug("Session created")
	return store
}

// Drop ends a session
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(r.sessions),
		}).Info("Expired sessions swept")
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
