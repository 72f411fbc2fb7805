// pkg/memcache/seen_events.go
package mem

import (
	"sync"
	"time"
)

// SeenEventStore remembers gateway event ids that have already been
// processed so replayed webhook deliveries can short-circuit before
// touching the database. The database terminal-state check stays the
// correctness guard; this is only a fast path.
type SeenEventStore interface {
	// MarkSeen records eventID. Returns false if it was already present
	// and not yet expired.
	MarkSeen(eventID string, ttl time.Duration) bool

	Seen(eventID string) bool
}

type seenEntry struct {
	expiresAt time.Time
}

type SeenEvents struct {
	mu   sync.RWMutex
	data map[string]seenEntry
}

func NewSeenEvents() *SeenEvents {
	return &SeenEvents{
		data: make(map[string]seenEntry),
	}
}

func (s *SeenEvents) MarkSeen(eventID string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[eventID]
	if ok && time.Now().Before(e.expiresAt) {
		return false
	}
	s.data[eventID] = seenEntry{expiresAt: time.Now().Add(ttl)}
	return true
}

func (s *SeenEvents) Seen(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[eventID]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	return true
}
