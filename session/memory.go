package session

import (
	"context"
	"sync"
	"time"

	"spice-garden/models"
)

type memoryEntry struct {
	lines        []models.OrderLine
	lastActivity time.Time
}

// MemoryStore keeps session ledgers in process memory. Entries idle for
// longer than the TTL are removed by the cleanup routine.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]models.OrderLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	lines := make([]models.OrderLine, len(e.lines))
	copy(lines, e.lines)
	return lines, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lines []models.OrderLine) error {
	stored := make([]models.OrderLine, len(lines))
	copy(stored, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = &memoryEntry{lines: stored, lastActivity: time.Now()}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// CleanupExpired removes entries whose last activity is older than the TTL.
func (s *MemoryStore) CleanupExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if now.Sub(e.lastActivity) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// StartCleanupRoutine sweeps expired sessions once a minute until ctx is
// cancelled.
func (s *MemoryStore) StartCleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanupExpired(time.Now())
		}
	}
}
