package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	principal Principal
	expiresAt time.Time
}

// MemoryStore is an in-process session store for single-instance
// deployments and tests. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu          sync.Mutex
	entries     map[string]memoryEntry
	idleTimeout time.Duration
	now         func() time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(idleTimeout time.Duration) *MemoryStore {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &MemoryStore{
		entries:     make(map[string]memoryEntry),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Get retrieves the principal for a session id and refreshes its idle
// timeout. Returns (nil, nil) when the session is unknown or expired.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}

	if s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, nil
	}

	entry.expiresAt = s.now().Add(s.idleTimeout)
	s.entries[sessionID] = entry

	principal := entry.principal
	return &principal, nil
}

// Set stores the principal under the session id with the idle timeout.
func (s *MemoryStore) Set(_ context.Context, sessionID string, principal *Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		principal: *principal,
		expiresAt: s.now().Add(s.idleTimeout),
	}
	return nil
}

// Clear removes the session record. Clearing an absent session is a no-op.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
