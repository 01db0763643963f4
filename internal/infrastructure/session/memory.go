// Package session provides the in-memory session store used in development
// and tests. Production deployments use the Redis-backed store instead.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
)

const janitorInterval = time.Minute

type entry struct {
	session   ports.Session
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded map of live sessions with per-entry expiry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty store. If ttl <= 0 sessions never expire
// on their own and only Destroy removes them.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, userID string, role domain.Role) (string, error) {
	id := uuid.NewString()

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[id] = entry{session: ports.Session{UserID: userID, Role: role}, expiresAt: expires}
	m.mu.Unlock()
	return id, nil
}

func (m *MemoryStore) Lookup(_ context.Context, sessionID string) (*ports.Session, error) {
	m.mu.RLock()
	e, ok := m.entries[sessionID]
	m.mu.RUnlock()

	if !ok || m.expired(e) {
		return nil, domain.ErrSessionNotFound
	}
	s := e.session
	return &s, nil
}

func (m *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.entries, sessionID)
	m.mu.Unlock()
	return nil
}

// StartJanitor sweeps expired entries until ctx is cancelled. Lookup already
// treats expired entries as absent; the sweep only reclaims memory.
func (m *MemoryStore) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *MemoryStore) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
		}
	}
}

func (m *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && m.now().After(e.expiresAt)
}
