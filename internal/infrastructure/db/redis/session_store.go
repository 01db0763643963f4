package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps sessions in Redis under session:<id>, each entry
// expiring after the configured TTL. An expired entry is indistinguishable
// from a destroyed one.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client. If ttl <= 0,
// defaultSessionTTL is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

type sessionRecord struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Create stores a new session and returns its unguessable id.
func (s *SessionStore) Create(ctx context.Context, userID string, role domain.Role) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(sessionRecord{UserID: userID, Role: string(role)})
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Lookup resolves a session id to its identity snapshot.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (*ports.Session, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetch session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &ports.Session{UserID: rec.UserID, Role: domain.Role(rec.Role)}, nil
}

// Destroy removes the session. Removing an absent session is not an error.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
