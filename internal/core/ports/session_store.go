package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// Session is the ephemeral binding created at login: an unguessable id
// resolving to the user and the role snapshot taken at login time. The role
// is not refreshed if the underlying account's role changes later.
type Session struct {
	UserID string
	Role   domain.Role
}

// SessionStore owns the session lifecycle. Lookup on an expired session
// behaves exactly like lookup on a destroyed one (ErrSessionNotFound).
// Destroy is idempotent: destroying an absent session is not an error.
type SessionStore interface {
	Create(ctx context.Context, userID string, role domain.Role) (string, error)
	Lookup(ctx context.Context, sessionID string) (*Session, error)
	Destroy(ctx context.Context, sessionID string) error
}
