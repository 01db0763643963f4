package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
	"github.com/usedphones/phoneshop-api/internal/pkg/password"
)

// AuthService implements registration, login, and logout on top of the user
// directory and the session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	hasher   password.Hasher
	audit    ports.AuditSink
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, hasher password.Hasher, audit ports.AuditSink) *AuthService {
	return &AuthService{users: users, sessions: sessions, hasher: hasher, audit: audit}
}

// normalizeEmail makes email the case-insensitive unique key: trimmed and
// lowercased before any directory call.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. It never creates a session: trust is only
// established by a subsequent Login.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	// Fast duplicate check; the unique index on email still decides the
	// winner when two registrations race past this point.
	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		Role:           role,
		PasswordDigest: digest,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Address:        input.Address,
		PhoneNumber:    input.PhoneNumber,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Kind: domain.EventRegistered, Subject: email, UserID: created.ID})
	return created, nil
}

// Login verifies the credentials and, on success, creates a session bound to
// the user's id and current role. An unknown email and a wrong password are
// deliberately indistinguishable: both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEvent{Kind: domain.EventLoginFailed, Subject: email})
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(pass, user.PasswordDigest) {
		s.record(domain.AuthEvent{Kind: domain.EventLoginFailed, Subject: email, UserID: user.ID})
		return "", nil, domain.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuthEvent{Kind: domain.EventLoginSucceeded, Subject: email, UserID: user.ID})
	return sessionID, user, nil
}

// Logout destroys the session unconditionally. Destroying an absent session,
// or logging out with no session at all, is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	// Resolve the identity first so the audit entry can name it; a miss
	// just means there is nothing to record.
	sess, _ := s.sessions.Lookup(ctx, sessionID)
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return err
	}
	if sess != nil {
		s.record(domain.AuthEvent{Kind: domain.EventLogout, UserID: sess.UserID})
	}
	return nil
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Record(event)
}
