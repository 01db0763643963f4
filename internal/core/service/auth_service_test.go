package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
	"github.com/usedphones/phoneshop-api/internal/pkg/password"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Exists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", len(r.users)+1)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubSessionStore struct {
	sessions map[string]ports.Session
	next     int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]ports.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, userID string, role domain.Role) (string, error) {
	s.next++
	id := fmt.Sprintf("sess_%d", s.next)
	s.sessions[id] = ports.Session{UserID: userID, Role: role}
	return id, nil
}

func (s *stubSessionStore) Lookup(_ context.Context, sessionID string) (*ports.Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestService() (*AuthService, *stubUserRepo, *stubSessionStore) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, password.SHA256Hasher{}, nil)
	return svc, repo, sessions
}

func register(t *testing.T, svc *AuthService, email, pass string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    email,
		Password: pass,
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, sessions := newTestService()

	user := register(t, svc, "Alice@Example.com ", "pass123", domain.RoleCustomer)
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordDigest == "pass123" || user.PasswordDigest == "" {
		t.Fatalf("password not hashed: %q", user.PasswordDigest)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("register must not create a session")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", Password: "p", Role: "customer"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "", Role: "customer"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p", Role: "superuser"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, repo, _ := newTestService()

	register(t, svc, "bob@example.com", "pass", domain.RoleCustomer)
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "BOB@example.com",
		Password: "other",
		Role:     "customer",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user row, got %d", len(repo.users))
	}
}

// lockedUserRepo serializes mutations the way a real store's uniqueness
// constraint does, so racing registrations exercise the conflict path.
type lockedUserRepo struct {
	mu    sync.Mutex
	inner *stubUserRepo
}

func (r *lockedUserRepo) Exists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Exists(ctx, email)
}

func (r *lockedUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Create(ctx, user)
}

func (r *lockedUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.FindByEmail(ctx, email)
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	repo := &lockedUserRepo{inner: newStubUserRepo()}
	svc := NewAuthService(repo, newStubSessionStore(), password.SHA256Hasher{}, nil)

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), ports.RegisterInput{
				Email:    "race@example.com",
				Password: "p",
				Role:     "customer",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case domain.ErrUserExists:
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one winner, got %d", ok)
	}
	if conflict != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflict)
	}
	if len(repo.inner.users) != 1 {
		t.Fatalf("expected exactly one user row, got %d", len(repo.inner.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, sessions := newTestService()
	registered := register(t, svc, "carol@example.com", "s3cret", domain.RoleAdmin)

	sessionID, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sessionID == "" {
		t.Fatalf("expected session id")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	sess, err := sessions.Lookup(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("session lookup failed: %v", err)
	}
	if sess.UserID != registered.ID || sess.Role != domain.RoleAdmin {
		t.Fatalf("session snapshot mismatch: %+v", sess)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	svc, _, sessions := newTestService()
	register(t, svc, "dave@example.com", "goodpass", domain.RoleCustomer)

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass != noUser {
		t.Fatalf("failure modes must be indistinguishable: %v vs %v", wrongPass, noUser)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("failed login must not create a session")
	}
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	svc, _, sessions := newTestService()
	register(t, svc, "erin@example.com", "p", domain.RoleCustomer)

	sessionID, _, err := svc.Login(context.Background(), "erin@example.com", "p")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Lookup(context.Background(), sessionID); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _, _ := newTestService()

	if err := svc.Logout(context.Background(), "never-existed"); err != nil {
		t.Fatalf("logout of absent session returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), "never-existed"); err != nil {
		t.Fatalf("second logout returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout with no session returned error: %v", err)
	}
}
