package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	Role        string
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
}

// AuthService defines the authentication use cases.
//
// Register never creates a session: a successful registration still requires
// a subsequent Login. Login returns the session id so the transport layer can
// attach it to the response (a cookie, in the HTTP adapter). Logout is
// idempotent and succeeds even when the session is already gone.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
}
