package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// UserRepository is the user directory. It owns the email uniqueness
// invariant: Create must enforce it at the storage layer (unique index) so a
// concurrent registration racing past Exists still loses with ErrUserExists.
type UserRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
