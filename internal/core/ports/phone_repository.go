package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// PhoneRepository persists catalog listings.
type PhoneRepository interface {
	List(ctx context.Context) ([]domain.Phone, error)
	Insert(ctx context.Context, phone *domain.Phone) (*domain.Phone, error)
	FindByID(ctx context.Context, id string) (*domain.Phone, error)
	Update(ctx context.Context, phone *domain.Phone) error
	Delete(ctx context.Context, id string) error
}
