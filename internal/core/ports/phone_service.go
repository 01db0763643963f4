package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// CreatePhoneInput carries the fields for a new catalog listing.
type CreatePhoneInput struct {
	Brand         string
	Model         string
	Price         float64
	Description   string
	Condition     string
	StockQuantity int
}

// UpdatePhoneInput is a partial update: nil fields keep their current value.
type UpdatePhoneInput struct {
	Brand         *string
	Model         *string
	Price         *float64
	Description   *string
	Condition     *string
	StockQuantity *int
}

// PhoneService defines the catalog use cases the gate protects.
type PhoneService interface {
	ListPhones(ctx context.Context) ([]domain.Phone, error)
	CreatePhone(ctx context.Context, input CreatePhoneInput) (*domain.Phone, error)
	UpdatePhone(ctx context.Context, id string, input UpdatePhoneInput) (*domain.Phone, error)
	DeletePhone(ctx context.Context, id string) error
}
