package service

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
)

// PhoneService implements the catalog use cases.
type PhoneService struct {
	repo ports.PhoneRepository
}

func NewPhoneService(repo ports.PhoneRepository) *PhoneService {
	return &PhoneService{repo: repo}
}

func (s *PhoneService) ListPhones(ctx context.Context) ([]domain.Phone, error) {
	return s.repo.List(ctx)
}

func (s *PhoneService) CreatePhone(ctx context.Context, input ports.CreatePhoneInput) (*domain.Phone, error) {
	if input.Brand == "" || input.Model == "" || input.Price <= 0 || input.StockQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Insert(ctx, &domain.Phone{
		Brand:         input.Brand,
		Model:         input.Model,
		Price:         input.Price,
		Description:   input.Description,
		Condition:     input.Condition,
		StockQuantity: input.StockQuantity,
	})
}

// UpdatePhone applies a partial update: nil fields keep the stored value.
// The merged document is re-validated before persisting.
func (s *PhoneService) UpdatePhone(ctx context.Context, id string, input ports.UpdatePhoneInput) (*domain.Phone, error) {
	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Brand != nil {
		phone.Brand = *input.Brand
	}
	if input.Model != nil {
		phone.Model = *input.Model
	}
	if input.Price != nil {
		phone.Price = *input.Price
	}
	if input.Description != nil {
		phone.Description = *input.Description
	}
	if input.Condition != nil {
		phone.Condition = *input.Condition
	}
	if input.StockQuantity != nil {
		phone.StockQuantity = *input.StockQuantity
	}

	if phone.Price <= 0 || phone.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, phone); err != nil {
		return nil, err
	}
	return phone, nil
}

func (s *PhoneService) DeletePhone(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
