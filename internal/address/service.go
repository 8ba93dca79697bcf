package address

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("address_line1, city and postal_code are required")

// Service orchestrates address operations.
type Service struct {
	repo Repository
}

// ServiceInterface lets the checkout package use addresses without the
// concrete type.
type ServiceInterface interface {
	List(ctx context.Context) ([]Address, error)
	Add(ctx context.Context, a Create) (Address, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Address, error) {
	return s.repo.List(ctx)
}

func (s *Service) Add(ctx context.Context, a Create) (Address, error) {
	if a.AddressLine1 == "" || a.City == "" || a.PostalCode == "" {
		return Address{}, ErrMissingFields
	}
	return s.repo.Add(ctx, a)
}
