package discount

import (
	"context"
	"time"
)

// Service resolves promo codes against the upstream discount list. The
// lookup itself happens here, not upstream: applying a code is a pure
// client-side decision over a fetched list.
type Service struct {
	repo Repository
}

// ServiceInterface lets the cart package resolve codes without the
// concrete type.
type ServiceInterface interface {
	Find(ctx context.Context, code string, now time.Time) (Discount, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Discount, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, d Discount) (Discount, error) {
	return s.repo.Create(ctx, d)
}

// Find returns the discount matching code at the given instant, ErrNoData
// when the list could not be fetched or is empty, and ErrInvalidCode when
// nothing matches.
func (s *Service) Find(ctx context.Context, code string, now time.Time) (Discount, error) {
	discounts, err := s.repo.List(ctx)
	if err != nil {
		return Discount{}, err
	}
	if len(discounts) == 0 {
		return Discount{}, ErrNoData
	}
	for _, d := range discounts {
		if d.Matches(code, now) {
			return d, nil
		}
	}
	return Discount{}, ErrInvalidCode
}
