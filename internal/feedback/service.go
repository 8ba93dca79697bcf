package feedback

import (
	"context"
	"errors"
)

var (
	ErrMissingProduct = errors.New("product_id is required")
	ErrBadRating      = errors.New("rating must be between 1 and 5")
)

// Service validates and submits product reviews.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, f Create) (Feedback, error) {
	if f.ProductID == 0 {
		return Feedback{}, ErrMissingProduct
	}
	if f.Rating < 1 || f.Rating > 5 {
		return Feedback{}, ErrBadRating
	}
	return s.repo.Submit(ctx, f)
}
