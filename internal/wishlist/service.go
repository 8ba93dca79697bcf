package wishlist

import "context"

// Service orchestrates wishlist operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Add(ctx context.Context, productID int) (Entry, error) {
	return s.repo.Add(ctx, productID)
}

func (s *Service) Remove(ctx context.Context, productID int) error {
	return s.repo.Remove(ctx, productID)
}
