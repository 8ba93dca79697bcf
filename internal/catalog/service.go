package catalog

import "context"

// Service orchestrates catalog reads.
type Service struct {
	repo Repository
}

// ServiceInterface lets other packages (configurator) depend on catalog
// reads without the concrete type.
type ServiceInterface interface {
	GetProduct(ctx context.Context, id int) (Product, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context, q Query) ([]Product, error) {
	return s.repo.ListProducts(ctx, q)
}

func (s *Service) GetProduct(ctx context.Context, id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	return s.repo.ListTags(ctx)
}
