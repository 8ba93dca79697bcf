package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

var ErrNotFound = errors.New("product not found")

// Product mirrors the upstream catalog record. The storefront never edits
// these; price and stock are authoritative upstream.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	ModelFile   *string    `json:"model_file,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	CategoryID  int        `json:"category_id"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []int      `json:"tags,omitempty"`
	Variants    []Variant  `json:"variants,omitempty"`
	Nutritions  *Nutrition `json:"nutritions,omitempty"`
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ParentID    *int    `json:"parent_id,omitempty"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Variant struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Query carries the browse/search filters forwarded upstream.
type Query struct {
	Search     string
	CategoryID string
	TagID      string
}

// Repository provides read-only catalog access.
type Repository interface {
	ListProducts(ctx context.Context, q Query) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListTags(ctx context.Context) ([]Tag, error)
}

// UpstreamRepository reads the catalog from the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) ListProducts(ctx context.Context, q Query) ([]Product, error) {
	params := upstream.Params{}
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.CategoryID != "" {
		params["category_id"] = q.CategoryID
	}
	if q.TagID != "" {
		params["tag_id"] = q.TagID
	}

	out := []Product{}
	if err := r.api.Get(ctx, "/catalog/products", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) GetProduct(ctx context.Context, id int) (Product, error) {
	var out Product
	err := r.api.Get(ctx, "/catalog/products/"+itoa(id), nil, &out)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return out, nil
}

func (r *UpstreamRepository) ListCategories(ctx context.Context) ([]Category, error) {
	out := []Category{}
	if err := r.api.Get(ctx, "/catalog/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) ListTags(ctx context.Context) ([]Tag, error) {
	out := []Tag{}
	if err := r.api.Get(ctx, "/catalog/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	tags       []Tag
}

func NewInMemoryRepository(products []Product, categories []Category, tags []Tag) *InMemoryRepository {
	return &InMemoryRepository{products: products, categories: categories, tags: tags}
}

func (r *InMemoryRepository) ListProducts(ctx context.Context, q Query) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Search != "" && !containsFold(p.Name, q.Search) {
			continue
		}
		if q.CategoryID != "" && itoa(p.CategoryID) != q.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *InMemoryRepository) GetProduct(ctx context.Context, id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Category(nil), r.categories...), nil
}

func (r *InMemoryRepository) ListTags(ctx context.Context) ([]Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Tag(nil), r.tags...), nil
}
