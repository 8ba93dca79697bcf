package feedback

import (
	"context"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

// Feedback is a product review submitted by the shopper.
type Feedback struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Create is the payload for a new review.
type Create struct {
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// Repository submits reviews to the commerce backend.
type Repository interface {
	Submit(ctx context.Context, f Create) (Feedback, error)
}

// UpstreamRepository submits reviews through the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) Submit(ctx context.Context, f Create) (Feedback, error) {
	var out Feedback
	if err := r.api.Post(ctx, "/feedback", f, &out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.Mutex
	Received []Create
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Submit(ctx context.Context, f Create) (Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Received = append(r.Received, f)
	created := Feedback{ID: r.nextID, ProductID: f.ProductID, Rating: f.Rating, Comment: f.Comment}
	r.nextID++
	return created, nil
}
