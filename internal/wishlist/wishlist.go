package wishlist

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/printfood/storefront/internal/catalog"
	"github.com/printfood/storefront/internal/upstream"
)

var ErrNotFound = errors.New("wishlist entry not found")

// Entry is a saved product on the shopper's wishlist.
type Entry struct {
	ID        int              `json:"id"`
	UserID    int              `json:"user_id"`
	ProductID int              `json:"product_id"`
	CreatedAt string           `json:"created_at,omitempty"`
	Product   *catalog.Product `json:"product,omitempty"`
}

// Repository provides access to the user's upstream wishlist.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, productID int) (Entry, error)
	Remove(ctx context.Context, productID int) error
}

// UpstreamRepository stores the wishlist through the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) List(ctx context.Context) ([]Entry, error) {
	out := []Entry{}
	if err := r.api.Get(ctx, "/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) Add(ctx context.Context, productID int) (Entry, error) {
	var out Entry
	if err := r.api.Post(ctx, "/wishlist", map[string]int{"product_id": productID}, &out); err != nil {
		return Entry{}, err
	}
	return out, nil
}

func (r *UpstreamRepository) Remove(ctx context.Context, productID int) error {
	err := r.api.Delete(ctx, "/wishlist/"+strconv.Itoa(productID), nil)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
			return ErrNotFound
		}
	}
	return err
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
	nextID  int
}

func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	maxID := 0
	for _, e := range seed {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return &InMemoryRepository{entries: append([]Entry(nil), seed...), nextID: maxID + 1}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...), nil
}

func (r *InMemoryRepository) Add(ctx context.Context, productID int) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ProductID == productID {
			return e, nil
		}
	}
	e := Entry{ID: r.nextID, ProductID: productID}
	r.entries = append(r.entries, e)
	r.nextID++
	return e, nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
