package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/printfood/storefront/internal/catalog"
	"github.com/printfood/storefront/internal/upstream"
)

var ErrItemNotFound = errors.New("cart item not found")

// Cart mirrors the upstream cart record. It is fetched wholesale on every
// read and replaced after every mutation; nothing is cached between
// requests.
type Cart struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Items  []Item `json:"items"`
}

// Item is a cart line. CustomConfiguration carries the configurator's
// slider state; a "finalPrice" number inside it overrides the product
// price for this line.
type Item struct {
	ID                  int              `json:"id"`
	CartID              int              `json:"cart_id"`
	ProductID           int              `json:"product_id"`
	Quantity            int              `json:"quantity"`
	CustomConfiguration map[string]any   `json:"custom_configuration,omitempty"`
	Product             *catalog.Product `json:"product,omitempty"`
}

/// UnitPrice resolves the effective line price: configurator override
// first, then the catalog price.
func (it Item) UnitPrice() float64 {
	if it.CustomConfiguration != nil {
		if v, ok := it.CustomConfiguration["finalPrice"].(float64); ok && v > 0 {
			return v
		}
	}
	if it.Product != nil {
		return it.Product.Price
	}
	return 0
}

// ItemCreate is the payload for adding a line to the cart.
type ItemCreate struct {
	ProductID           int            `json:"product_id"`
	Quantity            int            `json:"quantity"`
	CustomConfiguration map[string]any `json:"custom_configuration,omitempty"`
}

// Repository provides access to the user's upstream cart.
type Repository interface {
	GetCart(ctx context.Context) (Cart, error)
	AddItem(ctx context.Context, item ItemCreate) error
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	RemoveItem(ctx context.Context, itemID int) error
}

// UpstreamRepository mutates the cart through the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) GetCart(ctx context.Context) (Cart, error) {
	var out Cart
	if err := r.api.Get(ctx, "/cart", nil, &out); err != nil {
		return Cart{}, err
	}
	return out, nil
}

func (r *UpstreamRepository) AddItem(ctx context.Context, item ItemCreate) error {
	return r.api.Post(ctx, "/cart/items", item, nil)
}

func (r *UpstreamRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	err := r.api.Put(ctx, "/cart/items/"+itoa(itemID), map[string]int{"quantity": quantity}, nil)
	if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
		return ErrItemNotFound
	}
	return err
}

func (r *UpstreamRepository) RemoveItem(ctx context.Context, itemID int) error {
	err := r.api.Delete(ctx, "/cart/items/"+itoa(itemID), nil)
	if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
		return ErrItemNotFound
	}
	return err
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.Mutex
	cart   Cart
	nextID int
}

func NewInMemoryRepository(seed Cart) *InMemoryRepository {
	maxID := 0
	for _, it := range seed.Items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return &InMemoryRepository{cart: seed, nextID: maxID + 1}
}

func (r *InMemoryRepository) GetCart(ctx context.Context) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.cart
	out.Items = append([]Item(nil), r.cart.Items...)
	return out, nil
}

func (r *InMemoryRepository) AddItem(ctx context.Context, item ItemCreate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.Items = append(r.cart.Items, Item{
		ID:                  r.nextID,
		CartID:              r.cart.ID,
		ProductID:           item.ProductID,
		Quantity:            item.Quantity,
		CustomConfiguration: item.CustomConfiguration,
	})
	r.nextID++
	return nil
}

func (r *InMemoryRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cart.Items {
		if r.cart.Items[i].ID == itemID {
			r.cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) RemoveItem(ctx context.Context, itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cart.Items {
		if r.cart.Items[i].ID == itemID {
			r.cart.Items = append(r.cart.Items[:i], r.cart.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}
