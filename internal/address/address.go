package address

import (
	"context"
	"errors"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

var ErrNotFound = errors.New("address not found")

// Address mirrors the upstream postal address record.
type Address struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
	Label        string `json:"label,omitempty"`
}

// Create is the payload for a new address.
type Create struct {
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Label        string `json:"label,omitempty"`
}

// Repository provides access to the user's upstream addresses.
type Repository interface {
	List(ctx context.Context) ([]Address, error)
	Add(ctx context.Context, a Create) (Address, error)
}

// UpstreamRepository stores addresses through the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) List(ctx context.Context) ([]Address, error) {
	out := []Address{}
	if err := r.api.Get(ctx, "/users/me/addresses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) Add(ctx context.Context, a Create) (Address, error) {
	var out Address
	if err := r.api.Post(ctx, "/users/me/addresses", a, &out); err != nil {
		return Address{}, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.Mutex
	addresses []Address
	nextID    int
}

func NewInMemoryRepository(seed []Address) *InMemoryRepository {
	maxID := 0
	for _, a := range seed {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return &InMemoryRepository{addresses: append([]Address(nil), seed...), nextID: maxID + 1}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Address(nil), r.addresses...), nil
}

func (r *InMemoryRepository) Add(ctx context.Context, a Create) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := Address{
		ID:           r.nextID,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Label:        a.Label,
	}
	r.addresses = append(r.addresses, created)
	r.nextID++
	return created, nil
}
