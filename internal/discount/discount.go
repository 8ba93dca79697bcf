package discount

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/printfood/storefront/internal/upstream"
)

var (
	// ErrInvalidCode covers unknown, inactive and out-of-window codes alike;
	// the client only ever sees one inline message.
	ErrInvalidCode = errors.New("invalid or expired promo code")
	ErrNoData      = errors.New("discount list not loaded")
)

const (
	TypePercent = "percent"
	TypeFixed   = "fixed"
)

// Discount mirrors the upstream promo record.
type Discount struct {
	ID           int     `json:"id"`
	Code         string  `json:"code"`
	Value        float64 `json:"value"`
	DiscountType string  `json:"discount_type"`
	IsActive     bool    `json:"is_active"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

// Matches reports whether the code applies at the given instant: trimmed
// case-insensitive equality, active flag, and now inside the validity
// window with both endpoints inclusive.
func (d Discount) Matches(code string, now time.Time) bool {
	if !strings.EqualFold(strings.TrimSpace(d.Code), strings.TrimSpace(code)) {
		return false
	}
	if !d.IsActive {
		return false
	}
	start, err := parseDate(d.StartDate)
	if err != nil {
		return false
	}
	end, err := parseDate(d.EndDate)
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// parseDate accepts the RFC 3339 timestamps the upstream emits, with a
// date-only fallback.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Repository provides access to the upstream discount list.
type Repository interface {
	List(ctx context.Context) ([]Discount, error)
	Create(ctx context.Context, d Discount) (Discount, error)
}

// UpstreamRepository reads discounts from the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) List(ctx context.Context) ([]Discount, error) {
	out := []Discount{}
	if err := r.api.Get(ctx, "/discounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) Create(ctx context.Context, d Discount) (Discount, error) {
	var out Discount
	if err := r.api.Post(ctx, "/discounts", d, &out); err != nil {
		return Discount{}, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	discounts []Discount
}

func NewInMemoryRepository(seed []Discount) *InMemoryRepository {
	return &InMemoryRepository{discounts: append([]Discount(nil), seed...)}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Discount(nil), r.discounts...), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, d Discount) (Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = len(r.discounts) + 1
	r.discounts = append(r.discounts, d)
	return d, nil
}
