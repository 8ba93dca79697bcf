package cart

import (
	"context"
	"errors"
	"time"

	"github.com/printfood/storefront/internal/discount"
)

var ErrQuantityTooLow = errors.New("quantity cannot go below 1")

// View is what the cart endpoints return: the fetched cart plus the
// computed price breakdown, and the applied discount when a promo code
// was resolved.
type View struct {
	Cart     Cart               `json:"cart"`
	Totals   Totals             `json:"totals"`
	Discount *discount.Discount `json:"discount,omitempty"`
}

// Service orchestrates cart reads and mutations. Every mutation is
// followed by a wholesale refetch, mirroring the upstream-owned state
// model: the service never edits lines locally.
type Service struct {
	repo      Repository
	discounts discount.ServiceInterface
	now       func() time.Time
}

func NewService(repo Repository, discounts discount.ServiceInterface) *Service {
	return &Service{repo: repo, discounts: discounts, now: time.Now}
}

func (s *Service) GetCart(ctx context.Context) (View, error) {
	c, err := s.repo.GetCart(ctx)
	if err != nil {
		return View{}, err
	}
	return View{Cart: c, Totals: ComputeTotals(c.Items, nil)}, nil
}

func (s *Service) AddItem(ctx context.Context, item ItemCreate) (View, error) {
	if item.Quantity < 1 {
		return View{}, ErrQuantityTooLow
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return View{}, err
	}
	return s.GetCart(ctx)
}

// UpdateQuantity applies a signed delta to a line's quantity. The floor is
// enforced locally before the upstream call: a delta that would push the
// quantity below 1 is rejected and nothing is sent.
func (s *Service) UpdateQuantity(ctx context.Context, itemID, delta int) (View, error) {
	c, err := s.repo.GetCart(ctx)
	if err != nil {
		return View{}, err
	}

	current := 0
	found := false
	for _, it := range c.Items {
		if it.ID == itemID {
			current = it.Quantity
			found = true
			break
		}
	}
	if !found {
		return View{}, ErrItemNotFound
	}

	next := current + delta
	if next < 1 {
		return View{}, ErrQuantityTooLow
	}

	if err := s.repo.UpdateItemQuantity(ctx, itemID, next); err != nil {
		return View{}, err
	}
	return s.GetCart(ctx)
}

func (s *Service) RemoveItem(ctx context.Context, itemID int) (View, error) {
	if err := s.repo.RemoveItem(ctx, itemID); err != nil {
		return View{}, err
	}
	return s.GetCart(ctx)
}

// ApplyDiscount resolves the promo code locally against the fetched
// discount list and returns the cart with the discounted breakdown. The
// upstream is never asked to apply anything.
func (s *Service) ApplyDiscount(ctx context.Context, code string) (View, error) {
	found, err := s.discounts.Find(ctx, code, s.now())
	if err != nil {
		return View{}, err
	}

	c, err := s.repo.GetCart(ctx)
	if err != nil {
		return View{}, err
	}

	return View{
		Cart:     c,
		Totals:   ComputeTotals(c.Items, &found),
		Discount: &found,
	}, nil
}
