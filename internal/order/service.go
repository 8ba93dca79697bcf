package order

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Tracking is the order detail enriched with the display timeline
// position.
type Tracking struct {
	Order
	TrackingStep  int `json:"tracking_step"`
	TrackingOutOf int `json:"tracking_out_of"`
}

// Service orchestrates order history, tracking and reorder.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Tracking, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return Tracking{}, err
	}
	return Tracking{Order: o, TrackingStep: TrackingStep(o.Status), TrackingOutOf: TrackingSteps}, nil
}

// Place creates an upstream order for the address and returns it. Used
// by the checkout flow.
func (s *Service) Place(ctx context.Context, addressID int) (Order, error) {
	return s.repo.Create(ctx, addressID)
}

// PaymentURL asks the payment gateway for a redirect URL covering the
// order total.
func (s *Service) PaymentURL(ctx context.Context, o Order) (string, error) {
	return s.repo.PaymentURL(ctx, NewPaymentURLRequest(o))
}

// Reorder adds every line of a past order back into the cart,
// preserving quantity and custom configuration. The adds run
// concurrently; any failure fails the whole reorder.
func (s *Service) Reorder(ctx context.Context, id int) error {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range o.Items {
		item := item
		g.Go(func() error {
			return s.repo.AddCartItem(gctx, Item{
				ProductID:           item.ProductID,
				Quantity:            item.Quantity,
				CustomConfiguration: item.CustomConfiguration,
			})
		})
	}
	return g.Wait()
}
