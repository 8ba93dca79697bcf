package checkout

import (
	"context"

	"github.com/printfood/storefront/internal/address"
	"github.com/printfood/storefront/internal/order"
	"github.com/printfood/storefront/internal/session"
)

// Orders is the slice of the order service checkout needs to submit.
type Orders interface {
	Place(ctx context.Context, addressID int) (order.Order, error)
	PaymentURL(ctx context.Context, o order.Order) (string, error)
}

// AdvanceRequest carries the shopper's input for the current step. On
// the delivery step either an existing address is selected or a new one
// is supplied inline.
type AdvanceRequest struct {
	SelectedAddressID int             `json:"selected_address_id,omitempty"`
	NewAddress        *address.Create `json:"new_address,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
}

// Service drives the checkout wizard. State transitions never call the
// order endpoint; only Submit does.
type Service struct {
	wizard    *wizardStore
	addresses address.ServiceInterface
	orders    Orders
}

func NewService(store session.Store, addresses address.ServiceInterface, orders Orders) *Service {
	return &Service{wizard: &wizardStore{store: store}, addresses: addresses, orders: orders}
}

// Begin starts (or restarts) the wizard at the delivery step with the
// shopper's saved addresses loaded.
func (s *Service) Begin(ctx context.Context, sid string) (State, error) {
	addrs, err := s.addresses.List(ctx)
	if err != nil {
		return State{}, err
	}
	st := State{
		Step:              StepDelivery,
		Addresses:         addrs,
		RequireNewAddress: len(addrs) == 0,
		PaymentMethod:     "vnpay",
	}
	for _, a := range addrs {
		if a.IsDefault {
			st.SelectedAddressID = a.ID
			break
		}
	}
	if err := s.wizard.save(ctx, sid, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Current returns the in-progress wizard state.
func (s *Service) Current(ctx context.Context, sid string) (State, error) {
	return s.wizard.load(ctx, sid)
}

// Advance moves the wizard one step forward, applying the shopper's
// input for the step it is leaving.
func (s *Service) Advance(ctx context.Context, sid string, req AdvanceRequest) (State, error) {
	st, err := s.wizard.load(ctx, sid)
	if err != nil {
		return State{}, err
	}

	switch st.Step {
	case StepDelivery:
		if req.NewAddress != nil {
			created, err := s.addresses.Add(ctx, *req.NewAddress)
			if err != nil {
				return st, err
			}
			st.Addresses = append(st.Addresses, created)
			st.SelectedAddressID = created.ID
			st.RequireNewAddress = false
		} else if req.SelectedAddressID != 0 {
			if !hasAddress(st.Addresses, req.SelectedAddressID) {
				return st, ErrNoAddress
			}
			st.SelectedAddressID = req.SelectedAddressID
		}
		if st.SelectedAddressID == 0 {
			return st, ErrNoAddress
		}
		st.Step = StepPayment
	case StepPayment:
		if req.PaymentMethod != "" {
			st.PaymentMethod = req.PaymentMethod
		}
		st.Step = StepReview
	case StepReview:
		return st, ErrNotAtReview
	case StepSubmitted:
		return st, ErrAlreadyDone
	}

	if err := s.wizard.save(ctx, sid, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Back moves one step toward delivery; the delivery step is the floor.
func (s *Service) Back(ctx context.Context, sid string) (State, error) {
	st, err := s.wizard.load(ctx, sid)
	if err != nil {
		return State{}, err
	}
	switch st.Step {
	case StepReview:
		st.Step = StepPayment
	case StepPayment:
		st.Step = StepDelivery
	case StepSubmitted:
		return st, ErrAlreadyDone
	}
	if err := s.wizard.save(ctx, sid, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Submit places the order and asks the gateway for a payment URL. Only
// valid from the review step.
func (s *Service) Submit(ctx context.Context, sid string) (State, error) {
	st, err := s.wizard.load(ctx, sid)
	if err != nil {
		return State{}, err
	}
	if st.Step != StepReview {
		return st, ErrNotAtReview
	}

	placed, err := s.orders.Place(ctx, st.SelectedAddressID)
	if err != nil {
		return st, err
	}
	url, err := s.orders.PaymentURL(ctx, placed)
	if err != nil {
		return st, err
	}

	st.Step = StepSubmitted
	st.OrderID = placed.ID
	st.PaymentURL = url
	if err := s.wizard.save(ctx, sid, st); err != nil {
		return State{}, err
	}
	return st, nil
}

func hasAddress(addrs []address.Address, id int) bool {
	for _, a := range addrs {
		if a.ID == id {
			return true
		}
	}
	return false
}
