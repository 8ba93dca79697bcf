package checkout

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/printfood/storefront/internal/address"
	"github.com/printfood/storefront/internal/session"
)

// Wizard steps, in order. The flow only moves one step at a time.
const (
	StepDelivery  = "delivery"
	StepPayment   = "payment"
	StepReview    = "review"
	StepSubmitted = "submitted"
)

var (
	ErrNoAddress     = errors.New("select or add a delivery address")
	ErrNotInProgress = errors.New("no checkout in progress")
	ErrNotAtReview   = errors.New("checkout is not at the review step")
	ErrAlreadyDone   = errors.New("checkout already submitted")
)

// State is the per-session wizard state. It lives in the session store
// so a page reload resumes where the shopper left off.
type State struct {
	Step              string            `json:"step"`
	Addresses         []address.Address `json:"addresses"`
	SelectedAddressID int               `json:"selected_address_id,omitempty"`
	RequireNewAddress bool              `json:"require_new_address"`
	PaymentMethod     string            `json:"payment_method"`
	OrderID           int               `json:"order_id,omitempty"`
	PaymentURL        string            `json:"payment_url,omitempty"`
}

// wizardStore persists wizard state as JSON next to the session record,
// keyed so it expires with the session.
type wizardStore struct {
	store session.Store
}

func (w *wizardStore) key(sid string) string { return "checkout:" + sid }

func (w *wizardStore) save(ctx context.Context, sid string, st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return w.store.Put(ctx, w.key(sid), string(raw))
}

func (w *wizardStore) load(ctx context.Context, sid string) (State, error) {
	raw, err := w.store.Get(ctx, w.key(sid))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return State{}, ErrNotInProgress
		}
		return State{}, err
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (w *wizardStore) clear(ctx context.Context, sid string) error {
	return w.store.Delete(ctx, w.key(sid))
}
