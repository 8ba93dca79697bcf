package order

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

var ErrNotFound = errors.New("order not found")

// Order mirrors the upstream order record. Status is free text owned by
// the backend; the storefront only maps it onto the display timeline.
type Order struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	AddressID     int     `json:"address_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Subtotal      float64 `json:"subtotal"`
	TotalAmount   float64 `json:"total_amount"`
	CreatedAt     string  `json:"created_at"`
	Items         []Item  `json:"items"`
}

type Item struct {
	ID                  int            `json:"id"`
	ProductID           int            `json:"product_id"`
	Quantity            int            `json:"quantity"`
	CustomConfiguration map[string]any `json:"custom_configuration,omitempty"`
}

// TrackingSteps is the fixed display timeline length.
const TrackingSteps = 5

// TrackingStep maps a backend status string onto the 5-step display
// timeline by keyword. Unrecognized statuses fall back to step 1 so a new
// backend status never breaks the page.
func TrackingStep(status string) int {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "delivered"):
		return 5
	case strings.Contains(s, "shipped"), strings.Contains(s, "transit"):
		return 4
	case strings.Contains(s, "ready"), strings.Contains(s, "quality"):
		return 3
	case strings.Contains(s, "confirmed"), strings.Contains(s, "processing"), strings.Contains(s, "printing"):
		return 2
	default:
		return 1
	}
}

// PaymentURLRequest is the VNPay payment-URL request forwarded upstream.
// vnp_Amount is in minor units (total x 100) per the gateway schema.
type PaymentURLRequest struct {
	Amount    string `json:"vnp_Amount"`
	TxnRef    string `json:"vnp_TxnRef"`
	OrderInfo string `json:"vnp_OrderInfo"`
}

// NewPaymentURLRequest builds the gateway payload for a created order.
func NewPaymentURLRequest(o Order) PaymentURLRequest {
	return PaymentURLRequest{
		Amount:    strconv.FormatInt(int64(math.Round(o.TotalAmount*100)), 10),
		TxnRef:    strconv.Itoa(o.ID),
		OrderInfo: "PrintFood order #" + strconv.Itoa(o.ID),
	}
}

// Repository provides access to the user's upstream orders.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int) (Order, error)
	Create(ctx context.Context, addressID int) (Order, error)
	PaymentURL(ctx context.Context, req PaymentURLRequest) (string, error)
	AddCartItem(ctx context.Context, item Item) error
}

// UpstreamRepository reads and creates orders through the commerce
// backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) List(ctx context.Context) ([]Order, error) {
	out := []Order{}
	if err := r.api.Get(ctx, "/order", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) Get(ctx context.Context, id int) (Order, error) {
	var out Order
	err := r.api.Get(ctx, "/order/"+strconv.Itoa(id), nil, &out)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return out, nil
}

func (r *UpstreamRepository) Create(ctx context.Context, addressID int) (Order, error) {
	var out Order
	if err := r.api.Post(ctx, "/order", map[string]int{"address_id": addressID}, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

type paymentURLResponse struct {
	PaymentURL string `json:"payment_url"`
}

func (r *UpstreamRepository) PaymentURL(ctx context.Context, req PaymentURLRequest) (string, error) {
	var out paymentURLResponse
	if err := r.api.Post(ctx, "/order/payment_url", req, &out); err != nil {
		return "", err
	}
	return out.PaymentURL, nil
}

func (r *UpstreamRepository) AddCartItem(ctx context.Context, item Item) error {
	return r.api.Post(ctx, "/cart/items", map[string]any{
		"product_id":           item.ProductID,
		"quantity":             item.Quantity,
		"custom_configuration": item.CustomConfiguration,
	}, nil)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.Mutex
	orders   []Order
	nextID   int
	CartAdds []Item // records reorder fan-out calls
	FailAdd  map[int]bool
	PayBase  string
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	maxID := 0
	for _, o := range seed {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return &InMemoryRepository{
		orders:  append([]Order(nil), seed...),
		nextID:  maxID + 1,
		FailAdd: map[int]bool{},
		PayBase: "https://pay.example.com/checkout",
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Order(nil), r.orders...), nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, addressID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := Order{ID: r.nextID, AddressID: addressID, Status: "pending", PaymentStatus: "unpaid"}
	r.orders = append(r.orders, o)
	r.nextID++
	return o, nil
}

func (r *InMemoryRepository) PaymentURL(ctx context.Context, req PaymentURLRequest) (string, error) {
	return r.PayBase + "?vnp_TxnRef=" + req.TxnRef + "&vnp_Amount=" + req.Amount, nil
}

func (r *InMemoryRepository) AddCartItem(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAdd[item.ProductID] {
		return errors.New("add to cart failed")
	}
	r.CartAdds = append(r.CartAdds, item)
	return nil
}
