package cart

import (
	"context"
	"io"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/catalog"
	"github.com/printfood/storefront/internal/discount"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func priced(id int, price float64, qty int) Item {
	return Item{ID: id, ProductID: id, Quantity: qty, Product: &catalog.Product{ID: id, Price: price}}
}

func TestComputeTotalsTax(t *testing.T) {
	totals := ComputeTotals([]Item{priced(1, 100.00, 1)}, nil)
	if !almostEqual(totals.Subtotal, 100.00) {
		t.Fatalf("subtotal = %v, want 100.00", totals.Subtotal)
	}
	if !almostEqual(totals.Tax, 8.00) {
		t.Fatalf("tax = %v, want 8.00", totals.Tax)
	}
	if !almostEqual(totals.Total, 100.00+8.00+4.99) {
		t.Fatalf("total = %v, want 112.99", totals.Total)
	}
}

func TestComputeTotalsPercentDiscount(t *testing.T) {
	d := &discount.Discount{Code: "SAVE10", DiscountType: discount.TypePercent, Value: 10}
	totals := ComputeTotals([]Item{priced(1, 100.00, 1)}, d)
	if !almostEqual(totals.Discount, 10.00) {
		t.Fatalf("discount = %v, want 10.00", totals.Discount)
	}
	if !almostEqual(totals.Total, 90.00+8.00+4.99) {
		t.Fatalf("total = %v, want 102.99", totals.Total)
	}
}

func TestComputeTotalsFixedDiscountFloorsSubtotal(t *testing.T) {
	// fixed 5 on a 3.00 subtotal: the discount is capped at the subtotal,
	// tax and shipping still apply on top
	d := &discount.Discount{Code: "FLAT5", DiscountType: discount.TypeFixed, Value: 5}
	totals := ComputeTotals([]Item{priced(1, 3.00, 1)}, d)
	if !almostEqual(totals.Discount, 3.00) {
		t.Fatalf("discount = %v, want capped at 3.00", totals.Discount)
	}
	if !almostEqual(totals.Total, 0+3.00*0.08+4.99) {
		t.Fatalf("total = %v, want 5.23", totals.Total)
	}
}

func TestComputeTotalsCustomPriceOverride(t *testing.T) {
	it := priced(1, 12.99, 2)
	it.CustomConfiguration = map[string]any{"finalPrice": 15.50}
	totals := ComputeTotals([]Item{it}, nil)
	if !almostEqual(totals.Subtotal, 31.00) {
		t.Fatalf("subtotal = %v, want finalPrice override 31.00", totals.Subtotal)
	}
}

func newTestService(seed Cart, discounts []discount.Discount, now time.Time) *Service {
	svc := NewService(NewInMemoryRepository(seed), discount.NewService(discount.NewInMemoryRepository(discounts)))
	svc.now = func() time.Time { return now }
	return svc
}

func TestUpdateQuantityGuard(t *testing.T) {
	seed := Cart{ID: 1, UserID: 42, Items: []Item{priced(7, 12.99, 1)}}
	svc := newTestService(seed, nil, time.Now())

	// decrement below 1 is rejected locally and nothing changes
	if _, err := svc.UpdateQuantity(context.Background(), 7, -1); err != ErrQuantityTooLow {
		t.Fatalf("expected ErrQuantityTooLow, got %v", err)
	}
	view, err := svc.GetCart(context.Background())
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if view.Cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity changed to %d despite guard", view.Cart.Items[0].Quantity)
	}

	// a valid increment goes through and the cart is refetched
	view2, err := svc.UpdateQuantity(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view2.Cart.Items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", view2.Cart.Items[0].Quantity)
	}

	if _, err := svc.UpdateQuantity(context.Background(), 999, 1); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterProtectedRoutes(app)
	return app
}

func TestCartRoutes(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seed := Cart{ID: 1, UserID: 42, Items: []Item{priced(7, 100.00, 1)}}
	discounts := []discount.Discount{{
		ID: 1, Code: "SAVE10", Value: 10, DiscountType: discount.TypePercent, IsActive: true,
		StartDate: "2026-01-01T00:00:00Z", EndDate: "2026-12-31T00:00:00Z",
	}}
	handler := NewHandler(newTestService(seed, discounts, now))
	app := makeAppWithCartHandler(handler)

	// GET returns the cart with a computed breakdown
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for GET cart, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"subtotal":100`) {
		t.Fatalf("missing subtotal in body: %s", string(b))
	}

	// decrement at the floor is a 400, no mutation
	req2 := httptest.NewRequest("PUT", "/api/v1/cart/items/7", strings.NewReader(`{"delta":-1}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for quantity floor, got %d", res2.StatusCode)
	}

	// valid promo code returns the discounted breakdown
	req3 := httptest.NewRequest("POST", "/api/v1/cart/discount", strings.NewReader(`{"code":"save10"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid promo, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"discount":10`) {
		t.Fatalf("expected discount 10 in body: %s", string(b3))
	}

	// unknown promo code is rejected inline
	req4 := httptest.NewRequest("POST", "/api/v1/cart/discount", strings.NewReader(`{"code":"NOPE"}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid promo, got %d", res4.StatusCode)
	}

	// remove then verify the cart is empty
	res5, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/cart/items/7", nil))
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if strings.Contains(string(b5), `"product_id":7`) {
		t.Fatalf("expected item removed, got %s", string(b5))
	}
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	handler := NewHandler(newTestService(Cart{ID: 1, UserID: 42}, nil, time.Now()))
	app := makeAppWithCartHandler(handler)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":3}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"quantity":1`) {
		t.Fatalf("expected default quantity 1, got %s", string(b))
	}
}
