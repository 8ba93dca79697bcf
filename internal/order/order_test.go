package order

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestTrackingStep(t *testing.T) {
	cases := map[string]int{
		"Delivered":          5,
		"shipped":            4,
		"In Transit":         4,
		"Ready for Delivery": 3,
		"quality_check":      3,
		"Confirmed":          2,
		"processing":         2,
		"3D Printing":        2,
		"pending":            1,
		"some_future_status": 1,
		"":                   1,
	}
	for status, want := range cases {
		if got := TrackingStep(status); got != want {
			t.Fatalf("TrackingStep(%q) = %d, want %d", status, got, want)
		}
	}
}

func TestPaymentURLRequestUsesMinorUnits(t *testing.T) {
	req := NewPaymentURLRequest(Order{ID: 7, TotalAmount: 42.5})
	if req.Amount != "4250" {
		t.Fatalf("expected amount 4250, got %s", req.Amount)
	}
	if req.TxnRef != "7" {
		t.Fatalf("expected txn ref 7, got %s", req.TxnRef)
	}
}

func TestReorderAddsEveryLine(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{
		ID: 3,
		Items: []Item{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1, CustomConfiguration: map[string]any{"meatPercentage": float64(70)}},
		},
	}})
	service := NewService(repo)

	if err := service.Reorder(context.Background(), 3); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(repo.CartAdds) != 2 {
		t.Fatalf("expected 2 cart adds, got %d", len(repo.CartAdds))
	}
	for _, added := range repo.CartAdds {
		if added.ProductID == 11 {
			if added.CustomConfiguration["meatPercentage"] != float64(70) {
				t.Fatalf("custom configuration not preserved: %v", added.CustomConfiguration)
			}
		}
	}
}

func TestReorderFailsWhenAnyAddFails(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{
		ID:    3,
		Items: []Item{{ProductID: 10, Quantity: 2}, {ProductID: 11, Quantity: 1}},
	}})
	repo.FailAdd[11] = true
	service := NewService(repo)

	if err := service.Reorder(context.Background(), 3); err == nil {
		t.Fatal("expected reorder to fail")
	}
}

func TestOrderRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{ID: 1, Status: "shipped", TotalAmount: 30}})
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterProtectedRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders/1", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"tracking_step":4`) {
		t.Fatalf("expected tracking step 4, got %s", string(b2))
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders/99", nil))
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res3.StatusCode)
	}

	res4, _ := app.Test(httptest.NewRequest("POST", "/api/v1/orders/1/reorder", nil))
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"/cart"`) {
		t.Fatalf("expected cart redirect, got %s", string(b4))
	}
}
