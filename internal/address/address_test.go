package address

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAddressRoutes(t *testing.T) {
	seed := []Address{{ID: 1, UserID: 42, AddressLine1: "123 Main St", City: "New York", PostalCode: "10001", Label: "Home"}}
	handler := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	handler.RegisterProtectedRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/addresses", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "123 Main St") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	// missing required fields rejected
	req2 := httptest.NewRequest("POST", "/api/v1/addresses", strings.NewReader(`{"label":"Work"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", res2.StatusCode)
	}

	// valid create returns the new id
	body := `{"address_line1":"9 Elm St","city":"Boston","postal_code":"02101","country":"US"}`
	req3 := httptest.NewRequest("POST", "/api/v1/addresses", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"id":2`) {
		t.Fatalf("expected assigned id, got %s", string(b3))
	}
}
