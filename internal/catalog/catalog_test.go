package catalog

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	products := []Product{
		{ID: 1, Name: "Margherita Classica", Price: 10.50, CategoryID: 1, IsActive: true},
		{ID: 2, Name: "Spicy Salami", Price: 12.00, CategoryID: 1, IsActive: true},
		{ID: 3, Name: "Protein Bowl", Price: 9.00, CategoryID: 2, IsActive: true},
	}
	categories := []Category{{ID: 1, Name: "Pizza"}, {ID: 2, Name: "Bowls"}}
	tags := []Tag{{ID: 1, Name: "vegan"}}
	handler := NewHandler(NewService(NewInMemoryRepository(products, categories, tags)))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func get(app *fiber.App, path string) (int, string) {
	res, _ := app.Test(httptest.NewRequest("GET", path, nil))
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestListProducts(t *testing.T) {
	app := newTestApp()

	code, body := get(app, "/api/v1/catalog/products")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "Margherita Classica") || !strings.Contains(body, "Protein Bowl") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	app := newTestApp()

	_, body := get(app, "/api/v1/catalog/products?search=salami")
	if !strings.Contains(body, "Spicy Salami") || strings.Contains(body, "Margherita") {
		t.Fatalf("unexpected search result: %s", body)
	}
}

func TestFilterByCategory(t *testing.T) {
	app := newTestApp()

	_, body := get(app, "/api/v1/catalog/products?category_id=2")
	if !strings.Contains(body, "Protein Bowl") || strings.Contains(body, "Salami") {
		t.Fatalf("unexpected filter result: %s", body)
	}
}

func TestGetProduct(t *testing.T) {
	app := newTestApp()

	code, body := get(app, "/api/v1/catalog/products/2")
	if code != fiber.StatusOK || !strings.Contains(body, "Spicy Salami") {
		t.Fatalf("got %d: %s", code, body)
	}

	code, _ = get(app, "/api/v1/catalog/products/99")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestListCategoriesAndTags(t *testing.T) {
	app := newTestApp()

	code, body := get(app, "/api/v1/catalog/categories")
	if code != fiber.StatusOK || !strings.Contains(body, "Bowls") {
		t.Fatalf("got %d: %s", code, body)
	}

	code, body = get(app, "/api/v1/catalog/tags")
	if code != fiber.StatusOK || !strings.Contains(body, "vegan") {
		t.Fatalf("got %d: %s", code, body)
	}
}
