package notification

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNotificationRoutes(t *testing.T) {
	seed := []Notification{
		{ID: 1, Title: "Order shipped", IsRead: false},
		{ID: 2, Title: "Welcome", IsRead: true},
	}
	handler := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	handler.RegisterProtectedRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/notifications", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"unread_count":1`) {
		t.Fatalf("expected one unread, got %s", string(b))
	}

	res2, _ := app.Test(httptest.NewRequest("PUT", "/api/v1/notifications/1/read", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"is_read":true`) {
		t.Fatalf("expected read flag, got %s", string(b2))
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/notifications", nil))
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"unread_count":0`) {
		t.Fatalf("expected no unread left, got %s", string(b3))
	}

	res4, _ := app.Test(httptest.NewRequest("PUT", "/api/v1/notifications/99/read", nil))
	if res4.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res4.StatusCode)
	}
}
