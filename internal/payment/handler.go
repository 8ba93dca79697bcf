package payment

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the gateway return callback. The route is public: the
// gateway redirects the shopper's browser here before any session state
// is re-established.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/payment/return", h.paymentReturn)
}

func (h *Handler) paymentReturn(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid callback parameters"})
	}
	return c.JSON(h.service.HandleReturn(query))
}
