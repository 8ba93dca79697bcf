package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Post("/api/v1/orders/:id<[0-9]+>/reorder", h.reorder)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	tracking, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.JSON(tracking)
}

func (h *Handler) reorder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.service.Reorder(c.UserContext(), id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		if ue, ok := upstream.AsError(err); ok && ue.Status < 500 {
			return c.Status(ue.Status).JSON(fiber.Map{"message": ue.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to reorder, please try again"})
	}
	return c.JSON(fiber.Map{"message": "Items added to cart", "redirect": "/cart"})
}
