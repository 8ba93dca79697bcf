package discount

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates discount operations to the discount service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/discounts", h.listDiscounts)
	app.Post("/api/v1/discounts", h.createDiscount)
}

func (h *Handler) listDiscounts(c *fiber.Ctx) error {
	discounts, err := h.service.List(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(discounts)
}

func (h *Handler) createDiscount(c *fiber.Ctx) error {
	payload := new(Discount)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "code required"})
	}
	if payload.DiscountType != TypePercent && payload.DiscountType != TypeFixed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "discount_type must be percent or fixed"})
	}

	created, err := h.service.Create(c.UserContext(), *payload)
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
