package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/discount"
	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id<[0-9]+>", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id<[0-9]+>", h.removeItem)
	app.Post("/api/v1/cart/discount", h.applyDiscount)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	view, err := h.service.GetCart(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(ItemCreate)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	view, err := h.service.AddItem(c.UserContext(), *payload)
	if err != nil {
		switch err {
		case ErrQuantityTooLow:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.JSON(view)
}

type quantityUpdateRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}
	payload := new(quantityUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "delta required"})
	}

	view, err := h.service.UpdateQuantity(c.UserContext(), itemID, payload.Delta)
	if err != nil {
		switch err {
		case ErrItemNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
		case ErrQuantityTooLow:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.JSON(view)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	view, err := h.service.RemoveItem(c.UserContext(), itemID)
	if err != nil {
		switch err {
		case ErrItemNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.JSON(view)
}

type applyDiscountRequest struct {
	Code string `json:"code"`
}

func (h *Handler) applyDiscount(c *fiber.Ctx) error {
	payload := new(applyDiscountRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "code required"})
	}

	view, err := h.service.ApplyDiscount(c.UserContext(), payload.Code)
	if err != nil {
		switch err {
		case discount.ErrInvalidCode:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Invalid or expired promo code"})
		case discount.ErrNoData:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Discounts are still loading, please try again"})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.JSON(view)
}
