package wishlist

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.addEntry)
	app.Delete("/api/v1/wishlist/:productId<[0-9]+>", h.removeEntry)
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(entries)
}

func (h *Handler) addEntry(c *fiber.Ctx) error {
	payload := new(struct {
		ProductID int `json:"product_id"`
	})
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product_id is required"})
	}

	entry, err := h.service.Add(c.UserContext(), payload.ProductID)
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) removeEntry(c *fiber.Ctx) error {
	productID, _ := strconv.Atoi(c.Params("productId"))
	if err := h.service.Remove(c.UserContext(), productID); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}
