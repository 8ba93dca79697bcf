package configurator

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/catalog"
	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates configurator operations to the configurator
// service. Estimating is public so browsing shoppers can play with the
// sliders; adding to the cart needs a session.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/configurator/:productId<[0-9]+>/estimate", h.estimate)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/configurator/:productId<[0-9]+>/cart", h.addToCart)
}

func (h *Handler) estimate(c *fiber.Ctx) error {
	productID, _ := strconv.Atoi(c.Params("productId"))
	payload := new(Config)
	if err := c.BodyParser(payload); err != nil && err != fiber.ErrUnprocessableEntity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	est, err := h.service.Estimate(c.UserContext(), productID, *payload)
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.JSON(est)
}

type addToCartRequest struct {
	Quantity int    `json:"quantity"`
	Config   Config `json:"config"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	productID, _ := strconv.Atoi(c.Params("productId"))
	payload := new(addToCartRequest)
	if err := c.BodyParser(payload); err != nil && err != fiber.ErrUnprocessableEntity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	view, err := h.service.AddToCart(c.UserContext(), productID, payload.Quantity, payload.Config)
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}
