package address

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates address operations to the address service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/addresses", h.getAddresses)
	app.Post("/api/v1/addresses", h.addAddress)
}

func (h *Handler) getAddresses(c *fiber.Ctx) error {
	addrs, err := h.service.List(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(addrs)
}

func (h *Handler) addAddress(c *fiber.Ctx) error {
	payload := new(Create)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	addr, err := h.service.Add(c.UserContext(), *payload)
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(addr)
}
