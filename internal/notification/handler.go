package notification

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates notification operations to the notification service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/notifications", h.getNotifications)
	app.Put("/api/v1/notifications/:id<[0-9]+>/read", h.markRead)
}

func (h *Handler) getNotifications(c *fiber.Ctx) error {
	feed, err := h.service.List(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(feed)
}

func (h *Handler) markRead(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	n, err := h.service.MarkRead(c.UserContext(), id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.JSON(n)
}
