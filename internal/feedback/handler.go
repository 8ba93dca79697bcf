package feedback

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates feedback operations to the feedback service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/feedback", h.submitFeedback)
}

func (h *Handler) submitFeedback(c *fiber.Ctx) error {
	payload := new(Create)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Submit(c.UserContext(), *payload)
	if err != nil {
		switch err {
		case ErrMissingProduct, ErrBadRating:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
