package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/session"
	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates checkout wizard operations to the checkout service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.begin)
	app.Get("/api/v1/checkout", h.current)
	app.Post("/api/v1/checkout/advance", h.advance)
	app.Post("/api/v1/checkout/back", h.back)
	app.Post("/api/v1/checkout/submit", h.submit)
}

func (h *Handler) begin(c *fiber.Ctx) error {
	st, err := h.service.Begin(c.UserContext(), session.SID(c))
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) current(c *fiber.Ctx) error {
	st, err := h.service.Current(c.UserContext(), session.SID(c))
	if err != nil {
		if err == ErrNotInProgress {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return upstream.RespondError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) advance(c *fiber.Ctx) error {
	payload := new(AdvanceRequest)
	if err := c.BodyParser(payload); err != nil && err != fiber.ErrUnprocessableEntity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	st, err := h.service.Advance(c.UserContext(), session.SID(c), *payload)
	if err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) back(c *fiber.Ctx) error {
	st, err := h.service.Back(c.UserContext(), session.SID(c))
	if err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	st, err := h.service.Submit(c.UserContext(), session.SID(c))
	if err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) wizardError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotInProgress:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case ErrNoAddress, ErrNotAtReview, ErrAlreadyDone:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return upstream.RespondError(c, err)
	}
}
