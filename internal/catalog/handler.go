package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates catalog operations to the catalog service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/catalog/products", h.listProducts)
	app.Get("/api/v1/catalog/products/:id<[0-9]+>", h.getProduct)
	app.Get("/api/v1/catalog/categories", h.listCategories)
	app.Get("/api/v1/catalog/tags", h.listTags)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	q := Query{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		TagID:      c.Query("tag_id"),
	}
	products, err := h.service.ListProducts(c.UserContext(), q)
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return upstream.RespondError(c, err)
		}
	}
	return c.JSON(product)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(categories)
}

func (h *Handler) listTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags(c.UserContext())
	if err != nil {
		return upstream.RespondError(c, err)
	}
	return c.JSON(tags)
}
