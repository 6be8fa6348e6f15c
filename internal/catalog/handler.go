package catalog

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the read-only catalog endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:sku", h.getProduct)
	app.Get("/api/v1/kits", h.getKits)
	app.Get("/api/v1/kits/:id", h.getKit)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	// optional ?category=sleep filter used by the goal landing pages
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ListProductsByGoal(Goal(cat)))
	}
	return c.JSON(h.service.ListProducts())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetProductBySku(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getKits(c *fiber.Ctx) error {
	return c.JSON(h.service.ListKits())
}

func (h *Handler) getKit(c *fiber.Ctx) error {
	k, err := h.service.GetKitByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "kit not found"})
	}
	return c.JSON(k)
}
