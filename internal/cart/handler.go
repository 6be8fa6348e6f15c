package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
	"github.com/farmaquiero/wellness-shop-backend/internal/session"
)

// Handler delegates cart operations to the cart service and records the
// analytics events the frontend used to emit.
type Handler struct {
	service  *Service
	catalog  catalog.Repository
	recorder analytics.Recorder
}

func NewHandler(service *Service, cat catalog.Repository, recorder analytics.Recorder) *Handler {
	return &Handler{service: service, catalog: cat, recorder: recorder}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:sku", h.updateItem)
	app.Delete("/api/v1/cart/items/:sku", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity,omitempty"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

func (h *Handler) respond(c *fiber.Ctx, sessionID string, items []Item) error {
	return c.JSON(cartResponse{Items: items, Total: h.service.Total(sessionID)})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return h.respond(c, sessionID, h.service.Items(sessionID))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "sku is required"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.Add(sessionID, payload.Sku, payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	eventPayload := map[string]any{"sku": payload.Sku, "quantity": payload.Quantity}
	if p, err := h.catalog.FindProductBySku(payload.Sku); err == nil {
		eventPayload["productName"] = p.Name
	}
	h.recorder.Record("add_to_cart", eventPayload)

	return h.respond(c, sessionID, items)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.SetQuantity(sessionID, c.Params("sku"), payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.respond(c, sessionID, items)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	sku := c.Params("sku")
	items := h.service.Remove(sessionID, sku)
	h.recorder.Record("remove_from_cart", map[string]any{"sku": sku})
	return h.respond(c, sessionID, items)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.service.Clear(sessionID)
	h.recorder.Record("clear_cart", nil)
	return c.SendStatus(fiber.StatusNoContent)
}
