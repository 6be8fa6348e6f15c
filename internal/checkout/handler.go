package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/session"
)

type Handler struct {
	service  *Service
	recorder analytics.Recorder
}

func NewHandler(service *Service, recorder analytics.Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.createOrder)
	app.Get("/api/v1/orders", h.getOrders)
}

type checkoutRequest struct {
	EnableReminder bool `json:"enableReminder,omitempty"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	// an empty body is fine, the reminder just stays off
	if len(c.Body()) > 0 {
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.Checkout(sessionID, payload.EnableReminder)
	if err != nil {
		if err == ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	h.recorder.Record("checkout_simulated", map[string]any{
		"orderNumber": ord.OrderNumber,
		"itemCount":   len(ord.Items),
		"total":       ord.GrandTotalArs,
	})

	return c.JSON(ord)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.Orders(sessionID))
}
