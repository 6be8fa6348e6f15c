package optimizer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/session"
)

// Handler runs the optimizer over the session's cart.
type Handler struct {
	optimizer   *Optimizer
	cartService *cart.Service
	recorder    analytics.Recorder
}

func NewHandler(o *Optimizer, cartService *cart.Service, recorder analytics.Recorder) *Handler {
	return &Handler{optimizer: o, cartService: cartService, recorder: recorder}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart/suggestions", h.getSuggestions)
}

func (h *Handler) getSuggestions(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	suggestions := h.optimizer.Suggest(h.cartService.Items(sessionID))

	h.recorder.Record("cart_suggestions_viewed", map[string]any{
		"count": len(suggestions),
	})

	return c.JSON(suggestions)
}
