package checkout

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

func makeCheckoutApp(recorder analytics.Recorder) (*fiber.App, *cart.Service) {
	cat := catalog.NewInMemoryRepository(catalog.DefaultProducts(), catalog.DefaultKits())
	cartService := cart.NewService(cart.NewInMemoryRepository(), cat)
	handler := NewHandler(NewService(NewInMemoryRepository(), cartService, cat), recorder)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"session_id": v}})
		}
		return c.Next()
	})
	handler.RegisterProtectedRoutes(app)
	return app, cartService
}

func TestCheckoutRoute(t *testing.T) {
	recorder := analytics.NewInMemoryRecorder()
	app, cartService := makeCheckoutApp(recorder)
	cartService.Add("s1", "SLP001", 2)

	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{"enableReminder":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, "FQ-") || !strings.Contains(str, `"subtotalArs":17000`) {
		t.Fatalf("unexpected order body: %s", str)
	}

	events := recorder.Events()
	if len(events) != 1 || events[0].Name != "checkout_simulated" {
		t.Fatalf("expected checkout_simulated event, got %+v", events)
	}

	// orders are retrievable afterwards
	req2 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req2.Header.Set("X-Session-ID", "s1")
	res2, _ := app.Test(req2)
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "FQ-") {
		t.Fatalf("expected order list, got %s", string(b2))
	}
}

func TestCheckoutRoute_EmptyCart(t *testing.T) {
	app, _ := makeCheckoutApp(analytics.NopRecorder{})

	req := httptest.NewRequest("POST", "/api/v1/checkout", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", res.StatusCode)
	}
}

func TestCheckoutRoute_Unauthorized(t *testing.T) {
	app, _ := makeCheckoutApp(analytics.NopRecorder{})

	req := httptest.NewRequest("POST", "/api/v1/checkout", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", res.StatusCode)
	}
}
