package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

func testCatalog() catalog.Repository {
	return catalog.NewInMemoryRepository([]catalog.Product{
		{Sku: "SLP001", Name: "Melatonina 3mg", Category: catalog.GoalSleep, PriceArs: 8500, InStock: true},
		{Sku: "GEN002", Name: "Vitamina D3 + Zinc", Category: catalog.GoalGeneral, PriceArs: 6900, InStock: true},
	}, nil)
}

// makeAppWithCartHandler fakes the JWT middleware: a X-Session-ID header
// becomes the session claim, no header means unauthenticated.
func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			claims := jwt.MapClaims{"session_id": v}
			tok := &jwt.Token{Claims: claims}
			c.Locals("user", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestCartRoutes_Basic(t *testing.T) {
	cat := testCatalog()
	service := NewService(NewInMemoryRepository(), cat)
	recorder := analytics.NewInMemoryRecorder()
	handler := NewHandler(service, cat, recorder)
	app := makeAppWithCartHandler(handler)

	// ensure routes registered
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/cart"] {
		t.Fatalf("expected route '/api/v1/cart' to be registered")
	}
	if !routes["/api/v1/cart/items"] {
		t.Fatalf("expected route '/api/v1/cart/items' to be registered")
	}

	// unauthorized access should be blocked
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add with default quantity 1
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"SLP001"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-Session-ID", "s1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"quantity":1`) || !strings.Contains(string(b2), `"total":8500`) {
		t.Fatalf("unexpected cart after add: %s", string(b2))
	}

	// add same sku again, quantity accumulates
	req3 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"SLP001","quantity":2}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-Session-ID", "s1")
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"quantity":3`) {
		t.Fatalf("expected quantity 3 after second add, got %s", string(b3))
	}

	// update quantity directly
	req4 := httptest.NewRequest("PUT", "/api/v1/cart/items/SLP001", strings.NewReader(`{"quantity":2}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-Session-ID", "s1")
	res4, _ := app.Test(req4)
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"quantity":2`) {
		t.Fatalf("expected quantity 2 after update, got %s", string(b4))
	}

	// quantity zero removes the item
	req5 := httptest.NewRequest("PUT", "/api/v1/cart/items/SLP001", strings.NewReader(`{"quantity":0}`))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-Session-ID", "s1")
	res5, _ := app.Test(req5)
	b5, _ := io.ReadAll(res5.Body)
	if strings.Contains(string(b5), "SLP001") {
		t.Fatalf("expected SLP001 removed at quantity 0, got %s", string(b5))
	}

	// clear the cart
	req6 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"GEN002"}`))
	req6.Header.Set("Content-Type", "application/json")
	req6.Header.Set("X-Session-ID", "s1")
	app.Test(req6)
	req7 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req7.Header.Set("X-Session-ID", "s1")
	res7, _ := app.Test(req7)
	if res7.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res7.StatusCode)
	}
	req8 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req8.Header.Set("X-Session-ID", "s1")
	res8, _ := app.Test(req8)
	b8, _ := io.ReadAll(res8.Body)
	if !strings.Contains(string(b8), `"total":0`) || strings.Contains(string(b8), "GEN002") {
		t.Fatalf("expected empty cart after clear, got %s", string(b8))
	}

	// events were recorded along the way
	names := map[string]int{}
	for _, ev := range recorder.Events() {
		names[ev.Name]++
	}
	if names["add_to_cart"] == 0 || names["clear_cart"] == 0 {
		t.Fatalf("expected cart events to be recorded, got %v", names)
	}
}

func TestCartRoutes_SessionsAreIsolated(t *testing.T) {
	cat := testCatalog()
	service := NewService(NewInMemoryRepository(), cat)
	handler := NewHandler(service, cat, analytics.NopRecorder{})
	app := makeAppWithCartHandler(handler)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"SLP001"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "alice")
	app.Test(req)

	req2 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req2.Header.Set("X-Session-ID", "bob")
	res2, _ := app.Test(req2)
	b2, _ := io.ReadAll(res2.Body)
	if strings.Contains(string(b2), "SLP001") {
		t.Fatalf("carts leaked between sessions: %s", string(b2))
	}
}

func TestService_TotalSkipsUnknownSkus(t *testing.T) {
	service := NewService(NewInMemoryRepository(), testCatalog())

	if _, err := service.Add("s", "SLP001", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := service.Add("s", "GHOST", 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if got := service.Total("s"); got != 17000 {
		t.Fatalf("expected unknown sku to contribute 0, total = %d", got)
	}
	if got := service.ItemCount("s"); got != 7 {
		t.Fatalf("expected item count 7, got %d", got)
	}
}
