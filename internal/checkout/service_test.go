package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

func testSetup() (*Service, *cart.Service) {
	cat := catalog.NewInMemoryRepository(catalog.DefaultProducts(), catalog.DefaultKits())
	cartService := cart.NewService(cart.NewInMemoryRepository(), cat)
	svc := NewService(NewInMemoryRepository(), cartService, cat)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, cartService
}

func TestCheckout_FlatShippingBelowThreshold(t *testing.T) {
	svc, cartService := testSetup()
	cartService.Add("s1", "SLP001", 1) // 8500

	ord, err := svc.Checkout("s1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if ord.SubtotalArs != 8500 {
		t.Fatalf("expected subtotal 8500, got %d", ord.SubtotalArs)
	}
	if ord.ShippingArs != FlatShippingArs {
		t.Fatalf("expected flat shipping, got %d", ord.ShippingArs)
	}
	if ord.GrandTotalArs != 11000 {
		t.Fatalf("expected grand total 11000, got %d", ord.GrandTotalArs)
	}
	if !strings.HasPrefix(ord.OrderNumber, "FQ-") || len(ord.OrderNumber) != 11 {
		t.Fatalf("unexpected order number format %q", ord.OrderNumber)
	}
	if ord.RepurchaseDate != "2026-04-14" {
		t.Fatalf("expected repurchase date 30 days out, got %q", ord.RepurchaseDate)
	}

	// checkout clears the cart
	if items := cartService.Items("s1"); len(items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d items", len(items))
	}
}

func TestCheckout_FreeShippingAtThreshold(t *testing.T) {
	svc, cartService := testSetup()
	cartService.Add("s1", "GUT003", 2) // 25000 exactly

	ord, err := svc.Checkout("s1", true)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if ord.ShippingArs != 0 {
		t.Fatalf("expected free shipping at the threshold, got %d", ord.ShippingArs)
	}
	if !ord.ReminderEnabled {
		t.Fatal("expected reminder flag to carry through")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := testSetup()

	if _, err := svc.Checkout("nobody", false); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_UnknownSkusSkipped(t *testing.T) {
	svc, cartService := testSetup()
	cartService.Add("s1", "SLP001", 1)
	cartService.Add("s1", "GHOST", 4)

	ord, err := svc.Checkout("s1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if len(ord.Items) != 1 || ord.SubtotalArs != 8500 {
		t.Fatalf("unknown sku must not price into the order: %+v", ord)
	}
}

func TestOrders_PerSession(t *testing.T) {
	svc, cartService := testSetup()
	cartService.Add("s1", "SLP001", 1)
	if _, err := svc.Checkout("s1", false); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := svc.Orders("s1"); len(got) != 1 {
		t.Fatalf("expected 1 order for s1, got %d", len(got))
	}
	if got := svc.Orders("s2"); len(got) != 0 {
		t.Fatalf("expected no orders for s2, got %d", len(got))
	}
}
