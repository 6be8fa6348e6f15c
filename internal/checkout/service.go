package checkout

import (
	"errors"
	"time"

	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
	"github.com/farmaquiero/wellness-shop-backend/internal/optimizer"
)

var ErrEmptyCart = errors.New("empty cart")

// Service simulates checkout: it snapshots the cart into an order, applies
// the shipping rule and clears the cart.
type Service struct {
	repo        Repository
	cartService *cart.Service
	catalog     catalog.Repository
	now         func() time.Time
}

func NewService(repo Repository, cartService *cart.Service, cat catalog.Repository) *Service {
	return &Service{repo: repo, cartService: cartService, catalog: cat, now: time.Now}
}

func (s *Service) Checkout(sessionID string, enableReminder bool) (Order, error) {
	items := s.cartService.Items(sessionID)
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	orderItems := make([]OrderItem, 0, len(items))
	subtotal := 0
	for _, it := range items {
		p, err := s.catalog.FindProductBySku(it.Sku)
		if err != nil {
			// unknown skus contribute nothing, same as the cart total
			continue
		}
		orderItems = append(orderItems, OrderItem{
			Sku:          p.Sku,
			Name:         p.Name,
			Quantity:     it.Quantity,
			UnitPriceArs: p.PriceArs,
		})
		subtotal += p.PriceArs * it.Quantity
	}

	shipping := FlatShippingArs
	if subtotal >= optimizer.FreeShippingThreshold {
		shipping = 0
	}

	now := s.now().UTC()
	ord := Order{
		OrderNumber:     newOrderNumber(now),
		Items:           orderItems,
		SubtotalArs:     subtotal,
		ShippingArs:     shipping,
		GrandTotalArs:   subtotal + shipping,
		ReminderEnabled: enableReminder,
		RepurchaseDate:  now.AddDate(0, 0, repurchaseDays).Format("2006-01-02"),
		CreatedAt:       now.Format(time.RFC3339),
	}

	created := s.repo.Create(sessionID, ord)
	s.cartService.Clear(sessionID)
	return created, nil
}

func (s *Service) Orders(sessionID string) []Order {
	return s.repo.ListBySession(sessionID)
}
