package cart

import (
	"errors"

	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

var ErrInvalidSku = errors.New("invalid sku")

// Service orchestrates cart operations against the catalog.
type Service struct {
	repo    Repository
	catalog catalog.Repository
}

func NewService(repo Repository, cat catalog.Repository) *Service {
	return &Service{repo: repo, catalog: cat}
}

func (s *Service) Items(sessionID string) []Item {
	return s.repo.Get(sessionID)
}

func (s *Service) Add(sessionID, sku string, qty int) ([]Item, error) {
	if sku == "" {
		return nil, ErrInvalidSku
	}
	// zero qty does nothing, but still return the current cart
	if qty == 0 {
		return s.repo.Get(sessionID), nil
	}
	return s.repo.Add(sessionID, sku, qty), nil
}

func (s *Service) SetQuantity(sessionID, sku string, qty int) ([]Item, error) {
	if sku == "" {
		return nil, ErrInvalidSku
	}
	return s.repo.SetQuantity(sessionID, sku, qty), nil
}

func (s *Service) Remove(sessionID, sku string) []Item {
	return s.repo.Remove(sessionID, sku)
}

func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}

// Total sums price*quantity over the cart. Skus missing from the catalog
// contribute zero.
func (s *Service) Total(sessionID string) int {
	total := 0
	for _, it := range s.repo.Get(sessionID) {
		p, err := s.catalog.FindProductBySku(it.Sku)
		if err != nil {
			continue
		}
		total += p.PriceArs * it.Quantity
	}
	return total
}

// ItemCount sums quantities across the cart.
func (s *Service) ItemCount(sessionID string) int {
	count := 0
	for _, it := range s.repo.Get(sessionID) {
		count += it.Quantity
	}
	return count
}
