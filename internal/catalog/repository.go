package catalog

import (
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrKitNotFound     = errors.New("kit not found")
)

// Repository provides read access to the product and kit catalog.
// Implementations must return products in a stable catalog order: the
// recommendation engine and the cart optimizer rely on that order as the
// deterministic tie-break.
type Repository interface {
	ListProducts() []Product
	ListKits() []Kit
	FindProductBySku(sku string) (Product, error)
	FindKitByID(id string) (Kit, error)
	ListProductsBySkus(skus []string) []Product
}

// InMemoryRepository holds the catalog snapshot for the process lifetime.
// It is built once and never mutated, so reads need no locking. Lookup maps
// are indexed at construction to keep sku/id lookups O(1).
type InMemoryRepository struct {
	products []Product
	kits     []Kit
	bySku    map[string]int
	byKitID  map[string]int
}

func NewInMemoryRepository(products []Product, kits []Kit) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make([]Product, len(products)),
		kits:     make([]Kit, len(kits)),
		bySku:    make(map[string]int, len(products)),
		byKitID:  make(map[string]int, len(kits)),
	}
	copy(r.products, products)
	copy(r.kits, kits)
	for i, p := range r.products {
		r.bySku[p.Sku] = i
	}
	for i, k := range r.kits {
		r.byKitID[k.ID] = i
	}
	return r
}

func (r *InMemoryRepository) ListProducts() []Product {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryRepository) ListKits() []Kit {
	out := make([]Kit, len(r.kits))
	copy(out, r.kits)
	return out
}

func (r *InMemoryRepository) FindProductBySku(sku string) (Product, error) {
	i, ok := r.bySku[sku]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

func (r *InMemoryRepository) FindKitByID(id string) (Kit, error) {
	i, ok := r.byKitID[id]
	if !ok {
		return Kit{}, ErrKitNotFound
	}
	return r.kits[i], nil
}

// ListProductsBySkus returns the products matching the given skus in the
// order the skus were provided. Unknown skus are skipped.
func (r *InMemoryRepository) ListProductsBySkus(skus []string) []Product {
	out := make([]Product, 0, len(skus))
	for _, sku := range skus {
		if i, ok := r.bySku[sku]; ok {
			out = append(out, r.products[i])
		}
	}
	return out
}
