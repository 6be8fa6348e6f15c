package cart

import (
	"sync"
)

// Repository stores one cart per session. Quantities accumulate on Add and
// an item is dropped when its quantity reaches zero or below.
type Repository interface {
	Get(sessionID string) []Item
	Add(sessionID, sku string, qty int) []Item
	SetQuantity(sessionID, sku string, qty int) []Item
	Remove(sessionID, sku string) []Item
	Clear(sessionID string)
}

// InMemoryRepository keeps carts for the process lifetime, keyed by session
// id. Item order is insertion order so responses are stable.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Item)}
}

func (r *InMemoryRepository) Get(sessionID string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyItems(r.carts[sessionID])
}

func (r *InMemoryRepository) Add(sessionID, sku string, qty int) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[sessionID]
	found := false
	for i := range items {
		if items[i].Sku == sku {
			items[i].Quantity += qty
			if items[i].Quantity <= 0 {
				items = append(items[:i], items[i+1:]...)
			}
			found = true
			break
		}
	}
	if !found && qty > 0 {
		items = append(items, Item{Sku: sku, Quantity: qty})
	}
	r.carts[sessionID] = items
	return copyItems(items)
}

func (r *InMemoryRepository) SetQuantity(sessionID, sku string, qty int) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[sessionID]
	if qty <= 0 {
		items = removeSku(items, sku)
		r.carts[sessionID] = items
		return copyItems(items)
	}
	for i := range items {
		if items[i].Sku == sku {
			items[i].Quantity = qty
			r.carts[sessionID] = items
			return copyItems(items)
		}
	}
	items = append(items, Item{Sku: sku, Quantity: qty})
	r.carts[sessionID] = items
	return copyItems(items)
}

func (r *InMemoryRepository) Remove(sessionID, sku string) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := removeSku(r.carts[sessionID], sku)
	r.carts[sessionID] = items
	return copyItems(items)
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func removeSku(items []Item, sku string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Sku == sku {
			continue
		}
		out = append(out, it)
	}
	return out
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
