package checkout

import (
	"sync"
)

// Repository stores simulated orders per session.
type Repository interface {
	Create(sessionID string, ord Order) Order
	ListBySession(sessionID string) []Order
}

// InMemoryRepository keeps orders for the process lifetime.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string][]Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string][]Order)}
}

func (r *InMemoryRepository) Create(sessionID string, ord Order) Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[sessionID] = append(r.orders[sessionID], ord)
	return ord
}

func (r *InMemoryRepository) ListBySession(sessionID string) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders[sessionID]))
	copy(out, r.orders[sessionID])
	return out
}
