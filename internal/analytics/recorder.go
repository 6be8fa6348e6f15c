package analytics

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRecorder keeps events for the process lifetime.
type InMemoryRecorder struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{events: make([]Event, 0)}
}

func (r *InMemoryRecorder) Record(name string, payload map[string]any) {
	ev := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Payload:   payload,
	}

	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()

	log.Printf("[analytics] %s %v", name, payload)
}

func (r *InMemoryRecorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *InMemoryRecorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
}
