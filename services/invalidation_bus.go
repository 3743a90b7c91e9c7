package services

import (
	"sync"
)

// Invalidation topics.
const (
	TopicDishes      = "dishes"
	TopicRestaurants = "restaurants"
	TopicLinks       = "links"
)

// Invalidation tells sibling views that a slice of data changed and
// should be re-fetched. It carries identity, never the changed data.
type Invalidation struct {
	Topic          string `json:"topic"`
	MunicipalityID uint   `json:"municipalityId,omitempty"`
	ItemID         uint   `json:"itemId,omitempty"`
}

// InvalidationBus is an explicit pub/sub channel passed by reference to
// the components that need it; there is no package-level bus.
type InvalidationBus struct {
	mu   sync.RWMutex
	subs map[int]func(Invalidation)
	next int
}

func NewInvalidationBus() *InvalidationBus {
	return &InvalidationBus{subs: make(map[int]func(Invalidation))}
}

// Subscribe registers fn and returns its unsubscribe func.
func (b *InvalidationBus) Subscribe(fn func(Invalidation)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *InvalidationBus) Publish(ev Invalidation) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, fn := range b.subs {
		fn(ev)
	}
}
