package event

import (
	"sync"
	"time"
)

// Handler processes a published event.
type Handler func(Event)

// Bus is a synchronous publish/subscribe dispatcher.
// A nil *Bus is valid: Publish on it is a no-op, which lets components
// treat the bus as optional.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	typed  map[Type]map[int]Handler
	all    map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		typed: make(map[Type]map[int]Handler),
		all:   make(map[int]Handler),
	}
}

// Subscribe registers a handler for one event type.
// The returned function removes the subscription; calling it twice is safe.
func (b *Bus) Subscribe(t Type, h Handler) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.typed[t] == nil {
		b.typed[t] = make(map[int]Handler)
	}
	b.typed[t][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.typed[t], id)
	}
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.all[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.all, id)
	}
}

// Publish dispatches the event to matching handlers on the calling
// goroutine. A zero Time is stamped with the current time.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.typed[e.Type])+len(b.all))
	for _, h := range b.typed[e.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range b.all {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
