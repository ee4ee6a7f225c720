package bus

import (
	"context"
	"sync"

	"github.com/oshxona/resto/internal/domain/model"
)

// EventType discriminates order change notifications.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
)

// Event is the message fanned out to every open dashboard. It carries the
// full order document so subscribers can apply it as an upsert by id
// without a follow-up query.
type Event struct {
	Type  EventType   `json:"type"`
	Order model.Order `json:"order"`
}

// Handler consumes a delivered event. Delivery is at-least-once; handlers
// must be idempotent.
type Handler func(ctx context.Context, ev Event)

// Bus publishes order events and fans them out to subscribers.
type Bus interface {
	Publish(ctx context.Context, ev Event) error
	Subscribe(h Handler) (unsubscribe func())
}

// dispatcher implements subscriber registration shared by bus variants.
type dispatcher struct {
	mu       sync.RWMutex
	next     int
	handlers map[int]Handler
}

func newDispatcher() *dispatcher {
	return &dispatcher{handlers: make(map[int]Handler)}
}

func (d *dispatcher) subscribe(h Handler) func() {
	d.mu.Lock()
	id := d.next
	d.next++
	d.handlers[id] = h
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.handlers, id)
		d.mu.Unlock()
	}
}

func (d *dispatcher) dispatch(ctx context.Context, ev Event) {
	d.mu.RLock()
	handlers := make([]Handler, 0, len(d.handlers))
	for _, h := range d.handlers {
		handlers = append(handlers, h)
	}
	d.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
}

// LocalBus dispatches events in-process. It backs tests and deployments
// without a broker; a single-instance service loses nothing by it.
type LocalBus struct {
	*dispatcher
}

// NewLocalBus constructs an in-process bus.
func NewLocalBus() *LocalBus {
	return &LocalBus{dispatcher: newDispatcher()}
}

func (b *LocalBus) Publish(ctx context.Context, ev Event) error {
	b.dispatch(ctx, ev)
	return nil
}

func (b *LocalBus) Subscribe(h Handler) func() {
	return b.subscribe(h)
}
