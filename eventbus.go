package stabby

import (
	"reflect"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// MaxEventTypes is the number of distinct event types an EventBus accepts.
const MaxEventTypes = 256

// EventBus delivers typed events synchronously to the handlers subscribed to
// that type. Systems use it to react to input and to structural events without
// referring to each other.
type EventBus struct {
	ids      map[reflect.Type]uint8
	handlers [][]any
}

// EntityKilled is published by a Registry for every entity it destroys during
// Update, after the entity left all systems. Signature holds the components
// the entity had.
type EntityKilled struct {
	Entity    Entity
	Signature Signature
}

// Subscribe registers handler for events of type T. Handlers run in
// subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.typeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event. Publishing a type
// nobody subscribed to does nothing.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.ids[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// HasSubscribers reports whether any handler listens for T.
func HasSubscribers[T any](bus *EventBus) bool {
	id, ok := bus.ids[reflect.TypeFor[T]()]
	return ok && len(bus.handlers[id]) > 0
}

// Reset drops every subscription.
func (bus *EventBus) Reset() {
	clear(bus.ids)
	clear(bus.handlers)
	bus.handlers = bus.handlers[:0]
}

func (bus *EventBus) typeID(t reflect.Type) uint8 {
	if bus.ids == nil {
		bus.ids = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.ids[t]; ok {
		return id
	}
	assert.That(len(bus.handlers) < MaxEventTypes, "ecs: too many event types")
	id := uint8(len(bus.handlers))
	bus.ids[t] = id
	bus.handlers = append(bus.handlers, nil)
	return id
}
