package event

import (
	"context"
	"fmt"
	"sync"
)

// Type names a garden event, e.g. "garden.day.advanced"
type Type string

// Metadata rides alongside the payload. Values decoded from a journal are plain
// JSON, so numbers come back as float64.
type Metadata map[string]interface{}

// Day is the game day stamped on the event, or 0 when missing
func (m Metadata) Day() int {
	switch d := m[MetadataKeyDay].(type) {
	case int:
		return d
	case float64:
		return int(d)
	default:
		return 0
	}
}

// Event is one message on the bus
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus dispatches synchronously on the publishing goroutine
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type in subscription order. A failing
// handler does not stop the others; the errors are reported together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe appends handler to the subscribers of eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to several event types, e.g. GardenTypes
func SubscribeAll(bus Bus, types []Type, handler Handler) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}
