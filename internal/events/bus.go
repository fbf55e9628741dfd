// Package events connects named platform lifecycle signals to purge
// operations through an explicit, injected Bus.
package events

import (
	"context"
	"purger/pkg/domain"
	"purger/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

// Payload carries the optional arguments of an event. Handlers read only the
// fields relevant to them.
type Payload struct {
	PostID   domain.PostID
	TermID   domain.TermID
	Taxonomy domain.Taxonomy
	URL      string
	Action   string
	Params   domain.Params
	PostType domain.PostType
}

// Event is a named signal with its payload.
type Event struct {
	Name    string
	Payload Payload
}

// Handler reacts to an event.
type Handler interface {
	Handle(ctx context.Context, payload Payload)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(ctx context.Context, payload Payload)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, payload Payload) { f(ctx, payload) }

// Bus dispatches events to the handlers subscribed to their name, in
// subscription order. It is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe appends h to the handlers of name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// Has reports whether anything is subscribed to name.
func (b *Bus) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[name]) > 0
}

// Names returns the subscribed event names.
func (b *Bus) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}

	return names
}

// Publish runs every handler subscribed to ev.Name synchronously and returns
// how many ran.
func (b *Bus) Publish(ctx context.Context, ev Event) int {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[ev.Name]...)
	b.mu.RUnlock()

	ctx = logger.WithFields(ctx, zap.String("event", ev.Name))
	if len(handlers) == 0 {
		logger.Debug(ctx, "no handler subscribed to event")

		return 0
	}

	for _, h := range handlers {
		h.Handle(ctx, ev.Payload)
	}

	return len(handlers)
}
