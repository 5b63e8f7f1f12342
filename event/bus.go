package event

import (
	"sync"

	"github.com/skels/menugrid/core"
)

// Bus fans input events out to subscribed handlers in subscription order.
// Emission is synchronous: EmitClick returns after every handler has seen
// the event, so callers can act on the suppression flag immediately.
//
// Subscription is safe for concurrent use; emission is expected to happen
// on the cooperative dispatch timeline like all other menugrid work.
type Bus struct {
	mu       sync.Mutex
	handlers []core.EventHandler
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe adds a handler. Subscribing the same handler twice delivers
// events to it twice.
func (b *Bus) Subscribe(h core.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Unsubscribe removes the first subscription of the given handler.
func (b *Bus) Unsubscribe(h core.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.handlers {
		if existing == h {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

// EmitClick delivers a click event and reports whether a handler suppressed
// the host's default handling.
func (b *Bus) EmitClick(viewer core.ViewerID, container core.SessionID, slot int, kind core.ClickKind) bool {
	ev := &core.ClickEvent{Viewer: viewer, Container: container, Slot: slot, Kind: kind}
	for _, h := range b.snapshot() {
		h.HandleClick(ev)
	}
	return ev.Suppressed
}

// EmitClose delivers a close event for the viewer's open container.
func (b *Bus) EmitClose(viewer core.ViewerID) {
	ev := core.CloseEvent{Viewer: viewer}
	for _, h := range b.snapshot() {
		h.HandleClose(ev)
	}
}

func (b *Bus) snapshot() []core.EventHandler {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.EventHandler(nil), b.handlers...)
}
