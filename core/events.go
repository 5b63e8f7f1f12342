package core

// ClickKind describes the interaction gesture behind a click event. The set
// mirrors the gestures common to slot-addressable surfaces; hosts map their
// native input onto the nearest kind.
type ClickKind string

const (
	// ClickLeft is a plain primary click.
	ClickLeft ClickKind = "left"
	// ClickRight is a plain secondary click.
	ClickRight ClickKind = "right"
	// ClickShiftLeft is a primary click with the shift modifier held.
	ClickShiftLeft ClickKind = "shift_left"
	// ClickShiftRight is a secondary click with the shift modifier held.
	ClickShiftRight ClickKind = "shift_right"
	// ClickMiddle is a middle / tertiary click.
	ClickMiddle ClickKind = "middle"
	// ClickDrop is a drop-out-of-container gesture.
	ClickDrop ClickKind = "drop"
)

// ClickEvent is delivered when a viewer clicks a slot. After dispatch the
// event source inspects Suppressed to decide whether the host's default
// handling (moving the clicked content around) should be cancelled.
//
// Container carries the id of the container the click landed in. For clicks
// inside a menu this is the menu's session id; clicks on the viewer's own
// storage carry a different id and pass through menus untouched.
type ClickEvent struct {
	Viewer    ViewerID
	Container SessionID
	Slot      int
	Kind      ClickKind

	// Suppressed is set by the handling menu when the clicked cell is not
	// movable. The event source must honor it after dispatch returns.
	Suppressed bool
}

// CloseEvent is delivered when a viewer's open container is closed, whether
// by the viewer or by the host opening something else on top of it.
type CloseEvent struct {
	Viewer ViewerID
}

// EventHandler receives input events. The session registry implements it to
// fan events out to the owning menu, and each menu implements it to mutate
// its own state.
//
// Dispatch is cooperative: the event source invokes handlers one event at a
// time and never concurrently with scheduled tasks (see Scheduler).
type EventHandler interface {
	HandleClick(ev *ClickEvent)
	HandleClose(ev CloseEvent)
}

// EventSource is the boundary through which viewer input reaches menugrid.
// Exactly one handler — the session registry — subscribes for the lifetime
// of the process; per-menu routing happens inside the registry.
type EventSource interface {
	Subscribe(h EventHandler)
	Unsubscribe(h EventHandler)
}
