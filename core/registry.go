package core

// Registry tracks which session is currently open for each viewer and routes
// input events to the owning handler. A registry instance is explicitly
// constructed by the host and passed to every menu at construction; there is
// no process-global state.
//
// Contract:
//   - Open binds viewer → session and registers the session's handler,
//     superseding any previous binding for that viewer. Superseding does NOT
//     deactivate the previous session: the superseded menu stays active from
//     its own perspective until it observes a close event or is swept.
//   - Deactivate removes the viewer binding if it still points at the given
//     session and queues the session for handler detachment by the sweep.
//   - Current reports the active session for a viewer, if any.
type Registry interface {
	Open(viewer ViewerID, session SessionID, handler EventHandler)
	Deactivate(viewer ViewerID, session SessionID)
	Current(viewer ViewerID) (SessionID, bool)
}
