package session

import (
	"sync"

	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/logging"
)

// DefaultSweepInterval is the sweep period in ticks (five seconds at the
// usual twenty ticks per second).
const DefaultSweepInterval = 100

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// SweepInterval is the period, in ticks, between sweep firings.
	// Defaults to DefaultSweepInterval.
	SweepInterval int
	// Logger receives lifecycle events at debug level. Defaults to NoOp.
	Logger logging.Logger
}

// Registry is an in-memory core.Registry tracking at most one active session
// per viewer, plus a backlog of deactivated sessions awaiting handler
// detachment.
//
// Contract:
//   - Open overwrites any previous binding for the viewer; the superseded
//     session is NOT deactivated and its handler stays registered until its
//     menu independently observes a close event and is swept
//   - Deactivate only clears the viewer binding when it still points at the
//     deactivating session, so a superseded menu closing late cannot evict
//     its successor
//   - The sweep detaches handlers for deactivated sessions only while no
//     session at all is open, deferring cleanup that might race against
//     late events for other viewers
//
// The registry is safe for concurrent access; all other menugrid state is
// owned by the cooperative dispatch timeline.
type Registry struct {
	mu       sync.Mutex
	open     map[core.ViewerID]core.SessionID
	handlers map[core.SessionID]core.EventHandler
	pending  []core.SessionID

	sweepInterval int
	sweepTask     core.Task
	logger        logging.Logger
}

// NewRegistry constructs an empty registry with optional overrides.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{
		SweepInterval: DefaultSweepInterval,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.SweepInterval < 1 {
		opts.SweepInterval = DefaultSweepInterval
	}
	return &Registry{
		open:          make(map[core.ViewerID]core.SessionID),
		handlers:      make(map[core.SessionID]core.EventHandler),
		sweepInterval: opts.SweepInterval,
		logger:        opts.Logger,
	}
}

// Open binds viewer → session and registers the session's event handler,
// superseding any previous binding for that viewer.
func (r *Registry) Open(viewer core.ViewerID, session core.SessionID, handler core.EventHandler) {
	r.mu.Lock()
	prev, superseded := r.open[viewer]
	r.open[viewer] = session
	r.handlers[session] = handler
	r.mu.Unlock()

	if superseded {
		r.logger.Debug("session superseded", "viewer", viewer, "previous", prev, "session", session)
	} else {
		r.logger.Debug("session opened", "viewer", viewer, "session", session)
	}
}

// Deactivate removes the viewer binding if it still points at the given
// session and queues the session for handler detachment.
func (r *Registry) Deactivate(viewer core.ViewerID, session core.SessionID) {
	r.mu.Lock()
	if r.open[viewer] == session {
		delete(r.open, viewer)
	}
	r.pending = append(r.pending, session)
	r.mu.Unlock()

	r.logger.Debug("session deactivated", "viewer", viewer, "session", session)
}

// Current reports the active session for a viewer, if any.
func (r *Registry) Current(viewer core.ViewerID) (core.SessionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.open[viewer]
	return id, ok
}

// OpenSessions returns the number of currently open sessions.
func (r *Registry) OpenSessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// PendingDetach returns the number of deactivated sessions awaiting sweep.
func (r *Registry) PendingDetach() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// HandleClick forwards a click to the handler of the clicking viewer's
// current session. Clicks for viewers without an open session are ignored.
func (r *Registry) HandleClick(ev *core.ClickEvent) {
	if h := r.currentHandler(ev.Viewer); h != nil {
		h.HandleClick(ev)
	}
}

// HandleClose forwards a close to the handler of the closing viewer's
// current session.
func (r *Registry) HandleClose(ev core.CloseEvent) {
	if h := r.currentHandler(ev.Viewer); h != nil {
		h.HandleClose(ev)
	}
}

func (r *Registry) currentHandler(viewer core.ViewerID) core.EventHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.open[viewer]
	if !ok {
		return nil
	}
	return r.handlers[id]
}

// Start launches the periodic sweep on the given scheduler. Calling Start
// twice replaces the previous sweep task.
func (r *Registry) Start(s core.Scheduler) {
	if r.sweepTask != nil {
		r.sweepTask.Cancel()
	}
	r.sweepTask = s.RunRepeating(r.sweepInterval, r.Sweep)
}

// Stop cancels the periodic sweep, if running.
func (r *Registry) Stop() {
	if r.sweepTask != nil {
		r.sweepTask.Cancel()
		r.sweepTask = nil
	}
}

// Sweep detaches handlers for every deactivated session, but only when no
// session is open at the time it fires; otherwise it defers untouched.
func (r *Registry) Sweep() {
	r.mu.Lock()
	if len(r.open) != 0 {
		r.mu.Unlock()
		return
	}
	detached := len(r.pending)
	for _, id := range r.pending {
		delete(r.handlers, id)
	}
	r.pending = nil
	r.mu.Unlock()

	if detached > 0 {
		r.logger.Debug("sweep detached sessions", "count", detached)
	}
}
