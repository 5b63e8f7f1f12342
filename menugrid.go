// Package menugrid provides a high-level façade over the session registry
// and menu packages, enabling rapid construction of slot-based interactive
// UIs. Most applications interact with this package by:
//  1. Creating a MenuGrid via New() with their render sink, event source
//     and scheduler
//  2. Building menus through NewMenu / NewPagedMenu, which arrive pre-wired
//     to the shared registry
//  3. Opening menus for viewers and letting the registry route clicks and
//     closes to them
//
// The façade owns the registry lifecycle: it subscribes the registry to the
// event source and starts the periodic sweep that detaches handlers of
// sessions left dangling. All defaults are safe for local development and
// testing; hosts typically supply a structured logger.
package menugrid

import (
	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/logging"
	"github.com/skels/menugrid/menu"
	"github.com/skels/menugrid/session"
)

// Options configures the MenuGrid instance.
type Options struct {
	// SweepInterval is the period, in ticks, of the registry sweep.
	// Defaults to session.DefaultSweepInterval.
	SweepInterval int
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// WithLogger sets the logger used by the registry and every menu built
// through the façade.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithSweepInterval overrides the registry sweep period in ticks.
func WithSweepInterval(ticks int) func(o *Options) {
	return func(o *Options) { o.SweepInterval = ticks }
}

// MenuGrid is the high-level façade aggregating the session registry and
// the collaborators menus need.
type MenuGrid struct {
	sink      core.RenderSink
	source    core.EventSource
	scheduler core.Scheduler
	registry  *session.Registry
	logger    logging.Logger
}

// New creates a MenuGrid bound to the host's render sink, event source and
// scheduler. The registry is subscribed to the event source and its sweep
// is started immediately.
func New(sink core.RenderSink, source core.EventSource, sched core.Scheduler, optFns ...func(o *Options)) *MenuGrid {
	opts := Options{
		SweepInterval: session.DefaultSweepInterval,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	registry := session.NewRegistry(func(o *session.RegistryOptions) {
		o.SweepInterval = opts.SweepInterval
		o.Logger = opts.Logger
	})
	source.Subscribe(registry)
	registry.Start(sched)

	return &MenuGrid{
		sink:      sink,
		source:    source,
		scheduler: sched,
		registry:  registry,
		logger:    opts.Logger,
	}
}

// NewMenu builds a menu pre-wired to the façade's registry, sink and
// scheduler.
func (g *MenuGrid) NewMenu(rows int, title string) (*menu.Menu, error) {
	return menu.New(rows, title, g.menuOptions)
}

// NewPagedMenu builds a paged menu pre-wired like NewMenu.
func (g *MenuGrid) NewPagedMenu(rows int, title string) (*menu.PagedMenu, error) {
	return menu.NewPaged(rows, title, g.menuOptions)
}

func (g *MenuGrid) menuOptions(o *menu.Options) {
	o.Registry = g.registry
	o.Sink = g.sink
	o.Scheduler = g.scheduler
	o.Logger = g.logger
}

// Registry exposes the underlying session registry, mainly for hosts that
// want to inspect open sessions or drive the sweep themselves.
func (g *MenuGrid) Registry() *session.Registry { return g.registry }

// Shutdown stops the registry sweep and detaches from the event source.
// Menus already open keep their state but receive no further events.
func (g *MenuGrid) Shutdown() {
	g.registry.Stop()
	g.source.Unsubscribe(g.registry)
}
