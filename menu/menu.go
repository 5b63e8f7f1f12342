package menu

import (
	"errors"
	"sort"

	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/logging"
)

// Animation staggers the initial rendering of a menu's cells at open time.
// Implementations get full control of ordering and timing but must
// eventually render every assigned slot exactly once in its final state
// (via Menu.RenderSlot).
type Animation interface {
	// Init prepares the animation for a menu of the given row count.
	Init(rows int)
	// Run takes over the initial render of the just-opened menu.
	Run(m *Menu, s core.Scheduler)
	// Stop halts any remaining stages. Called when the menu closes.
	Stop()
}

// Options configures a Menu. Registry, Sink and Scheduler are required; the
// façade package fills them in automatically.
type Options struct {
	Registry  core.Registry
	Sink      core.RenderSink
	Scheduler core.Scheduler
	// Logger receives lifecycle events at debug level. Defaults to NoOp.
	Logger logging.Logger
}

// Menu is one viewer's interactive slot-addressable session: a rows*9 grid
// of cells with layout rules applied at open time and a one-way
// active → closed lifecycle.
//
// A Menu instance is single-viewer: each Open binds it to exactly one
// viewer. Configure (SetCell, DistributeRowEvenly, FillBackground,
// SetAnimation) before Open; mutating afterwards only takes effect through
// Update.
type Menu struct {
	rows      int
	title     string
	sessionID core.SessionID

	cells    map[int]Cell
	evenRows []int
	filler   Cell
	anim     Animation

	active bool
	viewer core.ViewerID

	registry  core.Registry
	sink      core.RenderSink
	scheduler core.Scheduler
	logger    logging.Logger
}

// New constructs a menu with the given row count (1 to 6) and display
// title. The title may carry lightweight formatting tags; interpreting them
// is the render sink's concern.
func New(rows int, title string, optFns ...func(o *Options)) (*Menu, error) {
	if rows < 1 || rows > 6 {
		return nil, &core.OutOfRangeError{What: "rows", Value: rows, Min: 1, Max: 6}
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registry == nil {
		return nil, errors.New("menu: a session registry is required")
	}
	if opts.Sink == nil {
		return nil, errors.New("menu: a render sink is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("menu: a scheduler is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Menu{
		rows:      rows,
		title:     title,
		sessionID: core.NewSessionID(),
		cells:     make(map[int]Cell),
		active:    true,
		registry:  opts.Registry,
		sink:      opts.Sink,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
	}, nil
}

// EvenlyDistributedSlots returns the slot offsets within a row that evenly
// distribute k cells (k in [0, 9]), centering them and leaving symmetric
// gaps rather than left-packing.
func EvenlyDistributedSlots(k int) []int {
	switch k {
	case 0:
		return nil
	case 1:
		return []int{4}
	case 2:
		return []int{3, 5}
	case 3:
		return []int{3, 4, 5}
	case 4:
		return []int{2, 3, 5, 6}
	case 5:
		return []int{2, 3, 4, 5, 6}
	case 6:
		return []int{1, 2, 3, 5, 6, 7}
	case 7:
		return []int{1, 2, 3, 4, 5, 6, 7}
	case 8:
		return []int{0, 1, 2, 3, 5, 6, 7, 8}
	default:
		return []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	}
}

// SetCell assigns a cell to a slot, overwriting any previous occupant.
func (m *Menu) SetCell(slot int, c Cell) error {
	if slot < 0 || slot >= m.rows*9 {
		return &core.OutOfRangeError{What: "slot", Value: slot, Min: 0, Max: m.rows*9 - 1}
	}
	m.cells[slot] = c
	return nil
}

// DistributeRowEvenly marks rows (0 to 5) for even redistribution of their
// cells at open time.
func (m *Menu) DistributeRowEvenly(rows ...int) error {
	for _, row := range rows {
		if row < 0 || row > 5 {
			return &core.InvalidRowError{Row: row}
		}
		m.evenRows = append(m.evenRows, row)
	}
	return nil
}

// DistributeAllRowsEvenly marks every row of this menu for redistribution.
func (m *Menu) DistributeAllRowsEvenly() {
	for row := 0; row < m.rows; row++ {
		m.evenRows = append(m.evenRows, row)
	}
}

// FillBackground sets the template cell used to fill every slot left
// unassigned at open time. Filler stamped into slots is never movable.
func (m *Menu) FillBackground(c Cell) {
	m.filler = c
}

// SetAnimation installs the entrance animation used on the next Open.
func (m *Menu) SetAnimation(a Animation) {
	m.anim = a
	a.Init(m.rows)
}

// Open computes the final slot layout, opens the container for the viewer,
// registers the session and starts rendering.
//
// Layout happens in two steps: rows marked for even distribution have their
// cells remapped onto the centered slot set for their count, then the filler
// template (if any) is stamped into every still-unassigned slot.
func (m *Menu) Open(viewer core.ViewerID) {
	m.viewer = viewer

	for _, row := range m.evenRows {
		m.distributeRow(row)
	}

	if m.filler != nil {
		fill := &fillerCell{m.filler}
		for slot := 0; slot < m.rows*9; slot++ {
			if _, ok := m.cells[slot]; !ok {
				m.cells[slot] = fill
			}
		}
	}

	m.sink.Open(viewer, m.rows, m.title)
	m.registry.Open(viewer, m.sessionID, m)

	if m.anim == nil {
		for slot := 0; slot < m.rows*9; slot++ {
			m.RenderSlot(slot)
		}
	} else {
		m.anim.Run(m, m.scheduler)
	}

	m.logger.Debug("menu opened", "viewer", viewer, "session", m.sessionID, "title", m.title)
}

// distributeRow remaps the cells of one row onto the centered slot set for
// their count. Cells in transit between two slots that happen to coincide
// must not be dropped, so original slots are only cleared when they are not
// reused as a target.
func (m *Menu) distributeRow(row int) {
	min, max := row*9, row*9+8

	var occupied []int
	for slot := range m.cells {
		if slot >= min && slot <= max {
			occupied = append(occupied, slot)
		}
	}
	if len(occupied) == 0 {
		return
	}
	sort.Ints(occupied)

	targets := EvenlyDistributedSlots(len(occupied))
	moved := make(map[int]Cell, len(occupied))
	reused := make(map[int]bool, len(targets))
	for i, old := range occupied {
		moved[targets[i]+min] = m.cells[old]
		reused[targets[i]+min] = true
	}
	for _, old := range occupied {
		if !reused[old] {
			delete(m.cells, old)
		}
	}
	for slot, c := range moved {
		m.cells[slot] = c
	}
}

// Update re-renders the given slots (or, with no arguments, every assigned
// slot) onto the viewer's live container. Slots with no assigned cell are
// skipped.
//
// Returns InvalidSurfaceError when the viewer's currently open container is
// no longer grid-shaped, which means they navigated away to an unrelated
// display.
func (m *Menu) Update(slots ...int) error {
	size := m.sink.ContainerSize(m.viewer)
	if size <= 0 || size%9 != 0 {
		return &core.InvalidSurfaceError{Size: size}
	}

	if len(slots) == 0 {
		for slot := 0; slot < m.rows*9; slot++ {
			m.RenderSlot(slot)
		}
		return nil
	}
	for _, slot := range slots {
		m.RenderSlot(slot)
	}
	return nil
}

// ScheduleUpdate re-runs Update every intervalTicks ticks until the menu
// becomes inactive, at which point the task cancels itself.
func (m *Menu) ScheduleUpdate(intervalTicks int) error {
	if intervalTicks <= 0 {
		return &core.InvalidIntervalError{Interval: intervalTicks}
	}

	var task core.Task
	task = m.scheduler.RunRepeating(intervalTicks, func() {
		if !m.active {
			task.Cancel()
			return
		}
		if err := m.Update(); err != nil {
			m.logger.Warn("scheduled update skipped", "session", m.sessionID, "error", err)
		}
	})
	return nil
}

// RenderSlot pushes the cell assigned to slot into the viewer's container.
// Unassigned slots are ignored. Animation implementations use it to stage
// the initial render.
func (m *Menu) RenderSlot(slot int) {
	if c, ok := m.cells[slot]; ok {
		m.sink.RenderCell(m.viewer, slot, c.Render())
	}
}

// HandleClick implements core.EventHandler. Clicks are ignored when the menu
// is inactive, when the click landed outside the menu's own container (the
// viewer's personal storage passes through untouched), when the registry's
// current session for the viewer is not this menu, or when the clicked slot
// holds no cell. Otherwise the event is suppressed unless the cell is
// movable, and the cell's handler runs.
func (m *Menu) HandleClick(ev *core.ClickEvent) {
	if !m.active || ev.Container != m.sessionID {
		return
	}
	if cur, ok := m.registry.Current(ev.Viewer); !ok || cur != m.sessionID {
		return
	}
	c, ok := m.cells[ev.Slot]
	if !ok {
		return
	}
	ev.Suppressed = !c.Movable()
	c.Interact(m, ev)
}

// HandleClose implements core.EventHandler. The first close stops any
// running animation, marks the menu inactive (terminal, one-way) and hands
// the session to the registry for deactivation. Later closes are no-ops.
func (m *Menu) HandleClose(ev core.CloseEvent) {
	if !m.active {
		return
	}
	if cur, ok := m.registry.Current(ev.Viewer); !ok || cur != m.sessionID {
		return
	}

	if m.anim != nil {
		m.anim.Stop()
	}
	m.active = false
	m.registry.Deactivate(ev.Viewer, m.sessionID)

	m.logger.Debug("menu closed", "viewer", ev.Viewer, "session", m.sessionID)
}

// CellAt returns the cell in the given slot, or nil.
func (m *Menu) CellAt(slot int) Cell {
	return m.cells[slot]
}

// Cells returns a copy of the slot → cell mapping.
func (m *Menu) Cells() map[int]Cell {
	out := make(map[int]Cell, len(m.cells))
	for slot, c := range m.cells {
		out[slot] = c
	}
	return out
}

// Viewer returns the viewer this menu was opened for. Empty before Open.
func (m *Menu) Viewer() core.ViewerID { return m.viewer }

// Rows returns the menu's row count.
func (m *Menu) Rows() int { return m.rows }

// Title returns the menu's display title.
func (m *Menu) Title() string { return m.title }

// SessionID returns the menu's unique session identifier.
func (m *Menu) SessionID() core.SessionID { return m.sessionID }

// Active reports whether the menu has not yet been closed.
func (m *Menu) Active() bool { return m.active }
