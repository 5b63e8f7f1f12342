package terminal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/skels/menugrid/core"
)

// Display is a core.RenderSink drawing per-viewer containers as styled text
// grids. Safe for concurrent use.
type Display struct {
	mu         sync.Mutex
	containers map[core.ViewerID]*container

	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
}

type container struct {
	rows  int
	title string
	cells map[int]core.Rendered
}

// New constructs an empty display.
func New() *Display {
	return &Display{
		containers:  make(map[core.ViewerID]*container),
		borderStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		titleStyle:  lipgloss.NewStyle().Bold(true),
	}
}

// Open implements core.RenderSink, replacing the viewer's container with an
// empty grid.
func (d *Display) Open(viewer core.ViewerID, rows int, title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.containers[viewer] = &container{
		rows:  rows,
		title: title,
		cells: make(map[int]core.Rendered),
	}
}

// RenderCell implements core.RenderSink. Cells pushed for viewers without
// an open container, or outside the container's bounds, are dropped.
func (d *Display) RenderCell(viewer core.ViewerID, slot int, r core.Rendered) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[viewer]
	if !ok || slot < 0 || slot >= c.rows*9 {
		return
	}
	c.cells[slot] = r
}

// ContainerSize implements core.RenderSink. Reports 0 when the viewer has
// no open container.
func (d *Display) ContainerSize(viewer core.ViewerID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[viewer]
	if !ok {
		return 0
	}
	return c.rows * 9
}

// Close discards the viewer's container. Hosts call it when the viewer
// dismisses the display, typically right before emitting a CloseEvent.
func (d *Display) Close(viewer core.ViewerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.containers, viewer)
}

// View draws the viewer's container as a bordered grid, one glyph per slot.
// Returns an empty string when the viewer has no open container.
func (d *Display) View(viewer core.ViewerID) string {
	d.mu.Lock()
	c, ok := d.containers[viewer]
	if !ok {
		d.mu.Unlock()
		return ""
	}
	rows, title := c.rows, c.title
	cells := make(map[int]core.Rendered, len(c.cells))
	for slot, r := range c.cells {
		cells[slot] = r
	}
	d.mu.Unlock()

	var grid strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			grid.WriteByte('\n')
		}
		marks := make([]string, 9)
		for col := 0; col < 9; col++ {
			marks[col] = cellMark(cells, row*9+col)
		}
		grid.WriteString(strings.Join(marks, " "))
	}

	header := d.titleStyle.Render(Stylize(title))
	return lipgloss.JoinVertical(lipgloss.Left, header, d.borderStyle.Render(grid.String()))
}

// Describe returns a plain-text inventory of the viewer's container, one
// line per occupied slot, for logs and debugging.
func (d *Display) Describe(viewer core.ViewerID) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[viewer]
	if !ok {
		return ""
	}

	var out strings.Builder
	for slot := 0; slot < c.rows*9; slot++ {
		r, ok := c.cells[slot]
		if !ok {
			continue
		}
		fmt.Fprintf(&out, "%2d: %s", slot, StripTags(r.Label))
		if r.Amount > 1 {
			fmt.Fprintf(&out, " x%d", r.Amount)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// cellMark picks the one-cell marker: the glyph if set, otherwise the first
// rune of the label, otherwise a middle dot for empty slots.
func cellMark(cells map[int]core.Rendered, slot int) string {
	r, ok := cells[slot]
	if !ok {
		return "·"
	}
	if r.Glyph != "" {
		return Stylize(r.Glyph)
	}
	label := StripTags(r.Label)
	for _, ch := range label {
		return Stylize(string(ch))
	}
	return "·"
}
