package testutil

import (
	"fmt"

	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/menu"
)

// StubCell is a menu.Cell with a click counter, for asserting dispatch.
type StubCell struct {
	Label     string
	Moves     bool
	Clicks    int
	LastEvent *core.ClickEvent
}

// NewStubCell constructs an unmovable stub cell with the given label.
func NewStubCell(label string) *StubCell {
	return &StubCell{Label: label}
}

// Render implements menu.Cell.
func (c *StubCell) Render() core.Rendered {
	return core.Rendered{Label: c.Label}
}

// Movable implements menu.Cell.
func (c *StubCell) Movable() bool { return c.Moves }

// Interact implements menu.Cell, counting clicks.
func (c *StubCell) Interact(_ *menu.Menu, ev *core.ClickEvent) {
	c.Clicks++
	c.LastEvent = ev
}

// StubCells builds n stub cells labelled "cell-0" through "cell-<n-1>".
func StubCells(n int) []*StubCell {
	out := make([]*StubCell, n)
	for i := range out {
		out[i] = NewStubCell(fmt.Sprintf("cell-%d", i))
	}
	return out
}

// AsCells converts stub cells to the menu.Cell interface slice expected by
// backlog setters.
func AsCells(stubs []*StubCell) []menu.Cell {
	out := make([]menu.Cell, len(stubs))
	for i, s := range stubs {
		out[i] = s
	}
	return out
}
