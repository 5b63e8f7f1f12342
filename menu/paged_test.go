package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/internal/testutil"
	"github.com/skels/menugrid/menu"
)

func (f *fixture) newPaged(t *testing.T, rows int, title string) *menu.PagedMenu {
	t.Helper()
	p, err := menu.NewPaged(rows, title, f.opts())
	require.NoError(t, err)
	return p
}

func TestSetDisplayRows_FlattensGaps(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 6, "flatten")

	// Selecting rows 0 and 4 reserves the whole span 0..44, gap included.
	require.NoError(t, p.SetDisplayRows(0, 4))
	slots := p.DisplaySlots()
	require.Len(t, slots, 45)
	assert.Equal(t, 0, slots[0])
	assert.Equal(t, 44, slots[44])
}

func TestSetDisplayRows_InvalidRow(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 6, "invalid")

	var bad *core.InvalidRowError
	require.ErrorAs(t, p.SetDisplayRows(6), &bad)
	require.ErrorAs(t, p.SetDisplayRows(1, -1), &bad)
	require.NoError(t, p.SetDisplayRows())
}

func TestOpen_AssignsPagesByChunking(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 2, "chunks")

	// A 7-slot display region with a 25-cell backlog: ceil(25/7) pages.
	require.NoError(t, p.SetDisplaySlots(1, 2, 3, 4, 5, 6, 7))
	stubs := testutil.StubCells(25)
	p.SetBacklog(testutil.AsCells(stubs)...)
	p.Open("viewer")

	require.Equal(t, 4, p.PageCount())
	assert.Equal(t, 0, p.CurrentPage())

	// Page 0 holds the first seven cells, in backlog order.
	cells := p.Cells()
	for i, slot := range p.DisplaySlots() {
		assert.Same(t, stubs[i], cells[slot], "slot %d", slot)
	}
}

func TestPage_LastPageShortAndBackfilled(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 2, "short")
	require.NoError(t, p.SetDisplaySlots(1, 2, 3, 4, 5, 6, 7))
	stubs := testutil.StubCells(25)
	p.SetBacklog(testutil.AsCells(stubs)...)
	p.FillBackground(menu.NewItem("pane"))
	p.Open("viewer")

	p.Page(3)
	require.Equal(t, 3, p.CurrentPage())

	// 25 = 3*7 + 4: the last page shows four cells, filler behind the rest.
	cells := p.Cells()
	slots := p.DisplaySlots()
	for i := 0; i < 4; i++ {
		assert.Same(t, stubs[21+i], cells[slots[i]], "display slot %d", slots[i])
	}
	for _, slot := range slots[4:] {
		require.NotNil(t, cells[slot], "slot %d should hold filler", slot)
		assert.False(t, cells[slot].Movable())
	}
}

func TestPage_OutOfRangeIsNoOp(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 2, "bounds")
	require.NoError(t, p.SetDisplaySlots(0, 1, 2))
	p.SetBacklog(testutil.AsCells(testutil.StubCells(5))...)
	p.Open("viewer")
	rendersBefore := f.sink.RenderCount("viewer", 0)

	p.Page(-1)
	assert.Equal(t, 0, p.CurrentPage())
	p.Page(7)
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, rendersBefore, f.sink.RenderCount("viewer", 0), "no-op paging must not render")
}

func TestPage_NavigationCells(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 2, "nav")
	require.NoError(t, p.SetDisplayRows(0))
	p.SetBacklog(testutil.AsCells(testutil.StubCells(20))...)

	prev := menu.NewItem("prev")
	next := menu.NewItem("next")
	require.NoError(t, p.SetPrevPage(9, prev))
	require.NoError(t, p.SetNextPage(17, next))
	p.FillBackground(menu.NewItem("pane"))
	p.Open("viewer")
	require.Equal(t, 3, p.PageCount())

	// First page: no "previous", filler in its place.
	cells := p.Cells()
	assert.False(t, cells[9].Movable())
	assert.NotEqual(t, menu.Cell(prev), cells[9])
	assert.Equal(t, menu.Cell(next), cells[17])

	p.Page(1)
	cells = p.Cells()
	assert.Equal(t, menu.Cell(prev), cells[9])
	assert.Equal(t, menu.Cell(next), cells[17])

	// Last page: no "next", filler in its place.
	p.Page(1)
	cells = p.Cells()
	assert.Equal(t, menu.Cell(prev), cells[9])
	assert.NotEqual(t, menu.Cell(next), cells[17])
	assert.False(t, cells[17].Movable())
}

func TestPage_NonZeroDeltaRerendersAffectedSlots(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 2, "rerender")
	require.NoError(t, p.SetDisplayRows(0))
	stubs := testutil.StubCells(18)
	p.SetBacklog(testutil.AsCells(stubs)...)
	p.Open("viewer")

	before := f.sink.RenderCount("viewer", 0)
	p.Page(1)
	assert.Equal(t, before+1, f.sink.RenderCount("viewer", 0))

	// The viewer sees the new page's content, never a mixed state.
	assert.Equal(t, core.Rendered{Label: "cell-9"}, f.sink.Rendered("viewer")[0])
}

func TestBacklogMutationAfterOpenDoesNotRechunk(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 1, "frozen")
	require.NoError(t, p.SetDisplaySlots(0, 1, 2))
	p.SetBacklog(testutil.AsCells(testutil.StubCells(6))...)
	p.Open("viewer")
	require.Equal(t, 2, p.PageCount())

	p.AddToBacklog(testutil.NewStubCell("late"))
	assert.Equal(t, 2, p.PageCount(), "pages are assigned exactly once per open")
	p.Page(1)
	p.Page(1)
	assert.Equal(t, 1, p.CurrentPage(), "no page exists for the late addition")
}

func TestPagedMenu_EmptyBacklog(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 1, "empty")
	require.NoError(t, p.SetDisplaySlots(0, 1, 2))
	p.Open("viewer")

	assert.Equal(t, 0, p.PageCount())
	assert.Equal(t, 0, p.CurrentPage())
}

func TestSetNextPage_Bounds(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 1, "navbounds")

	var oor *core.OutOfRangeError
	require.ErrorAs(t, p.SetNextPage(9, menu.NewItem("next")), &oor)
	require.ErrorAs(t, p.SetPrevPage(-1, menu.NewItem("prev")), &oor)
}

func TestBacklog_ReturnsCopy(t *testing.T) {
	f := newFixture()
	p := f.newPaged(t, 1, "copy")
	p.SetBacklog(testutil.AsCells(testutil.StubCells(3))...)

	got := p.Backlog()
	require.Len(t, got, 3)
	got[0] = nil
	assert.NotNil(t, p.Backlog()[0])
}
