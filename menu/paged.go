package menu

import (
	"math"

	"github.com/skels/menugrid/core"
)

// PagedMenu is a Menu that paginates a backlog of cells across a reserved
// display region, with fixed navigation slots for flipping pages.
//
// Configure the display region (SetDisplayRows), the backlog and the
// navigation cells before Open. Pages are assigned from the backlog exactly
// once per Open; mutating the backlog afterwards has no effect on the pages
// already assigned.
type PagedMenu struct {
	*Menu

	displaySlots []int
	backlog      []Cell
	pages        map[int][]Cell
	current      int
	total        int

	prevSlot int
	prevCell Cell
	nextSlot int
	nextCell Cell
}

// NewPaged constructs a paged menu. Rows, title and options behave exactly
// as in New.
func NewPaged(rows int, title string, optFns ...func(o *Options)) (*PagedMenu, error) {
	m, err := New(rows, title, optFns...)
	if err != nil {
		return nil, err
	}
	return &PagedMenu{Menu: m, pages: make(map[int][]Cell)}, nil
}

// SetDisplayRows reserves rows (0 to 5) for paginated content. The reserved
// region is the full inclusive span from the lowest to the highest selected
// row: gaps between non-contiguous selections collapse into one contiguous
// block.
func (p *PagedMenu) SetDisplayRows(rows ...int) error {
	if len(rows) == 0 {
		return nil
	}

	begin, end := math.MaxInt, math.MinInt
	for _, row := range rows {
		if row < 0 || row > 5 {
			return &core.InvalidRowError{Row: row}
		}
		if min := row * 9; min < begin {
			begin = min
		}
		if max := row*9 + 8; max > end {
			end = max
		}
	}
	for slot := begin; slot <= end; slot++ {
		p.displaySlots = append(p.displaySlots, slot)
	}
	return nil
}

// SetDisplaySlots reserves an explicit ordered set of slots for paginated
// content, as a fine-grained alternative to SetDisplayRows for regions that
// do not span whole rows.
func (p *PagedMenu) SetDisplaySlots(slots ...int) error {
	for _, slot := range slots {
		if slot < 0 || slot >= p.rows*9 {
			return &core.OutOfRangeError{What: "slot", Value: slot, Min: 0, Max: p.rows*9 - 1}
		}
	}
	p.displaySlots = append(p.displaySlots, slots...)
	return nil
}

// AddToBacklog appends cells to the backlog of items queued for display.
// Must be called before Open.
func (p *PagedMenu) AddToBacklog(cells ...Cell) {
	p.backlog = append(p.backlog, cells...)
}

// SetBacklog replaces the backlog. Must be called before Open.
func (p *PagedMenu) SetBacklog(cells ...Cell) {
	p.backlog = append(p.backlog[:0:0], cells...)
}

// Backlog returns a copy of the queued cells.
func (p *PagedMenu) Backlog() []Cell {
	return append([]Cell(nil), p.backlog...)
}

// SetNextPage places the "next page" navigation cell at a fixed slot
// outside the display region.
func (p *PagedMenu) SetNextPage(slot int, c Cell) error {
	if slot < 0 || slot >= p.rows*9 {
		return &core.OutOfRangeError{What: "slot", Value: slot, Min: 0, Max: p.rows*9 - 1}
	}
	p.nextSlot, p.nextCell = slot, c
	return nil
}

// SetPrevPage places the "previous page" navigation cell at a fixed slot
// outside the display region.
func (p *PagedMenu) SetPrevPage(slot int, c Cell) error {
	if slot < 0 || slot >= p.rows*9 {
		return &core.OutOfRangeError{What: "slot", Value: slot, Min: 0, Max: p.rows*9 - 1}
	}
	p.prevSlot, p.prevCell = slot, c
	return nil
}

// Open chunks the backlog into pages, lays out page zero and then runs the
// base open sequence.
func (p *PagedMenu) Open(viewer core.ViewerID) {
	p.assignPages()
	p.Page(0)
	p.Menu.Open(viewer)
}

// Page moves the view by delta pages. Targets outside the assigned range
// are silently ignored. The slot map is fully mutated before any render, so
// the viewer only ever sees the new page's content; with a non-zero delta
// the affected slots are re-rendered live.
func (p *PagedMenu) Page(delta int) {
	target := p.current + delta
	if target < 0 || target >= p.total {
		return
	}
	content, ok := p.pages[target]
	if !ok {
		return
	}

	var fill Cell
	if p.filler != nil {
		fill = &fillerCell{p.filler}
	}

	delete(p.cells, p.prevSlot)
	delete(p.cells, p.nextSlot)
	if target > 0 {
		if p.prevCell != nil {
			p.cells[p.prevSlot] = p.prevCell
		}
	} else if fill != nil {
		p.cells[p.prevSlot] = fill
	}
	if target < p.total-1 {
		if p.nextCell != nil {
			p.cells[p.nextSlot] = p.nextCell
		}
	} else if fill != nil {
		p.cells[p.nextSlot] = fill
	}

	remaining := content
	for _, slot := range p.displaySlots {
		delete(p.cells, slot)
		switch {
		case len(remaining) > 0:
			p.cells[slot] = remaining[0]
			remaining = remaining[1:]
		case fill != nil:
			p.cells[slot] = fill
		}
	}

	if delta != 0 {
		seen := make(map[int]bool, len(p.displaySlots)+2)
		affected := make([]int, 0, len(p.displaySlots)+2)
		for _, slot := range append([]int{p.prevSlot, p.nextSlot}, p.displaySlots...) {
			if !seen[slot] {
				seen[slot] = true
				affected = append(affected, slot)
			}
		}
		if err := p.Update(affected...); err != nil {
			p.logger.Warn("page render skipped", "session", p.sessionID, "error", err)
		}
	}
	p.current = target
}

// assignPages chunks the backlog, in order, into pages sized by the display
// region. Runs exactly once per Open.
func (p *PagedMenu) assignPages() {
	p.pages = make(map[int][]Cell)
	p.current = 0

	size := len(p.displaySlots)
	if size == 0 {
		p.total = 0
		return
	}
	for i := 0; i < len(p.backlog); i += size {
		end := i + size
		if end > len(p.backlog) {
			end = len(p.backlog)
		}
		p.pages[len(p.pages)] = append([]Cell(nil), p.backlog[i:end]...)
	}
	p.total = len(p.pages)
}

// CurrentPage returns the zero-based page currently shown.
func (p *PagedMenu) CurrentPage() int { return p.current }

// PageCount returns the number of assigned pages.
func (p *PagedMenu) PageCount() int { return p.total }

// DisplaySlots returns a copy of the reserved display region.
func (p *PagedMenu) DisplaySlots() []int {
	return append([]int(nil), p.displaySlots...)
}
