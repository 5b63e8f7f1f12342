package testutil

import "github.com/skels/menugrid/core"

// OpenCall records one RenderSink.Open invocation.
type OpenCall struct {
	Viewer core.ViewerID
	Rows   int
	Title  string
}

// RecordingSink is a core.RenderSink capturing everything pushed through it.
// ContainerSize reports the size of the viewer's last opened container
// unless overridden with SetContainerSize (to simulate the viewer having
// navigated away).
type RecordingSink struct {
	Opens []OpenCall

	cells    map[core.ViewerID]map[int]core.Rendered
	counts   map[core.ViewerID]map[int]int
	sizes    map[core.ViewerID]int
	override map[core.ViewerID]int
}

// NewRecordingSink constructs an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{
		cells:    make(map[core.ViewerID]map[int]core.Rendered),
		counts:   make(map[core.ViewerID]map[int]int),
		sizes:    make(map[core.ViewerID]int),
		override: make(map[core.ViewerID]int),
	}
}

// Open records the call and resets the viewer's container.
func (s *RecordingSink) Open(viewer core.ViewerID, rows int, title string) {
	s.Opens = append(s.Opens, OpenCall{Viewer: viewer, Rows: rows, Title: title})
	s.cells[viewer] = make(map[int]core.Rendered)
	s.counts[viewer] = make(map[int]int)
	s.sizes[viewer] = rows * 9
	delete(s.override, viewer)
}

// RenderCell stores the rendered cell and bumps its render count.
func (s *RecordingSink) RenderCell(viewer core.ViewerID, slot int, r core.Rendered) {
	if s.cells[viewer] == nil {
		s.cells[viewer] = make(map[int]core.Rendered)
		s.counts[viewer] = make(map[int]int)
	}
	s.cells[viewer][slot] = r
	s.counts[viewer][slot]++
}

// ContainerSize reports the viewer's current container size.
func (s *RecordingSink) ContainerSize(viewer core.ViewerID) int {
	if size, ok := s.override[viewer]; ok {
		return size
	}
	return s.sizes[viewer]
}

// SetContainerSize overrides the reported container size, simulating the
// viewer navigating to an unrelated display.
func (s *RecordingSink) SetContainerSize(viewer core.ViewerID, size int) {
	s.override[viewer] = size
}

// Rendered returns a copy of the viewer's rendered slots.
func (s *RecordingSink) Rendered(viewer core.ViewerID) map[int]core.Rendered {
	out := make(map[int]core.Rendered, len(s.cells[viewer]))
	for slot, r := range s.cells[viewer] {
		out[slot] = r
	}
	return out
}

// RenderCount returns how many times the slot was rendered since the
// viewer's container was last opened.
func (s *RecordingSink) RenderCount(viewer core.ViewerID, slot int) int {
	return s.counts[viewer][slot]
}

// RenderedSlots returns the set of slots rendered at least once.
func (s *RecordingSink) RenderedSlots(viewer core.ViewerID) map[int]bool {
	out := make(map[int]bool, len(s.cells[viewer]))
	for slot := range s.cells[viewer] {
		out[slot] = true
	}
	return out
}
