package core

// Rendered is the built, displayable representation of a cell. Building a
// Rendered from a cell is idempotent and side-effect free; the same cell may
// be rendered any number of times and must yield an equivalent value.
//
// The fields are deliberately surface-agnostic: a terminal sink draws Glyph
// and Label as styled text, a game host maps them onto its own item model.
type Rendered struct {
	// Glyph is a short visual marker for the cell (an icon name, a rune).
	Glyph string
	// Label is the cell's display name. May contain lightweight formatting
	// tags such as <red> or <bold>; interpreting them is the sink's job.
	Label string
	// Lore holds optional descriptive lines shown alongside the label.
	Lore []string
	// Amount is the stack count shown on the cell. Zero means "no count".
	Amount int
}

// RenderSink is the boundary through which menus reach a viewer's live
// container. Implementations are provided by the hosting surface (a game
// server adapter, a terminal renderer, a test recorder).
//
// Contract:
//   - Open replaces whatever container the viewer currently sees with an
//     empty grid of rows*9 slots carrying the given title
//   - RenderCell pushes one built cell into the currently open container
//   - ContainerSize reports the slot count of the viewer's currently open
//     container, or 0 if none is open. Menus use it to detect that the
//     viewer has navigated away to an unrelated display.
type RenderSink interface {
	Open(viewer ViewerID, rows int, title string)
	RenderCell(viewer ViewerID, slot int, r Rendered)
	ContainerSize(viewer ViewerID) int
}
