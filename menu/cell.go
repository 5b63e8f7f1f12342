package menu

import "github.com/skels/menugrid/core"

// ClickHandler is invoked when a viewer clicks a cell. The menu passes
// itself so handlers can navigate (open another menu, flip a page) and the
// raw event so they can branch on the click kind.
type ClickHandler func(m *Menu, ev *core.ClickEvent)

// Cell is an immutable-once-built visual and interactive unit occupying
// exactly one menu slot.
//
// Contract:
//   - Render is idempotent and side-effect free; it may be called any number
//     of times and must yield an equivalent value
//   - Movable reports whether the viewer may freely move or remove the
//     cell's content; clicks on unmovable cells are suppressed
//   - Interact is the side-effecting callback run on every click that
//     reaches the cell.
type Cell interface {
	Render() core.Rendered
	Movable() bool
	Interact(m *Menu, ev *core.ClickEvent)
}

// ItemOptions configures an Item.
type ItemOptions struct {
	// Glyph is a short visual marker (an icon name, a rune).
	Glyph string
	// Lore holds optional descriptive lines shown alongside the label.
	Lore []string
	// Amount is the stack count shown on the cell. Zero means "no count".
	Amount int
	// Movable allows the viewer to freely move or remove the item.
	// Items are unmovable by default.
	Movable bool
	// OnClick runs when the viewer clicks the item. May be nil.
	OnClick ClickHandler
}

// Item is the standard Cell implementation: a glyph, a label, optional lore
// and amount, and an optional click handler.
type Item struct {
	label string
	opts  ItemOptions
}

// NewItem constructs an Item with the given display label and optional
// overrides.
func NewItem(label string, optFns ...func(o *ItemOptions)) *Item {
	opts := ItemOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Item{label: label, opts: opts}
}

// Render builds the item's display representation. The lore slice is copied
// so callers cannot mutate the item through the returned value.
func (i *Item) Render() core.Rendered {
	lore := make([]string, len(i.opts.Lore))
	copy(lore, i.opts.Lore)
	return core.Rendered{
		Glyph:  i.opts.Glyph,
		Label:  i.label,
		Lore:   lore,
		Amount: i.opts.Amount,
	}
}

// Movable reports whether the viewer may freely move the item.
func (i *Item) Movable() bool { return i.opts.Movable }

// Interact runs the item's click handler, if any.
func (i *Item) Interact(m *Menu, ev *core.ClickEvent) {
	if i.opts.OnClick != nil {
		i.opts.OnClick(m, ev)
	}
}

// fillerCell wraps a background filler template. Filler is never movable
// regardless of the wrapped cell's own answer.
type fillerCell struct {
	Cell
}

func (f *fillerCell) Movable() bool { return false }

func (f *fillerCell) Interact(*Menu, *core.ClickEvent) {}
