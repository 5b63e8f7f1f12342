package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skels/menugrid/core"
)

func TestStripTags(t *testing.T) {
	cases := map[string]string{
		"<red>Alert<reset> done":  "Alert done",
		"<bold><blue>Title":       "Title",
		"plain text":              "plain text",
		"a <b c":                  "a <b c",
		"1 <unknown> 2":           "1 <unknown> 2",
		"<italic>i<underline>u":   "iu",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripTags(in), "input %q", in)
	}
}

func TestStylize_PreservesText(t *testing.T) {
	for _, in := range []string{
		"<red>Alert<reset> done",
		"<bold>Title",
		"no tags at all",
		"<unknown> stays",
	} {
		got := Stylize(in)
		// Whatever styling the terminal profile allows, the visible text
		// must survive.
		assert.Contains(t, stripANSI(got), StripTags(in), "input %q", in)
	}
}

func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func TestDisplay_ContainerLifecycle(t *testing.T) {
	d := New()

	assert.Equal(t, 0, d.ContainerSize("viewer"))
	assert.Empty(t, d.View("viewer"))

	d.Open("viewer", 3, "Shop")
	assert.Equal(t, 27, d.ContainerSize("viewer"))

	d.Close("viewer")
	assert.Equal(t, 0, d.ContainerSize("viewer"))
}

func TestDisplay_RenderCellBounds(t *testing.T) {
	d := New()
	d.Open("viewer", 1, "Row")

	d.RenderCell("viewer", 0, core.Rendered{Label: "ok"})
	d.RenderCell("viewer", 9, core.Rendered{Label: "dropped"})
	d.RenderCell("stranger", 0, core.Rendered{Label: "dropped"})

	got := d.Describe("viewer")
	assert.Contains(t, got, "ok")
	assert.NotContains(t, got, "dropped")
}

func TestDisplay_View(t *testing.T) {
	d := New()
	d.Open("viewer", 2, "<bold>Shop")
	d.RenderCell("viewer", 0, core.Rendered{Glyph: "S"})
	d.RenderCell("viewer", 10, core.Rendered{Label: "Gold"})

	view := stripANSI(d.View("viewer"))
	assert.Contains(t, view, "Shop")
	assert.Contains(t, view, "S")
	assert.Contains(t, view, "G", "label fallback uses its first rune")
	assert.Contains(t, view, "·", "empty slots show a placeholder")
}

func TestDisplay_Describe(t *testing.T) {
	d := New()
	d.Open("viewer", 1, "Inventory")
	d.RenderCell("viewer", 3, core.Rendered{Label: "<green>Emerald", Amount: 4})

	got := d.Describe("viewer")
	assert.Contains(t, got, " 3: Emerald x4")
}

func TestDisplay_OpenResetsCells(t *testing.T) {
	d := New()
	d.Open("viewer", 1, "First")
	d.RenderCell("viewer", 0, core.Rendered{Label: "Old"})

	d.Open("viewer", 1, "Second")
	assert.NotContains(t, d.Describe("viewer"), "Old")
}
