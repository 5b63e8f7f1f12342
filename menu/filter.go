package menu

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the cells whose rendered labels fuzzily match query,
// best matches first. An empty query returns all cells in their original
// order. Matching is case-insensitive and diacritic-insensitive.
//
// Hosts typically run a paged menu's backlog through Filter before
// SetBacklog to make large collections searchable.
func Filter(query string, cells []Cell) []Cell {
	if query == "" {
		return append([]Cell(nil), cells...)
	}

	type ranked struct {
		cell Cell
		rank int
	}
	var matches []ranked
	for _, c := range cells {
		rank := fuzzy.RankMatchNormalizedFold(query, c.Render().Label)
		if rank < 0 {
			continue
		}
		matches = append(matches, ranked{cell: c, rank: rank})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })

	out := make([]Cell, len(matches))
	for i, m := range matches {
		out[i] = m.cell
	}
	return out
}
