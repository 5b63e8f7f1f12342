package animation

import (
	"math/rand"

	"github.com/skels/menugrid/core"
	"github.com/skels/menugrid/menu"
)

// staged is the shared engine behind the concrete strategies: an ordered
// list of slot groups revealed one group per tick.
type staged struct {
	groups [][]int
	task   core.Task
}

// Run reveals one group per tick until every group has been rendered, then
// cancels its own task. The prepared groups are kept intact so the same
// strategy value can serve a later open.
func (a *staged) Run(m *menu.Menu, s core.Scheduler) {
	remaining := a.groups
	a.task = s.RunRepeating(1, func() {
		if len(remaining) == 0 {
			a.task.Cancel()
			return
		}
		for _, slot := range remaining[0] {
			m.RenderSlot(slot)
		}
		remaining = remaining[1:]
	})
}

// Stop halts any stages still pending.
func (a *staged) Stop() {
	if a.task != nil {
		a.task.Cancel()
	}
}

// columnGroups builds one group per entry of cols, each containing that
// column's slot in every row.
func columnGroups(rows int, cols [][]int) [][]int {
	groups := make([][]int, 0, len(cols))
	for _, group := range cols {
		slots := make([]int, 0, len(group)*rows)
		for _, col := range group {
			for row := 0; row < rows; row++ {
				slots = append(slots, row*9+col)
			}
		}
		groups = append(groups, slots)
	}
	return groups
}

// WaveEast sweeps the grid column by column, west to east.
type WaveEast struct {
	staged
}

// NewWaveEast constructs the strategy. Init must run before Run; menus do
// this when the animation is installed.
func NewWaveEast() *WaveEast { return &WaveEast{} }

// Init implements menu.Animation.
func (a *WaveEast) Init(rows int) {
	cols := make([][]int, 9)
	for col := 0; col < 9; col++ {
		cols[col] = []int{col}
	}
	a.groups = columnGroups(rows, cols)
}

// WaveWest sweeps the grid column by column, east to west.
type WaveWest struct {
	staged
}

// NewWaveWest constructs the strategy.
func NewWaveWest() *WaveWest { return &WaveWest{} }

// Init implements menu.Animation.
func (a *WaveWest) Init(rows int) {
	cols := make([][]int, 9)
	for col := 0; col < 9; col++ {
		cols[col] = []int{8 - col}
	}
	a.groups = columnGroups(rows, cols)
}

// SplitMiddleOut reveals the center column first and grows outward to both
// edges simultaneously.
type SplitMiddleOut struct {
	staged
}

// NewSplitMiddleOut constructs the strategy.
func NewSplitMiddleOut() *SplitMiddleOut { return &SplitMiddleOut{} }

// Init implements menu.Animation.
func (a *SplitMiddleOut) Init(rows int) {
	cols := [][]int{{4}, {3, 5}, {2, 6}, {1, 7}, {0, 8}}
	a.groups = columnGroups(rows, cols)
}

// Random reveals a handful of randomly chosen slots per tick until the
// whole grid is shown.
type Random struct {
	staged
	// PerTick is how many slots each stage reveals. Defaults to 5.
	PerTick int
}

// NewRandom constructs the strategy.
func NewRandom() *Random { return &Random{} }

// Init implements menu.Animation.
func (a *Random) Init(rows int) {
	perTick := a.PerTick
	if perTick < 1 {
		perTick = 5
	}

	slots := rand.Perm(rows * 9)
	var groups [][]int
	for i := 0; i < len(slots); i += perTick {
		end := i + perTick
		if end > len(slots) {
			end = len(slots)
		}
		groups = append(groups, slots[i:end])
	}
	a.groups = groups
}
