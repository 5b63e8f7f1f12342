package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skels/menugrid/event"
	"github.com/skels/menugrid/internal/testutil"
	"github.com/skels/menugrid/menu"
	"github.com/skels/menugrid/menu/animation"
	"github.com/skels/menugrid/scheduler"
	"github.com/skels/menugrid/session"
)

type fixture struct {
	sink  *testutil.RecordingSink
	reg   *session.Registry
	sched *scheduler.Manual
	bus   *event.Bus
}

func newFixture() *fixture {
	f := &fixture{
		sink:  testutil.NewRecordingSink(),
		reg:   session.NewRegistry(),
		sched: scheduler.NewManual(),
		bus:   event.NewBus(),
	}
	f.bus.Subscribe(f.reg)
	return f
}

func (f *fixture) openAnimatedMenu(t *testing.T, rows int, anim menu.Animation) *menu.Menu {
	t.Helper()
	m, err := menu.New(rows, "animated", func(o *menu.Options) {
		o.Registry = f.reg
		o.Sink = f.sink
		o.Scheduler = f.sched
	})
	require.NoError(t, err)
	m.FillBackground(menu.NewItem("pane"))
	m.SetAnimation(anim)
	m.Open("viewer")
	return m
}

func TestStrategies_RenderEverySlotExactlyOnce(t *testing.T) {
	strategies := map[string]func() menu.Animation{
		"wave_east":        func() menu.Animation { return animation.NewWaveEast() },
		"wave_west":        func() menu.Animation { return animation.NewWaveWest() },
		"split_middle_out": func() menu.Animation { return animation.NewSplitMiddleOut() },
		"random":           func() menu.Animation { return animation.NewRandom() },
	}

	for name, build := range strategies {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.openAnimatedMenu(t, 3, build())

			// Nothing renders before the first tick.
			assert.Empty(t, f.sink.Rendered("viewer"))

			f.sched.Advance(30)
			for slot := 0; slot < 27; slot++ {
				assert.Equal(t, 1, f.sink.RenderCount("viewer", slot), "slot %d", slot)
			}
		})
	}
}

func TestWaveEast_RevealsColumnsInOrder(t *testing.T) {
	f := newFixture()
	f.openAnimatedMenu(t, 2, animation.NewWaveEast())

	f.sched.Advance(1)
	rendered := f.sink.RenderedSlots("viewer")
	assert.True(t, rendered[0] && rendered[9], "first tick reveals column 0")
	assert.False(t, rendered[1], "column 1 waits for the next tick")

	f.sched.Advance(1)
	rendered = f.sink.RenderedSlots("viewer")
	assert.True(t, rendered[1] && rendered[10])
}

func TestSplitMiddleOut_StartsAtCenter(t *testing.T) {
	f := newFixture()
	f.openAnimatedMenu(t, 1, animation.NewSplitMiddleOut())

	f.sched.Advance(1)
	rendered := f.sink.RenderedSlots("viewer")
	assert.True(t, rendered[4])
	assert.False(t, rendered[3] || rendered[5])
}

func TestStop_HaltsPendingStages(t *testing.T) {
	f := newFixture()
	f.openAnimatedMenu(t, 2, animation.NewWaveEast())

	f.sched.Advance(3)
	// Closing the menu stops the animation mid-flight.
	f.bus.EmitClose("viewer")
	f.sched.Advance(20)

	rendered := f.sink.RenderedSlots("viewer")
	assert.True(t, rendered[2], "columns revealed before the close stay rendered")
	assert.False(t, rendered[3], "no stage may fire after Stop")
}

func TestStrategy_ReusableAcrossOpens(t *testing.T) {
	anim := animation.NewWaveEast()

	f1 := newFixture()
	f1.openAnimatedMenu(t, 1, anim)
	f1.sched.Advance(15)
	assert.Len(t, f1.sink.Rendered("viewer"), 9)

	f2 := newFixture()
	f2.openAnimatedMenu(t, 1, anim)
	f2.sched.Advance(15)
	assert.Len(t, f2.sink.Rendered("viewer"), 9)
}
