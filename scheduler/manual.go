package scheduler

import "github.com/skels/menugrid/core"

// Manual is a core.Scheduler driven explicitly through Advance. Nothing
// fires until the caller advances the clock, which makes scheduled behavior
// fully deterministic.
//
// Manual is not safe for concurrent use: it is meant to be driven from the
// same thread of control that dispatches events, matching the cooperative
// model the rest of the library assumes.
type Manual struct {
	now   int
	tasks []*manualTask
}

type manualTask struct {
	fireAt    int
	interval  int // 0 for one-shot
	fn        func()
	cancelled bool
}

// Cancel stops future firings of the task.
func (t *manualTask) Cancel() { t.cancelled = true }

// NewManual constructs a Manual scheduler at tick zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current tick.
func (m *Manual) Now() int { return m.now }

// RunOnce schedules fn to fire once after delayTicks ticks. A delay below
// one tick fires on the next tick.
func (m *Manual) RunOnce(delayTicks int, fn func()) core.Task {
	if delayTicks < 1 {
		delayTicks = 1
	}
	t := &manualTask{fireAt: m.now + delayTicks, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// RunRepeating schedules fn to fire every intervalTicks ticks, first after
// intervalTicks, until the returned task is cancelled.
func (m *Manual) RunRepeating(intervalTicks int, fn func()) core.Task {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	t := &manualTask{fireAt: m.now + intervalTicks, interval: intervalTicks, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward tick by tick, firing due tasks in
// scheduling order. Tasks scheduled by a firing callback are eligible from
// the following tick onward.
func (m *Manual) Advance(ticks int) {
	for i := 0; i < ticks; i++ {
		m.now++
		due := m.collectDue()
		for _, t := range due {
			if t.cancelled {
				continue
			}
			t.fn()
			if t.interval > 0 && !t.cancelled {
				t.fireAt = m.now + t.interval
				m.tasks = append(m.tasks, t)
			}
		}
	}
}

// collectDue removes and returns tasks due at the current tick, dropping
// cancelled ones along the way.
func (m *Manual) collectDue() []*manualTask {
	var due []*manualTask
	rest := m.tasks[:0]
	for _, t := range m.tasks {
		switch {
		case t.cancelled:
		case t.fireAt <= m.now:
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	m.tasks = rest
	return due
}
