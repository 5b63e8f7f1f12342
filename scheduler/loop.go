package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/skels/menugrid/core"
)

// DefaultTickRate is the number of ticks per second a Loop runs at unless
// configured otherwise.
const DefaultTickRate = 20

// LoopOptions configures a Loop.
type LoopOptions struct {
	// TickRate is the number of ticks per second. Defaults to
	// DefaultTickRate.
	TickRate int
	// SubmitBuffer sets the buffer size of the submission channel.
	SubmitBuffer int
}

// Loop is a real-time core.Scheduler. A single goroutine owns a ticker and
// executes every scheduled callback and every submitted function, so all
// work passing through one Loop is serialized.
//
// Hosts that deliver input events from other goroutines should funnel the
// dispatch through Submit to stay inside the cooperative model.
type Loop struct {
	tickInterval time.Duration

	mu    sync.Mutex
	now   int
	tasks []*loopTask

	submit chan func()
	stop   chan struct{}
	done   chan struct{}
}

type loopTask struct {
	fireAt    int
	interval  int // 0 for one-shot
	fn        func()
	cancelled atomic.Bool
}

// Cancel stops future firings of the task. Safe to call from any goroutine
// and from inside the callback itself.
func (t *loopTask) Cancel() { t.cancelled.Store(true) }

// NewLoop constructs a Loop with optional overrides. The loop does not run
// until Start is called.
func NewLoop(optFns ...func(o *LoopOptions)) *Loop {
	opts := LoopOptions{
		TickRate:     DefaultTickRate,
		SubmitBuffer: 64,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.TickRate < 1 {
		opts.TickRate = DefaultTickRate
	}
	return &Loop{
		tickInterval: time.Second / time.Duration(opts.TickRate),
		submit:       make(chan func(), opts.SubmitBuffer),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start launches the loop goroutine.
func (l *Loop) Start() {
	go l.run()
}

// Stop halts the loop and waits for the goroutine to exit. Pending tasks are
// discarded.
func (l *Loop) Stop() {
	close(l.stop)
	<-l.done
}

// Submit runs fn on the loop goroutine, serialized with all scheduled
// callbacks. It blocks only when the submission buffer is full.
func (l *Loop) Submit(fn func()) {
	select {
	case l.submit <- fn:
	case <-l.stop:
	}
}

// RunOnce schedules fn to fire once after delayTicks ticks.
func (l *Loop) RunOnce(delayTicks int, fn func()) core.Task {
	if delayTicks < 1 {
		delayTicks = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	t := &loopTask{fireAt: l.now + delayTicks, fn: fn}
	l.tasks = append(l.tasks, t)
	return t
}

// RunRepeating schedules fn to fire every intervalTicks ticks until the
// returned task is cancelled.
func (l *Loop) RunRepeating(intervalTicks int, fn func()) core.Task {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	t := &loopTask{fireAt: l.now + intervalTicks, interval: intervalTicks, fn: fn}
	l.tasks = append(l.tasks, t)
	return t
}

func (l *Loop) run() {
	defer close(l.done)
	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case fn := <-l.submit:
			fn()
		case <-ticker.C:
			l.tick()
		}
	}
}

// tick advances the clock one tick and fires due tasks. Callbacks run with
// the mutex released so they can schedule or cancel freely.
func (l *Loop) tick() {
	l.mu.Lock()
	l.now++
	now := l.now
	var due []*loopTask
	rest := l.tasks[:0]
	for _, t := range l.tasks {
		switch {
		case t.cancelled.Load():
		case t.fireAt <= now:
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	l.tasks = rest
	l.mu.Unlock()

	for _, t := range due {
		if t.cancelled.Load() {
			continue
		}
		t.fn()
		if t.interval > 0 && !t.cancelled.Load() {
			l.mu.Lock()
			t.fireAt = l.now + t.interval
			l.tasks = append(l.tasks, t)
			l.mu.Unlock()
		}
	}
}
