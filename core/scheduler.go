package core

// Task is a handle to a scheduled callback. Cancel stops future firings; it
// is safe to call from inside the callback itself and safe to call twice.
type Task interface {
	Cancel()
}

// Scheduler runs callbacks on the cooperative dispatch timeline. All
// callbacks, together with event dispatch, execute serialized: no two run
// concurrently, which is what lets menus keep their slot maps lock-free.
//
// Delays and intervals are expressed in ticks, the host's native time unit.
type Scheduler interface {
	// RunOnce executes fn once after delayTicks ticks.
	RunOnce(delayTicks int, fn func()) Task
	// RunRepeating executes fn every intervalTicks ticks until cancelled.
	RunRepeating(intervalTicks int, fn func()) Task
}
