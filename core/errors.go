package core

import "fmt"

// OutOfRangeError reports a slot index or row count outside the valid bounds
// of a menu. It is always a caller contract violation, raised synchronously
// and never recovered from internally.
type OutOfRangeError struct {
	// What names the violated parameter ("slot", "rows").
	What string
	// Value is the offending value.
	Value int
	// Min and Max bound the valid range (inclusive).
	Min, Max int
}

// Error implements the error interface for OutOfRangeError.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.What, e.Value, e.Min, e.Max)
}

// InvalidRowError reports a row index outside [0, 5].
type InvalidRowError struct {
	Row int
}

// Error implements the error interface for InvalidRowError.
func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("row %d out of range [0, 5]", e.Row)
}

// InvalidSurfaceError reports that the viewer's currently open container no
// longer has a grid shape (its size is not a multiple of 9), meaning the
// viewer has navigated away to an unrelated display. It is surfaced to the
// caller of Update rather than silently swallowed.
type InvalidSurfaceError struct {
	Size int
}

// Error implements the error interface for InvalidSurfaceError.
func (e *InvalidSurfaceError) Error() string {
	return fmt.Sprintf("open container size %d is not grid-shaped", e.Size)
}

// InvalidIntervalError reports a non-positive scheduling interval.
type InvalidIntervalError struct {
	Interval int
}

// Error implements the error interface for InvalidIntervalError.
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("tick interval must be above 0, got %d", e.Interval)
}
