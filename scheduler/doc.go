// Package scheduler houses concrete implementations of the core.Scheduler
// contract.
//
//   - Loop runs callbacks on a single real-time tick goroutine, serializing
//     all scheduled work and submitted event dispatch.
//   - Manual is a deterministic clock advanced explicitly by the caller,
//     suited to tests and to hosts that already own a tick loop.
//
// Both implementations share the cooperative model menugrid is built on: no
// two callbacks ever run concurrently, so menus need no locks around their
// slot maps.
package scheduler
