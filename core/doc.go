// Package core provides the foundational domain types and interfaces used by
// menugrid. It defines the core abstractions for:
//
//   - Viewers and sessions (who is looking at which grid right now)
//   - Input events (clicks and closes delivered by the hosting surface)
//   - The render sink (how built cells reach a viewer's live container)
//   - The scheduler (cooperative tick-based task execution)
//   - The session registry contract (viewer → active session bookkeeping)
//
// The package intentionally keeps implementation concerns (concrete menus,
// registries, schedulers, display adapters) out of scope, exposing small
// interfaces so hosts can plug their own surface, event delivery and timing
// models without depending on any concrete backend.
package core
