// Package animation provides entrance animations for menus: strategies that
// stagger the initial rendering of cells over scheduler ticks instead of
// drawing everything in one batch.
//
// Every strategy implements menu.Animation. Each reveals the full grid in
// per-tick stages and renders every assigned slot exactly once in its final
// state; closing the menu stops any stages still pending.
//
//   - WaveEast / WaveWest sweep column by column across the grid
//   - SplitMiddleOut grows outward from the center column
//   - Random reveals a few randomly chosen slots per tick
package animation
