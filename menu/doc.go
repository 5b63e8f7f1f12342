// Package menu implements slot-addressable interactive menus: single-grid
// menus with row-based layout rules, and paged menus that paginate a backlog
// of cells across a reserved display region.
//
// A Menu owns a mapping from slot indices to cells, a lifecycle
// (created → opened → closed, with closed terminal), and the dispatch of
// viewer clicks onto the clicked cell's handler. Layout niceties — even
// distribution of sparse rows, background filling, entrance animations — are
// applied once at open time.
//
// Menus depend only on the contracts in the core package: a render sink to
// reach the viewer's container, a session registry for viewer → session
// bookkeeping, and a scheduler for periodic updates. All menu state is owned
// by the cooperative dispatch timeline and needs no locking.
package menu
