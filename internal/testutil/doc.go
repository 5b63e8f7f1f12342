// Package testutil contains helper fakes and builders used across tests to
// reduce boilerplate when exercising menus: a recording render sink, stub
// cells with click counters, and small assertion helpers. These helpers are
// intentionally minimal and not intended for production usage.
package testutil
