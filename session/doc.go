// Package session houses the concrete implementation of the core.Registry
// contract. The interface itself lives in the core package to centralize
// domain contracts; keeping only the implementation here prevents higher
// level packages (menus, the façade) from depending on concrete bookkeeping.
//
// The Registry is also the single subscriber on the host's event source: it
// owns the viewer → session table and forwards each incoming click or close
// to the handler of the viewer's current session. Menus therefore never see
// a broadcast stream, only events the registry already resolved to them.
package session
