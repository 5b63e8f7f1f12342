// Package event provides an in-process implementation of the
// core.EventSource contract.
//
// Hosts that receive viewer input on their own transport translate it into
// ClickEvent / CloseEvent values and emit them on a Bus; the session
// registry subscribes once and routes each event to the owning menu. The
// emit methods report whether the handled click was suppressed so the host
// can cancel its default slot handling.
package event
