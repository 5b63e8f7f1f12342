package core

import "github.com/google/uuid"

// ViewerID identifies a single viewer across their whole connection lifetime.
// Hosts typically derive it from the underlying account or connection id.
type ViewerID string

// SessionID identifies one (viewer, menu-instance) binding. A fresh id is
// generated per menu at construction so that two menus opened for the same
// viewer over time never collide.
type SessionID string

// NewSessionID generates a new unique session identifier.
//
// This function creates a UUID-based unique identifier used to disambiguate
// concurrently or successively opened menus for the same viewer.
func NewSessionID() SessionID { return SessionID(uuid.NewString()) }
