package perspective

import (
	"errors"
	"fmt"
)

// ErrNoShell reports an activation attempted before SetShell.
var ErrNoShell = errors.New("perspective: no shell attached")

// ErrDuplicateID reports a registration whose id is already claimed by
// a different perspective variant.
var ErrDuplicateID = errors.New("perspective: duplicate id")

// NotFoundError reports an activation request for an unregistered
// perspective. It aborts the requested switch and leaves all state
// unchanged.
type NotFoundError struct {
	// ID is the requested identifier (or the variant type name when
	// activation was requested by type).
	ID string
	// Suggestion is the closest registered id, when one is close
	// enough to be worth naming.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("perspective %q not registered (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("perspective %q not registered", e.ID)
}

// OverlayError records one non-fatal overlay failure during a switch.
// The switch continues past it; Activate returns the accumulated
// failures in occurrence order.
type OverlayError struct {
	// Phase is "remove" or "load".
	Phase string
	URI   string
	Err   error
}

func (e *OverlayError) Error() string {
	return fmt.Sprintf("overlay %s %s: %v", e.Phase, e.URI, e.Err)
}

func (e *OverlayError) Unwrap() error { return e.Err }
