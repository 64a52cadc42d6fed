// Package perspective owns the catalog of pluggable, mutually
// exclusive workbench perspectives and the single switch between
// them.
//
// A perspective is a full-area application mode contributed by plugin
// code. The controller tracks every registered perspective, keeps a
// deterministic presentation order, holds exactly one active
// perspective, and runs the activation sequence: deactivate the
// current perspective, strip its overlays, apply the target's overlays
// and event handlers, and flip the shell's visible view.
package perspective

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/overlay"
)

// Perspective is the capability surface the controller consumes. Each
// perspective variant is registered once; the catalog is keyed by the
// variant's concrete type.
type Perspective interface {
	// ID is a stable identifier, unique across registered perspectives.
	ID() string
	// Overlays lists the UI fragments merged into the shell while this
	// perspective is active. May be empty or nil.
	Overlays() []overlay.Overlay
	// EventHandlers lists the scoped key handlers registered with the
	// shell on activation, in order. May be empty or nil.
	EventHandlers() []EventHandler
	// SetActive notifies the perspective of becoming active or
	// inactive.
	SetActive(active bool)
}

// EventHandler is a key handler a perspective contributes to the
// shell. Keys lists the bindings it answers to, Scope restricts where
// it fires ("*" for everywhere).
type EventHandler interface {
	Name() string
	Scope() string
	Keys() []string
	Handle(msg tea.KeyMsg) tea.Cmd
}

// Shell is the host collaborator the controller drives during a
// switch. The controller never owns the shell; it only sequences calls
// into it.
type Shell interface {
	// RemoveOverlay unmounts a previously applied fragment.
	RemoveOverlay(uri string) error
	// LoadOverlay mounts a fragment with its resolved strings bundle.
	LoadOverlay(uri string, bundle *overlay.Bundle) error
	// AddEventHandler registers a perspective-contributed key handler.
	AddEventHandler(h EventHandler)
	// SelectView flips the visible deck slot.
	SelectView(slotID string)
	// RefreshMenus recomputes menu/command state from controller state.
	RefreshMenus()
}

// BundleLoader resolves strings-bundle URIs. A miss is reported as an
// error satisfying errors.Is(err, overlay.ErrBundleNotFound) and is
// never fatal to an activation.
type BundleLoader interface {
	Resolve(uri string) (*overlay.Bundle, error)
}

// ViewSlotID returns the deck slot identifier conventionally assigned
// to a perspective.
func ViewSlotID(id string) string {
	return "perspective-" + id
}
