// Package shell is the host side of the perspective system: the
// bubbletea window frame (header, status bar, deck body, footer), the
// overlay mount points, and the scoped key routing. The controller in
// internal/perspective drives it through the perspective.Shell
// interface and never the other way around.
package shell

import (
	"fmt"
	"log/slog"

	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
)

// MenuItem is one entry of the recomputed menu line.
type MenuItem struct {
	Index  int
	ID     string
	Title  string
	Active bool
}

// MenuState is what RefreshMenus reads from the application each time
// controller state may have changed.
type MenuState struct {
	Items  []MenuItem
	Locked bool
}

// MenuSource supplies the current menu state. Wired to the controller
// by the application root; the shell never reaches into the controller
// directly.
type MenuSource func() MenuState

type mountedOverlay struct {
	uri    string
	anchor string
	title  string
	lines  []string
}

// Shell implements perspective.Shell over the bubbletea frame.
type Shell struct {
	overlayRoot string
	keys        *KeyRegistry
	deck        *Deck
	mounted     []mountedOverlay
	menu        MenuState
	menuSource  MenuSource
	status      string
	statusErr   bool
	log         *slog.Logger
}

// New returns a shell that loads overlay fragments below overlayRoot.
func New(overlayRoot string, keys *KeyRegistry, log *slog.Logger) *Shell {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if log == nil {
		log = slog.Default()
	}
	return &Shell{
		overlayRoot: overlayRoot,
		keys:        keys,
		deck:        NewDeck(),
		log:         log,
	}
}

// Deck exposes the view-slot container so the application root can add
// slots as it registers perspectives.
func (s *Shell) Deck() *Deck { return s.deck }

// Keys exposes the key registry.
func (s *Shell) Keys() *KeyRegistry { return s.keys }

// SetMenuSource wires the menu line to application state.
func (s *Shell) SetMenuSource(src MenuSource) { s.menuSource = src }

// LoadOverlay parses the fragment at uri, localizes it with bundle,
// and mounts it. Re-loading a mounted uri replaces it in place.
func (s *Shell) LoadOverlay(uri string, bundle *overlay.Bundle) error {
	frag, err := overlay.LoadFragment(s.overlayRoot, uri)
	if err != nil {
		return err
	}
	m := mountedOverlay{
		uri:    uri,
		anchor: frag.Anchor,
		title:  frag.LocalizedTitle(bundle),
		lines:  frag.Localize(bundle),
	}
	for i, existing := range s.mounted {
		if existing.uri == uri {
			s.mounted[i] = m
			return nil
		}
	}
	s.mounted = append(s.mounted, m)
	return nil
}

// RemoveOverlay unmounts the fragment loaded from uri.
func (s *Shell) RemoveOverlay(uri string) error {
	for i, m := range s.mounted {
		if m.uri == uri {
			s.mounted = append(s.mounted[:i], s.mounted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("overlay %q not mounted", uri)
}

// AddEventHandler registers a perspective-contributed key handler.
func (s *Shell) AddEventHandler(h perspective.EventHandler) {
	s.keys.AddHandler(h)
}

// SelectView flips the deck to the named slot. An unknown slot is
// reported in the status bar; the switch itself already happened and
// must not crash the shell.
func (s *Shell) SelectView(slotID string) {
	if !s.deck.Select(slotID) {
		s.log.Warn("no view slot for perspective", "slot", slotID)
		s.SetStatus("no view registered for " + slotID)
	}
}

// RefreshMenus recomputes the menu line from the menu source.
func (s *Shell) RefreshMenus() {
	if s.menuSource == nil {
		return
	}
	s.menu = s.menuSource()
}

// Menu returns the last recomputed menu state.
func (s *Shell) Menu() MenuState { return s.menu }

// Mounted lists the uris of currently mounted overlays, in mount
// order.
func (s *Shell) Mounted() []string {
	out := make([]string, 0, len(s.mounted))
	for _, m := range s.mounted {
		out = append(out, m.uri)
	}
	return out
}

// SetStatus puts an informational message in the status bar.
func (s *Shell) SetStatus(msg string) {
	s.status = msg
	s.statusErr = false
}

// SetError puts an error in the status bar.
func (s *Shell) SetError(err error) {
	if err == nil {
		s.status = ""
		s.statusErr = false
		return
	}
	s.status = err.Error()
	s.statusErr = true
}

// Status returns the current status line.
func (s *Shell) Status() (string, bool) {
	return s.status, s.statusErr
}

func (s *Shell) mountedByAnchor(anchor string) []mountedOverlay {
	out := make([]mountedOverlay, 0, len(s.mounted))
	for _, m := range s.mounted {
		if m.anchor == anchor {
			out = append(out, m)
		}
	}
	return out
}
