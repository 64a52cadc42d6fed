package perspective

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/halyard/quarterdeck/internal/overlay"
)

// Controller holds the perspective catalog and mediates every switch.
//
// One controller is constructed by the application root and injected
// wherever registration or activation happens; there is no implicit
// global instance. It is not safe for concurrent use: registration and
// activation are expected on the single UI goroutine (the bubbletea
// update loop), and callers needing anything else must synchronize
// externally.
type Controller struct {
	catalog map[reflect.Type]Perspective
	ordered []Perspective
	active  Perspective
	locked  bool
	shell   Shell
	bundles BundleLoader
	log     *slog.Logger
}

// NewController returns an empty controller. bundles may be nil, in
// which case every overlay gets its perspective's default bundle.
func NewController(bundles BundleLoader, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		catalog: map[reflect.Type]Perspective{},
		bundles: bundles,
		log:     log,
	}
}

// SetShell attaches the host shell the controller drives. Activation
// before SetShell fails with ErrNoShell.
func (c *Controller) SetShell(s Shell) {
	c.shell = s
}

// Register adds a perspective to the catalog, keyed by its variant
// type, and to the ordered view, keyed by id. Re-registering the same
// variant type replaces the previous instance. A different variant
// claiming an already-registered id is rejected with ErrDuplicateID so
// the catalog and the ordered view can never disagree.
//
// The first perspective registered becomes active immediately, as a
// bare pointer assignment: no overlays are applied and the perspective
// is not notified. The shell sees nothing until an explicit Activate.
func (c *Controller) Register(p Perspective) error {
	key := reflect.TypeOf(p)
	prev, replacing := c.catalog[key]

	// The collision check runs before any mutation so a rejected
	// registration leaves both views untouched. The same-type prev is
	// exempt: replacing it under its own id is not a collision.
	for _, existing := range c.ordered {
		if existing.ID() == p.ID() && existing != prev {
			return fmt.Errorf("%w: %q already registered by %T", ErrDuplicateID, p.ID(), existing)
		}
	}
	if replacing {
		c.removeOrdered(prev)
	}
	c.catalog[key] = p
	idx := sort.Search(len(c.ordered), func(i int) bool {
		return c.ordered[i].ID() >= p.ID()
	})
	c.ordered = append(c.ordered, nil)
	copy(c.ordered[idx+1:], c.ordered[idx:])
	c.ordered[idx] = p

	if c.active == nil {
		c.active = p
	}
	c.log.Debug("registered perspective", "id", p.ID(), "type", key.String())
	return nil
}

// List returns a snapshot of all registered perspectives sorted by id
// ascending. Mutating the returned slice does not affect the catalog.
func (c *Controller) List() []Perspective {
	out := make([]Perspective, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Active returns the current active perspective, or nil before the
// first registration.
func (c *Controller) Active() Perspective {
	return c.active
}

// Locked reports whether switching is suppressed.
func (c *Controller) Locked() bool { return c.locked }

// SetLocked suppresses (or re-allows) all future switches. It does not
// deactivate anything. Typically set once at startup when a launch
// parameter pins the session to a single perspective.
func (c *Controller) SetLocked(locked bool) { c.locked = locked }

// Activate switches to the registered instance of target's variant
// type, mirroring lookup-by-type registration. See ActivateID for the
// full sequence contract.
func (c *Controller) Activate(target Perspective) ([]OverlayError, error) {
	if c.locked {
		return nil, nil
	}
	p, ok := c.catalog[reflect.TypeOf(target)]
	if !ok {
		return nil, &NotFoundError{ID: target.ID(), Suggestion: c.closestID(target.ID())}
	}
	return c.switchTo(p)
}

// ActivateID switches to the perspective registered under id.
//
// When the controller is locked the call is a no-op. An unknown id
// fails with NotFoundError and changes nothing. Otherwise the current
// perspective is notified inactive and its overlays removed
// (best-effort), the active pointer moves to the target, the target's
// overlays are applied with their resolved bundles and its handlers
// registered, the target is notified active, and the shell selects the
// target's view slot. Menu state is refreshed after the deactivation
// and again after the activation.
//
// Overlay remove/apply failures never abort the switch; they are
// returned in occurrence order so callers can observe partial failure.
func (c *Controller) ActivateID(id string) ([]OverlayError, error) {
	if c.locked {
		return nil, nil
	}
	for _, p := range c.ordered {
		if p.ID() == id {
			return c.switchTo(p)
		}
	}
	return nil, &NotFoundError{ID: id, Suggestion: c.closestID(id)}
}

func (c *Controller) switchTo(p Perspective) ([]OverlayError, error) {
	if c.shell == nil {
		return nil, ErrNoShell
	}

	var errs []OverlayError
	if c.active != nil {
		errs = append(errs, c.unload(c.active)...)
	}
	c.active = p

	for _, ov := range p.Overlays() {
		bundle := c.resolveBundle(p, ov)
		if err := c.shell.LoadOverlay(ov.URI, bundle); err != nil {
			oe := OverlayError{Phase: "load", URI: ov.URI, Err: err}
			c.log.Warn("overlay apply failed", "uri", ov.URI, "err", err)
			errs = append(errs, oe)
		}
	}
	for _, h := range p.EventHandlers() {
		c.shell.AddEventHandler(h)
	}
	p.SetActive(true)
	c.shell.SelectView(ViewSlotID(p.ID()))
	c.shell.RefreshMenus()

	c.log.Debug("activated perspective", "id", p.ID(), "overlayErrors", len(errs))
	return errs, nil
}

// unload notifies the outgoing perspective and strips its overlays.
// Removal failures are collected, not fatal: a broken overlay must not
// strand the UI mid-switch.
func (c *Controller) unload(p Perspective) []OverlayError {
	p.SetActive(false)
	var errs []OverlayError
	for _, ov := range p.Overlays() {
		if err := c.shell.RemoveOverlay(ov.URI); err != nil {
			c.log.Warn("overlay removal failed", "uri", ov.URI, "err", err)
			errs = append(errs, OverlayError{Phase: "remove", URI: ov.URI, Err: err})
		}
	}
	c.shell.RefreshMenus()
	return errs
}

// resolveBundle picks the strings bundle for one overlay: the explicit
// bundle URI when set and resolvable, else the bundle derived from the
// fragment URI, else the default bundle scoped to the perspective's
// variant type. Resolution misses are swallowed.
func (c *Controller) resolveBundle(p Perspective, ov overlay.Overlay) *overlay.Bundle {
	if c.bundles != nil {
		uri := ov.BundleURI
		if uri == "" {
			uri = overlay.DerivedBundleURI(ov.URI)
		}
		b, err := c.bundles.Resolve(uri)
		if err == nil {
			return b
		}
		c.log.Debug("bundle miss", "uri", uri, "err", err)
	}
	return overlay.DefaultBundle(reflect.TypeOf(p).String())
}

// closestID returns the registered id nearest the requested one, used
// to make NotFoundError actionable. Distant matches are suppressed.
func (c *Controller) closestID(id string) string {
	best := ""
	bestDist := len(id)/2 + 1
	for _, p := range c.ordered {
		d := levenshtein.ComputeDistance(id, p.ID())
		if d < bestDist {
			best = p.ID()
			bestDist = d
		}
	}
	return best
}

func (c *Controller) removeOrdered(p Perspective) {
	for i, existing := range c.ordered {
		if existing == p {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}
