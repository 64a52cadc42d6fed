package shell

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/perspective"
)

// KeyBinding is a static shell-level binding shown in the footer and
// matched during routing.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions within a scope. Static
// bindings come from the shell itself; perspective-contributed
// handlers are registered through AddEventHandler and kept separately.
type KeyRegistry struct {
	bindings []KeyBinding
	handlers []perspective.EventHandler
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// AddHandler registers a perspective event handler. A handler with the
// same name replaces the previous one, so repeated activations of the
// same perspective do not pile up duplicates.
func (r *KeyRegistry) AddHandler(h perspective.EventHandler) {
	for i, existing := range r.handlers {
		if existing.Name() == h.Name() {
			r.handlers[i] = h
			return
		}
	}
	r.handlers = append(r.handlers, h)
}

// HandlerFor returns the first registered handler answering to msg in
// scope, or nil.
func (r *KeyRegistry) HandlerFor(msg tea.KeyMsg, scope string) perspective.EventHandler {
	pressed := normalizeKey(msg.String())
	for _, h := range r.handlers {
		if !scopeMatch(scope, []string{h.Scope()}) {
			continue
		}
		for _, k := range h.Keys() {
			if normalizeKey(k) == pressed {
				return h
			}
		}
	}
	return nil
}

// IsAction reports whether msg triggers the named static action in
// scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// BindingsForScope lists the static bindings visible in scope, used by
// the footer.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// HandlersForScope lists the perspective handlers visible in scope.
func (r *KeyRegistry) HandlersForScope(scope string) []perspective.EventHandler {
	out := make([]perspective.EventHandler, 0, len(r.handlers))
	for _, h := range r.handlers {
		if scopeMatch(scope, []string{h.Scope()}) {
			out = append(out, h)
		}
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings returns the shell's built-in bindings. Perspective
// switching by number is generated at runtime from the ordered
// catalog.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
	}
}
