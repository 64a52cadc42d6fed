package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
)

type testPerspective struct {
	id     string
	active bool
}

func (p *testPerspective) ID() string                                { return p.id }
func (p *testPerspective) Overlays() []overlay.Overlay               { return nil }
func (p *testPerspective) EventHandlers() []perspective.EventHandler { return nil }
func (p *testPerspective) SetActive(active bool)                     { p.active = active }
func (p *testPerspective) Init() tea.Cmd                             { return nil }
func (p *testPerspective) Update(msg tea.Msg) tea.Cmd                { return nil }
func (p *testPerspective) View(width, height int) string             { return p.id }

type secondPerspective struct{ testPerspective }

func newTestModel(t *testing.T) (Model, *perspective.Controller, *Shell) {
	t.Helper()
	sh := New(t.TempDir(), nil, nil)
	ctrl := perspective.NewController(nil, nil)
	ctrl.SetShell(sh)

	first := &testPerspective{id: "alpha"}
	second := &secondPerspective{testPerspective{id: "beta"}}
	if err := ctrl.Register(first); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Register(second); err != nil {
		t.Fatal(err)
	}
	sh.Deck().AddSlot(perspective.ViewSlotID("alpha"), first)
	sh.Deck().AddSlot(perspective.ViewSlotID("beta"), second)

	return NewModel(sh, ctrl), ctrl, sh
}

func TestNumberKeySwitchesPerspective(t *testing.T) {
	m, ctrl, sh := newTestModel(t)

	var recorded []string
	m.OnSwitch = func(prev, next string, overlayFailures int) {
		recorded = append(recorded, prev+">"+next)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)

	if got := ctrl.Active().ID(); got != "beta" {
		t.Fatalf("active after key 2: %s", got)
	}
	if got := sh.Deck().SelectedID(); got != "perspective-beta" {
		t.Fatalf("deck slot: %s", got)
	}
	if len(recorded) != 1 || recorded[0] != "alpha>beta" {
		t.Fatalf("switch hook: %v", recorded)
	}
}

func TestHandlerClaimsDigitKey(t *testing.T) {
	m, ctrl, sh := newTestModel(t)
	h := &recordingHandler{name: "jump", scope: "perspective:alpha", keys: []string{"2"}}
	sh.AddEventHandler(h)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)

	if h.hits != 1 {
		t.Fatalf("handler hits: %d", h.hits)
	}
	if got := ctrl.Active().ID(); got != "alpha" {
		t.Fatalf("claimed digit must not switch perspectives: %s", got)
	}
}

func TestNumberKeyOutOfRangeIgnored(t *testing.T) {
	m, ctrl, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	m = next.(Model)

	if got := ctrl.Active().ID(); got != "alpha" {
		t.Fatalf("active changed on out-of-range key: %s", got)
	}
}

func TestLockedSwitchReportsStatus(t *testing.T) {
	m, ctrl, sh := newTestModel(t)
	ctrl.SetLocked(true)

	hookCalled := false
	m.OnSwitch = func(prev, next string, overlayFailures int) { hookCalled = true }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)

	if got := ctrl.Active().ID(); got != "alpha" {
		t.Fatalf("locked controller switched: %s", got)
	}
	if hookCalled {
		t.Fatal("switch hook must not fire while locked")
	}
	msg, isErr := sh.Status()
	if isErr || msg == "" {
		t.Fatalf("expected informational lock status, got %q", msg)
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should yield a command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("quit command should produce a message")
	}
}
