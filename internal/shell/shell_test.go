package shell

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/overlay"
)

func writeFragment(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAndRemoveOverlay(t *testing.T) {
	root := t.TempDir()
	writeFragment(t, root, "hint.overlay.toml", "title = \"msg:TITLE\"\nanchor = \"bottom\"\nlines = [\"msg:BODY\"]\n")

	sh := New(root, nil, nil)
	bundle := overlay.NewBundle("test", map[string]string{"TITLE": "Hints", "BODY": "press 2"})

	if err := sh.LoadOverlay("hint.overlay.toml", bundle); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := sh.Mounted(); len(got) != 1 || got[0] != "hint.overlay.toml" {
		t.Fatalf("mounted: %v", got)
	}
	mounted := sh.mountedByAnchor(overlay.AnchorBottom)
	if len(mounted) != 1 || mounted[0].title != "Hints" || mounted[0].lines[0] != "press 2" {
		t.Fatalf("localized mount wrong: %+v", mounted)
	}

	// Reloading the same uri replaces in place instead of stacking.
	if err := sh.LoadOverlay("hint.overlay.toml", nil); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := sh.Mounted(); len(got) != 1 {
		t.Fatalf("reload stacked a duplicate: %v", got)
	}

	if err := sh.RemoveOverlay("hint.overlay.toml"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := sh.RemoveOverlay("hint.overlay.toml"); err == nil {
		t.Fatal("second remove should fail")
	}
}

func TestLoadOverlayUnknownURI(t *testing.T) {
	sh := New(t.TempDir(), nil, nil)
	if err := sh.LoadOverlay("absent.overlay.toml", nil); err == nil {
		t.Fatal("expected error for missing fragment")
	}
	if len(sh.Mounted()) != 0 {
		t.Fatal("failed load must not mount")
	}
}

func TestDeckSelect(t *testing.T) {
	d := NewDeck()
	d.AddSlot("perspective-alpha", nil)
	d.AddSlot("perspective-beta", nil)

	if got := d.SelectedID(); got != "perspective-alpha" {
		t.Fatalf("first slot should be selected by default: %s", got)
	}
	if !d.Select("perspective-beta") {
		t.Fatal("select known slot")
	}
	if got := d.SelectedID(); got != "perspective-beta" {
		t.Fatalf("selection did not move: %s", got)
	}
	if d.Select("perspective-missing") {
		t.Fatal("unknown slot must not select")
	}
	if got := d.SelectedID(); got != "perspective-beta" {
		t.Fatalf("failed select changed state: %s", got)
	}
}

func TestSelectViewUnknownSlotReportsStatus(t *testing.T) {
	sh := New(t.TempDir(), nil, nil)
	sh.SelectView("perspective-ghost")
	msg, isErr := sh.Status()
	if isErr || msg == "" {
		t.Fatalf("expected informational status, got %q (err=%v)", msg, isErr)
	}
}

func TestRefreshMenusUsesSource(t *testing.T) {
	sh := New(t.TempDir(), nil, nil)
	sh.RefreshMenus() // no source wired yet

	calls := 0
	sh.SetMenuSource(func() MenuState {
		calls++
		return MenuState{
			Items:  []MenuItem{{Index: 1, ID: "alpha", Title: "alpha", Active: true}},
			Locked: true,
		}
	})
	sh.RefreshMenus()
	sh.RefreshMenus()
	if calls != 2 {
		t.Fatalf("menu source calls: %d", calls)
	}
	menu := sh.Menu()
	if !menu.Locked || len(menu.Items) != 1 || !menu.Items[0].Active {
		t.Fatalf("menu state: %+v", menu)
	}
}

type recordingHandler struct {
	name  string
	scope string
	keys  []string
	hits  int
}

func (h *recordingHandler) Name() string   { return h.name }
func (h *recordingHandler) Scope() string  { return h.scope }
func (h *recordingHandler) Keys() []string { return h.keys }
func (h *recordingHandler) Handle(tea.KeyMsg) tea.Cmd {
	h.hits++
	return nil
}

func TestKeyRegistryHandlerScopes(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	h := &recordingHandler{name: "refresh", scope: "perspective:activity", keys: []string{"r"}}
	r.AddHandler(h)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	if got := r.HandlerFor(msg, "perspective:activity"); got != h {
		t.Fatal("handler should match in its own scope")
	}
	if got := r.HandlerFor(msg, "perspective:welcome"); got != nil {
		t.Fatal("handler must not match outside its scope")
	}

	replacement := &recordingHandler{name: "refresh", scope: "perspective:activity", keys: []string{"f5"}}
	r.AddHandler(replacement)
	if got := r.HandlerFor(tea.KeyMsg{Type: tea.KeyF5}, "perspective:activity"); got != replacement {
		t.Fatal("same-name handler should replace")
	}
	if got := r.HandlerFor(msg, "perspective:activity"); got != nil {
		t.Fatal("replaced handler's old key should no longer match")
	}
}

func TestKeyRegistryIsAction(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if !r.IsAction(q, "quit", "perspective:welcome") {
		t.Fatal("quit should match everywhere")
	}
	x := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if r.IsAction(x, "quit", "perspective:welcome") {
		t.Fatal("x is not a quit key")
	}
}
