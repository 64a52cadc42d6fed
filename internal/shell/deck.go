package shell

import tea "github.com/charmbracelet/bubbletea"

// View is the rendering surface a perspective contributes to its deck
// slot. How a perspective draws itself is its own business; the deck
// only flips which slot is visible.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

type deckSlot struct {
	id   string
	view View
}

// Deck is the container of per-perspective view slots. Exactly one
// slot is visible at a time; slot ids follow the
// "perspective-<id>" convention.
type Deck struct {
	slots    []deckSlot
	selected int
}

func NewDeck() *Deck {
	return &Deck{selected: -1}
}

// AddSlot registers a view under a slot id. Re-adding an id replaces
// its view and keeps the slot's position.
func (d *Deck) AddSlot(id string, view View) {
	for i, s := range d.slots {
		if s.id == id {
			d.slots[i].view = view
			return
		}
	}
	d.slots = append(d.slots, deckSlot{id: id, view: view})
	if d.selected < 0 {
		d.selected = 0
	}
}

// Select makes the named slot visible. Returns false for unknown ids,
// leaving the selection unchanged.
func (d *Deck) Select(id string) bool {
	for i, s := range d.slots {
		if s.id == id {
			d.selected = i
			return true
		}
	}
	return false
}

// SelectedID returns the visible slot id, or "" when the deck is
// empty.
func (d *Deck) SelectedID() string {
	if d.selected < 0 || d.selected >= len(d.slots) {
		return ""
	}
	return d.slots[d.selected].id
}

// SelectedView returns the visible slot's view, or nil.
func (d *Deck) SelectedView() View {
	if d.selected < 0 || d.selected >= len(d.slots) {
		return nil
	}
	return d.slots[d.selected].view
}

// Init initializes every slot view.
func (d *Deck) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(d.slots))
	for _, s := range d.slots {
		if s.view == nil {
			continue
		}
		if cmd := s.view.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Len returns the number of slots.
func (d *Deck) Len() int { return len(d.slots) }
