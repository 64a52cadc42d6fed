// Package activity browses the activation journal: every perspective
// switch recorded this session and before.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/journal"
	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
)

const recentLimit = 100

// Activity lists recent switches from the journal. It contributes one
// overlay (its bundle is derived from the fragment URI) and a refresh
// event handler.
type Activity struct {
	store  *journal.Store
	list   list.Model
	active bool
}

func New(store *journal.Store) *Activity {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Activation journal"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return &Activity{store: store, list: l}
}

func (a *Activity) ID() string { return "activity" }

func (a *Activity) Overlays() []overlay.Overlay {
	return []overlay.Overlay{
		{URI: "activity.overlay.toml"},
	}
}

func (a *Activity) EventHandlers() []perspective.EventHandler {
	return []perspective.EventHandler{&refreshHandler{activity: a}}
}

func (a *Activity) SetActive(active bool) { a.active = active }

type entriesMsg struct {
	entries []journal.Entry
	total   int
	err     error
}

type entryItem struct {
	entry journal.Entry
}

func (i entryItem) Title() string {
	if i.entry.PreviousID == "" {
		return i.entry.PerspectiveID
	}
	return i.entry.PreviousID + " -> " + i.entry.PerspectiveID
}

func (i entryItem) Description() string {
	desc := i.entry.ActivatedAt.Format(time.DateTime)
	if i.entry.OverlayFailures > 0 {
		desc += fmt.Sprintf(" (%d overlay failures)", i.entry.OverlayFailures)
	}
	return desc
}

func (i entryItem) FilterValue() string { return i.entry.PerspectiveID }

func (a *Activity) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *Activity) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case entriesMsg:
		if msg.err != nil {
			a.list.Title = "Activation journal (load failed)"
			return nil
		}
		items := make([]list.Item, 0, len(msg.entries))
		for _, e := range msg.entries {
			items = append(items, entryItem{entry: e})
		}
		a.list.Title = journalTitle(len(items), msg.total)
		return a.list.SetItems(items)
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return cmd
}

func (a *Activity) View(width, height int) string {
	a.list.SetSize(width, height)
	return a.list.View()
}

func (a *Activity) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		entries, err := a.store.Recent(ctx, recentLimit)
		if err != nil {
			return entriesMsg{err: err}
		}
		total, err := a.store.Count(ctx)
		return entriesMsg{entries: entries, total: total, err: err}
	}
}

// journalTitle shows how much of the journal the list holds; the
// window is capped at recentLimit.
func journalTitle(shown, total int) string {
	if total > shown {
		return fmt.Sprintf("Activation journal (%d of %d)", shown, total)
	}
	return fmt.Sprintf("Activation journal (%d)", shown)
}

// refreshHandler re-reads the journal on demand while the activity
// perspective is active.
type refreshHandler struct {
	activity *Activity
}

func (h *refreshHandler) Name() string   { return "refresh journal" }
func (h *refreshHandler) Scope() string  { return "perspective:activity" }
func (h *refreshHandler) Keys() []string { return []string{"r"} }
func (h *refreshHandler) Handle(tea.KeyMsg) tea.Cmd {
	return h.activity.loadCmd()
}
