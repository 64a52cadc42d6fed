package shell

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/perspective"
)

// Model is the bubbletea program wrapping the shell. It owns routing
// only: key presses either hit shell actions, perspective-contributed
// handlers, or fall through to the visible deck view.
type Model struct {
	shell    *Shell
	ctrl     *perspective.Controller
	width    int
	height   int
	quitting bool

	// OnSwitch is notified after every completed perspective switch.
	// The application root uses it to journal activations.
	OnSwitch func(prev, next string, overlayFailures int)
}

func NewModel(sh *Shell, ctrl *perspective.Controller) Model {
	return Model{
		shell:  sh,
		ctrl:   ctrl,
		width:  100,
		height: 32,
	}
}

func (m Model) Init() tea.Cmd {
	return m.shell.deck.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		scope := m.activeScope()
		if msg.String() == "ctrl+c" || m.shell.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		// Perspective handlers win over the number-key switch, so a
		// perspective may claim a digit while it is active.
		if h := m.shell.keys.HandlerFor(msg, scope); h != nil {
			return m, h.Handle(msg)
		}
		if idx, ok := perspectiveIndex(msg.String()); ok {
			list := m.ctrl.List()
			if idx <= len(list) {
				m.activate(list[idx-1].ID())
				return m, nil
			}
		}
	}
	if view := m.shell.deck.SelectedView(); view != nil {
		return m, view.Update(msg)
	}
	return m, nil
}

// activeScope names the key-routing scope of the active perspective.
func (m Model) activeScope() string {
	if p := m.ctrl.Active(); p != nil {
		return "perspective:" + p.ID()
	}
	return "shell"
}

func (m *Model) activate(id string) {
	if m.ctrl.Locked() {
		m.shell.SetStatus("perspective switching is locked")
		return
	}
	prev := ""
	if p := m.ctrl.Active(); p != nil {
		prev = p.ID()
	}
	errs, err := m.ctrl.ActivateID(id)
	if err != nil {
		m.shell.SetError(err)
		return
	}
	if len(errs) > 0 {
		m.shell.SetStatus(fmt.Sprintf("switched to %s (%d overlay failures)", id, len(errs)))
	} else {
		m.shell.SetStatus("switched to " + id)
	}
	if m.OnSwitch != nil {
		m.OnSwitch(prev, id, len(errs))
	}
}

// perspectiveIndex maps number keys 1..9 to ordered-view positions.
func perspectiveIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n, true
}
