// Package welcome is the landing perspective shown before the user
// picks anything else.
package welcome

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// Welcome is the default perspective: static content, one overlay with
// an explicit strings bundle, no event handlers.
type Welcome struct {
	active bool
}

func New() *Welcome {
	return &Welcome{}
}

func (w *Welcome) ID() string { return "welcome" }

func (w *Welcome) Overlays() []overlay.Overlay {
	return []overlay.Overlay{
		{URI: "welcome.overlay.toml", BundleURI: "welcome.strings.toml"},
	}
}

func (w *Welcome) EventHandlers() []perspective.EventHandler { return nil }

func (w *Welcome) SetActive(active bool) { w.active = active }

func (w *Welcome) Init() tea.Cmd              { return nil }
func (w *Welcome) Update(msg tea.Msg) tea.Cmd { return nil }

func (w *Welcome) View(width, height int) string {
	lines := []string{
		titleStyle.Render("Quarterdeck"),
		"",
		bodyStyle.Render("A workbench with pluggable perspectives."),
		bodyStyle.Render("Press a number key to switch perspective, q to quit."),
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
