// Package settings shows the effective configuration.
package settings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halyard/quarterdeck/internal/config"
	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// Settings is a read-only view of the loaded configuration. Its
// overlay names a bundle that ships with no file, so activation
// exercises the default-bundle fallback.
type Settings struct {
	cfg    config.Config
	active bool
}

func New(cfg config.Config) *Settings {
	return &Settings{cfg: cfg}
}

func (s *Settings) ID() string { return "settings" }

func (s *Settings) Overlays() []overlay.Overlay {
	return []overlay.Overlay{
		{URI: "settings.overlay.toml", BundleURI: "settings-extra.strings.toml"},
	}
}

func (s *Settings) EventHandlers() []perspective.EventHandler { return nil }

func (s *Settings) SetActive(active bool) { s.active = active }

func (s *Settings) Init() tea.Cmd              { return nil }
func (s *Settings) Update(msg tea.Msg) tea.Cmd { return nil }

func (s *Settings) View(width, height int) string {
	rows := []struct{ k, v string }{
		{"journal.path", s.cfg.Journal.Path},
		{"ui.overlay_root", s.cfg.UI.OverlayRoot},
		{"ui.locales_dir", s.cfg.UI.LocalesDir},
		{"ui.locale", s.cfg.UI.Locale},
		{"startup.perspective", s.cfg.Startup.Perspective},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		v := r.v
		if v == "" {
			v = "(unset)"
		}
		lines = append(lines, keyStyle.Render(r.k)+"  "+valueStyle.Render(v))
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
