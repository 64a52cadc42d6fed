package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	status := m.renderStatusBar()
	footer := m.renderFooter()

	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}

	top := m.renderBanners(overlay.AnchorTop)
	bottom := m.renderBanners(overlay.AnchorBottom)
	bodyHeight := available
	if top != "" {
		bodyHeight -= lipgloss.Height(top)
	}
	if bottom != "" {
		bodyHeight -= lipgloss.Height(bottom)
	}
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if view := m.shell.deck.SelectedView(); view != nil && bodyHeight > 0 {
		body = view.View(max(1, m.width-2), bodyHeight)
	}
	body = widgets.FitHeight(body, bodyHeight)

	sections := make([]string, 0, 6)
	sections = append(sections, header, status)
	if top != "" {
		sections = append(sections, top)
	}
	if bodyHeight > 0 {
		sections = append(sections, body)
	}
	if bottom != "" {
		sections = append(sections, bottom)
	}
	sections = append(sections, footer)
	view := widgets.FitHeight(strings.Join(sections, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderHeader() string {
	menu := m.shell.Menu()
	items := make([]string, 0, len(menu.Items)+1)
	for _, item := range menu.Items {
		label := fmt.Sprintf("%d:%s", item.Index, item.Title)
		if item.Active {
			items = append(items, activeItemStyle.Render(label))
		} else {
			items = append(items, inactiveItemStyle.Render(label))
		}
	}
	right := strings.Join(items, "")
	if menu.Locked {
		right += lockBadgeStyle.Render("locked")
	}
	right = ansi.Truncate(right, max(1, m.width), "")

	left := headerAppStyle.Render("Quarterdeck")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (m Model) renderStatusBar() string {
	msg, isErr := m.shell.Status()
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func (m Model) renderFooter() string {
	scope := m.activeScope()
	parts := make([]string, 0, 8)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	for _, b := range m.shell.keys.BindingsForScope(scope) {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(b.Keys[0])+space+footerDescStyle.Render(b.Description))
	}
	for _, h := range m.shell.keys.HandlersForScope(scope) {
		if len(h.Keys()) == 0 {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Keys()[0])+space+footerDescStyle.Render(h.Name()))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, colorMantle)
}

func (m Model) renderBanners(anchor string) string {
	mounted := m.shell.mountedByAnchor(anchor)
	if len(mounted) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(mounted))
	for _, mo := range mounted {
		rendered = append(rendered, widgets.Banner{
			Title:  mo.title,
			Lines:  mo.lines,
			Accent: anchor == overlay.AnchorTop,
		}.Render(max(4, m.width)))
	}
	return strings.Join(rendered, "\n")
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
