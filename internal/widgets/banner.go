// Package widgets holds the rendering primitives the shell composes:
// bordered banners for mounted overlay fragments and ANSI-aware layout
// helpers.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Banner renders a mounted overlay fragment as a full-width bordered
// strip above or below the deck body.
type Banner struct {
	Title  string
	Lines  []string
	Accent bool
}

func (b Banner) Render(width int) string {
	if width < 4 {
		width = 4
	}
	border := lipgloss.Color("#585b70")
	if b.Accent {
		border = lipgloss.Color("#89b4fa")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(b.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")

	rows := make([]string, 0, len(b.Lines)+2)
	rows = append(rows, top)
	for _, line := range b.Lines {
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+contentStyle.Render(PadRight(line, contentWidth))+" "+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}
