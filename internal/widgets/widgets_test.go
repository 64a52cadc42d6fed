package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBannerRenderShape(t *testing.T) {
	b := Banner{Title: "Welcome", Lines: []string{"hello", "world"}}
	out := b.Render(30)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected top+2 content+bottom lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d width %d, want 30", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Welcome") {
		t.Fatalf("title missing from top border: %q", lines[0])
	}
}

func TestBannerNarrowWidthClamped(t *testing.T) {
	b := Banner{Title: "A very long banner title", Lines: []string{"content"}}
	out := b.Render(1)
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) != 4 {
			t.Fatalf("narrow banner not clamped to minimum width: %q", line)
		}
	}
}

func TestFitHeight(t *testing.T) {
	if got := FitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("clip: %q", got)
	}
	if got := FitHeight("a", 3); got != "a\n\n" {
		t.Fatalf("pad: %q", got)
	}
	if got := FitHeight("a", 0); got != "" {
		t.Fatalf("zero height: %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("pad: %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcd" {
		t.Fatalf("truncate: %q", got)
	}
}
