package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Anchor positions a fragment within the shell body.
const (
	AnchorTop    = "top"
	AnchorBottom = "bottom"
)

// Fragment is a parsed overlay file: a titled banner merged into the
// shell while its owning perspective is active. Lines may reference
// bundle keys as "msg:KEY"; Localize substitutes them.
type Fragment struct {
	Title  string   `toml:"title"`
	Anchor string   `toml:"anchor"`
	Lines  []string `toml:"lines"`
}

const msgPrefix = "msg:"

// ParseFragment decodes a fragment from TOML.
func ParseFragment(data []byte) (*Fragment, error) {
	var f Fragment
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse overlay fragment: %w", err)
	}
	switch f.Anchor {
	case "", AnchorTop, AnchorBottom:
	default:
		return nil, fmt.Errorf("overlay fragment: unknown anchor %q", f.Anchor)
	}
	if f.Anchor == "" {
		f.Anchor = AnchorBottom
	}
	return &f, nil
}

// LoadFragment reads and parses the fragment at uri below root.
func LoadFragment(root, uri string) (*Fragment, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(uri)))
	if err != nil {
		return nil, fmt.Errorf("read overlay %s: %w", uri, err)
	}
	f, err := ParseFragment(data)
	if err != nil {
		return nil, fmt.Errorf("overlay %s: %w", uri, err)
	}
	return f, nil
}

// Localize resolves the fragment's lines against a bundle. Tokens of
// the form "msg:KEY" are replaced with the bundle string for KEY, or
// with KEY itself when the bundle has no entry.
func (f *Fragment) Localize(b *Bundle) []string {
	out := make([]string, 0, len(f.Lines))
	for _, line := range f.Lines {
		out = append(out, localizeLine(line, b))
	}
	return out
}

// LocalizedTitle resolves the title the same way Localize resolves
// lines.
func (f *Fragment) LocalizedTitle(b *Bundle) string {
	return localizeLine(f.Title, b)
}

func localizeLine(line string, b *Bundle) string {
	if b == nil {
		return strings.TrimPrefix(line, msgPrefix)
	}
	if !strings.HasPrefix(line, msgPrefix) {
		return line
	}
	return b.Get(strings.TrimPrefix(line, msgPrefix))
}
