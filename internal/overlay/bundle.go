package overlay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrBundleNotFound reports a bundle URI that did not resolve. A miss
// is never fatal to an activation; callers fall back to the next step
// of the resolution chain.
var ErrBundleNotFound = errors.New("overlay: bundle not found")

// Bundle is a flat key -> string table backing one overlay fragment.
type Bundle struct {
	name    string
	entries map[string]string
}

// NewBundle builds a bundle from an in-memory table. Used by tests and
// by DefaultBundle.
func NewBundle(name string, entries map[string]string) *Bundle {
	if entries == nil {
		entries = map[string]string{}
	}
	return &Bundle{name: name, entries: entries}
}

// DefaultBundle returns the empty fallback bundle scoped to a
// perspective variant. Lookups miss, so fragments render their raw
// keys rather than failing.
func DefaultBundle(scope string) *Bundle {
	return &Bundle{name: scope, entries: map[string]string{}}
}

// Name identifies where the bundle came from: a URI, or the
// perspective scope for a default bundle.
func (b *Bundle) Name() string { return b.name }

// Lookup returns the string for key and whether it was present.
func (b *Bundle) Lookup(key string) (string, bool) {
	v, ok := b.entries[key]
	return v, ok
}

// Get returns the string for key, or the key itself on a miss.
func (b *Bundle) Get(key string) string {
	if v, ok := b.entries[key]; ok {
		return v
	}
	return key
}

// Len returns the number of entries.
func (b *Bundle) Len() int { return len(b.entries) }

// Loader resolves bundle URIs against a locale directory, for example
// <root>/en/welcome.strings.toml.
type Loader struct {
	root   string
	locale string
}

// NewLoader returns a loader rooted at the locales directory for the
// given locale.
func NewLoader(root, locale string) *Loader {
	return &Loader{root: root, locale: locale}
}

// Resolve reads and parses the bundle at uri. A missing file reports
// ErrBundleNotFound; a present but malformed file is an ordinary
// error.
func (l *Loader) Resolve(uri string) (*Bundle, error) {
	path := filepath.Join(l.root, l.locale, filepath.FromSlash(uri))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, uri)
		}
		return nil, fmt.Errorf("read bundle %s: %w", uri, err)
	}
	entries := map[string]string{}
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse bundle %s: %w", uri, err)
	}
	return &Bundle{name: uri, entries: entries}, nil
}
