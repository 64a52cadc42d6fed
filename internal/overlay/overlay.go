// Package overlay defines the UI fragments a perspective merges into
// the host shell while it is active, and the localized string bundles
// those fragments draw their text from.
//
// Fragments live in `*.overlay.toml` files, bundles in
// `*.strings.toml` files. A fragment URI is always relative to the
// shell's overlay root; a bundle URI is relative to the active locale
// directory.
package overlay

import "strings"

const (
	// FragmentExt is the file suffix of overlay fragment files.
	FragmentExt = ".overlay.toml"
	// BundleExt is the file suffix of strings-bundle files.
	BundleExt = ".strings.toml"
)

// Overlay references a single UI fragment and, optionally, the strings
// bundle that localizes it. BundleURI may be empty, in which case the
// bundle is derived from URI or falls back to a per-perspective
// default.
type Overlay struct {
	URI       string
	BundleURI string
}

// DerivedBundleURI returns the bundle URI implied by a fragment URI:
// the sibling file with the fragment suffix swapped for the bundle
// suffix.
func DerivedBundleURI(uri string) string {
	if strings.HasSuffix(uri, FragmentExt) {
		return strings.TrimSuffix(uri, FragmentExt) + BundleExt
	}
	if idx := strings.LastIndex(uri, "."); idx > 0 {
		return uri[:idx] + BundleExt
	}
	return uri + BundleExt
}
