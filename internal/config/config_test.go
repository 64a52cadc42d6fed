package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUARTERDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Journal.Path)
	require.Equal(t, "en", c.UI.Locale)
	require.Empty(t, c.Startup.Perspective)
	require.False(t, c.Startup.Lock)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[journal]
path = "/tmp/qd/journal.db"

[ui]
locale = "de"

[startup]
perspective = "activity"
lock = true
`), 0o644))
	t.Setenv("QUARTERDECK_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/qd/journal.db", c.Journal.Path)
	require.Equal(t, "de", c.UI.Locale)
	require.Equal(t, "activity", c.Startup.Perspective)
	require.True(t, c.Startup.Lock)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("QUARTERDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("QUARTERDECK_UI_LOCALE", "fr")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fr", c.UI.Locale)
}
