// Package config loads application configuration from file and
// environment. Env var overrides use prefix QUARTERDECK_.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Journal JournalConfig
	UI      UIConfig
	Startup StartupConfig
}

// JournalConfig holds sqlite settings for the activation journal.
type JournalConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	OverlayRoot string
	LocalesDir  string
	Locale      string
}

// StartupConfig selects the perspective shown at launch. When Lock is
// set the session is pinned to it and switching is suppressed.
type StartupConfig struct {
	Perspective string
	Lock        bool
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "quarterdeck", "journal.db"))
	v.SetDefault("ui.overlay_root", "assets/overlays")
	v.SetDefault("ui.locales_dir", "assets/locales")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("startup.perspective", "")
	v.SetDefault("startup.lock", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QUARTERDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "quarterdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUARTERDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	c.Journal.Path = v.GetString("journal.path")
	c.UI.OverlayRoot = v.GetString("ui.overlay_root")
	c.UI.LocalesDir = v.GetString("ui.locales_dir")
	c.UI.Locale = v.GetString("ui.locale")
	c.Startup.Perspective = v.GetString("startup.perspective")
	c.Startup.Lock = v.GetBool("startup.lock")

	if c.Journal.Path == "" {
		return Config{}, fmt.Errorf("journal.path must not be empty")
	}
	return c, nil
}
