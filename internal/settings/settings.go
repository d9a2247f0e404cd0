// Package settings persists theme and appearance choices as local
// key-value pairs, loaded at startup with hardcoded defaults when no
// file exists yet.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Appearance holds the user's display preferences.
type Appearance struct {
	Theme       string `mapstructure:"theme"` // "dark" or "light"
	AccentColor string `mapstructure:"accent_color"`
	CompactMode bool   `mapstructure:"compact_mode"`
}

// Defaults returns the hardcoded appearance used when nothing has been
// saved yet.
func Defaults() Appearance {
	return Appearance{
		Theme:       "dark",
		AccentColor: "teal",
		CompactMode: false,
	}
}

// Repository reads and writes appearance settings under the config
// directory. It is an explicit dependency, not ambient global state.
type Repository struct {
	v    *viper.Viper
	path string
}

// NewRepository creates a settings repository rooted at configDir.
func NewRepository(configDir string) *Repository {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("accent_color", defaults.AccentColor)
	v.SetDefault("compact_mode", defaults.CompactMode)

	return &Repository{
		v:    v,
		path: filepath.Join(configDir, "settings.toml"),
	}
}

// Load returns the persisted appearance, falling back to defaults for
// anything absent. A missing settings file is not an error.
func (r *Repository) Load() (Appearance, error) {
	if _, err := os.Stat(r.path); err == nil {
		r.v.SetConfigFile(r.path)
		if err := r.v.ReadInConfig(); err != nil {
			return Defaults(), fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var a Appearance
	if err := r.v.Unmarshal(&a); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return a, nil
}

// Save persists the appearance to disk, creating the config directory
// if needed.
func (r *Repository) Save(a Appearance) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	r.v.Set("theme", a.Theme)
	r.v.Set("accent_color", a.AccentColor)
	r.v.Set("compact_mode", a.CompactMode)

	if err := r.v.WriteConfigAs(r.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Set stores a single key and persists immediately.
func (r *Repository) Set(key string, value interface{}) error {
	a, err := r.Load()
	if err != nil {
		return err
	}
	switch key {
	case "theme":
		a.Theme = fmt.Sprintf("%v", value)
	case "accent_color":
		a.AccentColor = fmt.Sprintf("%v", value)
	case "compact_mode":
		a.CompactMode = value == true || value == "true"
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return r.Save(a)
}
