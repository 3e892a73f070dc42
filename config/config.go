// Package config loads floatchat settings from a TOML file and FLOATCHAT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/floatchat"
	"github.com/fwojciec/floatchat/echo"
)

// Config holds the demo settings. Flags applied by the CLI override both
// the file and the environment. Empty widget settings take the demo page's
// defaults.
type Config struct {
	Title       string        `toml:"title" env:"FLOATCHAT_TITLE"`
	Placeholder string        `toml:"placeholder" env:"FLOATCHAT_PLACEHOLDER"`
	Icon        string        `toml:"icon" env:"FLOATCHAT_ICON"`
	ThemeColor  *int          `toml:"theme_color" env:"FLOATCHAT_THEME_COLOR"`
	Markdown    bool          `toml:"markdown" env:"FLOATCHAT_MARKDOWN"`
	Delay       time.Duration `toml:"delay" env:"FLOATCHAT_DELAY"`
	// Controlled makes the page own the widget's visibility.
	Controlled bool `toml:"controlled" env:"FLOATCHAT_CONTROLLED"`
	// FailEvery makes every Nth reply fail. Zero disables failures.
	FailEvery int    `toml:"fail_every" env:"FLOATCHAT_FAIL_EVERY"`
	LogFile   string `toml:"log_file" env:"FLOATCHAT_LOG_FILE"`
	LogLevel  string `toml:"log_level" env:"FLOATCHAT_LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Delay:    echo.DefaultDelay,
		LogLevel: "info",
	}
}

// DefaultPath returns the config file read when no path is given:
// config.toml under the user's floatchat config directory. It returns ""
// when the config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "floatchat", "config.toml")
}

// Load returns the defaults overlaid with the TOML file at path, then with
// the environment. An empty path skips the file; a path that does not exist
// is an error.
func Load(path string) (Config, error) {
	return load(path, false)
}

// LoadDefault is Load for DefaultPath, except that a missing file is not an
// error.
func LoadDefault() (Config, error) {
	return load(DefaultPath(), true)
}

func load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && !(optional && errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	// Zero delay replies immediately.
	if c.Delay < 0 {
		return fmt.Errorf("config: negative delay %s: %w", c.Delay, floatchat.ErrValidation)
	}
	if c.FailEvery < 0 {
		return fmt.Errorf("config: negative fail_every %d: %w", c.FailEvery, floatchat.ErrValidation)
	}
	if c.ThemeColor != nil && (*c.ThemeColor < 0 || *c.ThemeColor > 255) {
		return fmt.Errorf("config: theme_color %d out of range: %w", *c.ThemeColor, floatchat.ErrValidation)
	}
	return nil
}

// Options converts the settings into widget options.
func (c Config) Options() floatchat.Options {
	return floatchat.Options{
		Title:       c.Title,
		Placeholder: c.Placeholder,
		Icon:        c.Icon,
		ThemeColor:  c.ThemeColor,
		Markdown:    c.Markdown,
	}
}
