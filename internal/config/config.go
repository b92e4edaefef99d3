// Package config holds the presentation and server settings, optionally
// loaded from a TOML file and overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full option surface of the program. Zero values never reach
// the renderer: Default() seeds every field, file values override defaults,
// and flags override both.
type Config struct {
	Bind       string `toml:"bind"`
	Port       int    `toml:"port"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Delimiter  string `toml:"delimiter"`
	FontSize   int    `toml:"font_size"`
	Background string `toml:"background"`
	PageTitle  string `toml:"page_title"`
	Kind       string `toml:"kind"`
	Toolbar    bool   `toml:"toolbar"`
	AssetsDir  string `toml:"assets_dir"`
	Debug      bool   `toml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Bind:      "0.0.0.0",
		Port:      8050,
		Width:     900,
		Height:    500,
		Delimiter: ",",
		FontSize:  12,
		Kind:      "line",
		Toolbar:   true,
	}
}

// Load parses the TOML config at path on top of the defaults. An empty path
// just returns the defaults; a named file that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// DelimiterRune validates the configured delimiter and returns it as a rune.
func (c Config) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, errors.New("delimiter must be a single character")
	}

	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r, nil
}
