// Package config loads the presentation settings that sit outside the
// game rules: which renderer to start, the locale, and whether colour
// output is wanted.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the game looks for settings when no path is given.
const DefaultPath = "wumpushunt.yaml"

type Config struct {
	Renderer string `yaml:"renderer"`
	Locale   string `yaml:"locale"`
	Color    bool   `yaml:"color"`
}

func Default() *Config {
	return &Config{
		Renderer: "tui",
		Locale:   "en_GB",
		Color:    true,
	}
}

// Load reads settings from path, layering them over the defaults. A
// missing file is not an error, the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Renderer {
	case "tui", "ebiten":
		return nil
	}
	return fmt.Errorf("unknown renderer %q", c.Renderer)
}
