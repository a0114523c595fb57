package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the editor configuration, loadable from a TOML file.
type Config struct {
	Theme ThemeConfig `toml:"theme"`
	UI    UIConfig    `toml:"ui"`
}

// ThemeConfig controls field appearance defaults.
type ThemeConfig struct {
	// DefaultColor fills swatch fields whose definition carries no color.
	DefaultColor string `toml:"default_color"`
	// CheckCharacter is the default glyph of the plain checkbox.
	CheckCharacter string `toml:"check_character"`
	// DefaultSize is the default swatch footprint per axis.
	DefaultSize int `toml:"default_size"`
}

// UIConfig controls the workspace preview.
type UIConfig struct {
	Colors map[string]Color `toml:"colors"`
}

type Color struct {
	Fg string `toml:"fg"`
	Bg string `toml:"bg"`
}

// UnmarshalTOML accepts either a bare color string or a { fg, bg } table.
func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		c.Fg = v
		return nil
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		return nil
	}
	return fmt.Errorf("color: expected string or table, got %T", value)
}

func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			DefaultColor:   "#ff4040",
			CheckCharacter: "✓",
			DefaultSize:    30,
		},
		UI: UIConfig{
			Colors: map[string]Color{
				"text":     {Fg: "white"},
				"selected": {Fg: "black", Bg: "cyan"},
				"dimmed":   {Fg: "8"},
			},
		},
	}
}

// Load merges TOML content over the current configuration.
func (c *Config) Load(content string) error {
	if _, err := toml.Decode(content, c); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// LoadFile reads path if it exists; a missing file leaves defaults intact.
func (c *Config) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return c.Load(string(content))
}
