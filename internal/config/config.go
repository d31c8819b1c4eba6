// Package config loads game configuration from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LocalPath is where Load looks when no explicit path is given.
const LocalPath = "configs/platformkit.yaml"

// Font kinds.
const (
	FontBasic     = "basic"
	FontGoRegular = "goregular"
)

// Config holds all game configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Controller ControllerConfig `yaml:"controller"`
	Font       FontConfig       `yaml:"font"`
	Assets     AssetsConfig     `yaml:"assets"`
}

type DisplayConfig struct {
	Width       int     `yaml:"width"` // logical width in camera units
	Height      int     `yaml:"height"`
	WindowTitle string  `yaml:"window_title"`
	Resizable   bool    `yaml:"resizable"`
	Scale       float64 `yaml:"scale"` // window pixels per logical unit
}

type ControllerConfig struct {
	ButtonWidth  float64     `yaml:"button_width"`
	GroundOffset float64     `yaml:"ground_offset"`
	HideHints    bool        `yaml:"hide_hints"`
	Icons        IconsConfig `yaml:"icons"`
}

type IconsConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
}

type FontConfig struct {
	Kind string  `yaml:"kind"` // "basic" or "goregular"
	Size float64 `yaml:"size"` // ignored for the basic font
}

type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration.
// Search order: path -> ./configs/platformkit.yaml -> embedded default
func Load(path string) (*Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(LocalPath)
	if err == nil {
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LocalPath, err)
		}
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", LocalPath, err)
	}

	return Default(), nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the values the host depends on.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display scale must be positive, got %v", c.Display.Scale)
	}
	switch c.Font.Kind {
	case FontBasic:
	case FontGoRegular:
		if c.Font.Size <= 0 {
			return fmt.Errorf("font size must be positive, got %v", c.Font.Size)
		}
	default:
		return fmt.Errorf("unknown font kind %q", c.Font.Kind)
	}
	return nil
}

// WindowSize is the initial window size in pixels.
func (c *Config) WindowSize() (width, height int) {
	return int(float64(c.Display.Width) * c.Display.Scale), int(float64(c.Display.Height) * c.Display.Scale)
}
