package config

import (
	"errors"
	"fmt"
	"strings"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration structure for tintshade.
type Config struct {
	BaseColor   string         `yaml:"baseColor"`
	Tints       int            `yaml:"tints"`
	Shades      int            `yaml:"shades"`
	MaxVariants int            `yaml:"maxVariants"`
	Format      string         `yaml:"format"`
	LogLevel    string         `yaml:"logLevel,omitempty"`
	Presets     []Preset       `yaml:"presets"`
	Export      ExportConfig   `yaml:"export"`
	Policy      palette.Policy `yaml:"policy"`
}

// Preset is a named base color offered by the CLI and the editor.
type Preset struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// ExportConfig controls where and how palettes are written.
type ExportConfig struct {
	Directory string `yaml:"directory"`
	ToolName  string `yaml:"toolName"`
}

// ColorFormat returns the parsed display format, hex when unparseable.
func (c Config) ColorFormat() color.Format {
	f, err := color.ParseFormat(c.Format)
	if err != nil {
		return color.FormatHex
	}
	return f
}

// FindPreset looks a preset up by name, ignoring case.
func (c Config) FindPreset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if _, err := color.HexToRGB(c.BaseColor); err != nil {
		return fmt.Errorf("%w: baseColor: %v", ErrInvalidConfig, err)
	}
	if c.MaxVariants <= 0 {
		return fmt.Errorf("%w: maxVariants must be positive, got %d", ErrInvalidConfig, c.MaxVariants)
	}
	if err := CheckCount("tints", c.Tints, c.MaxVariants); err != nil {
		return err
	}
	if err := CheckCount("shades", c.Shades, c.MaxVariants); err != nil {
		return err
	}
	if _, err := color.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: preset with empty name", ErrInvalidConfig)
		}
		if _, err := color.HexToRGB(p.Color); err != nil {
			return fmt.Errorf("%w: preset %q: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// CheckCount validates a variant count against the configured maximum.
func CheckCount(name string, n, max int) error {
	if n < 0 || n > max {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrInvalidConfig, name, max, n)
	}
	return nil
}
