package config

import "tintshade/internal/palette"

const (
	DefaultBaseColor   = "#3b82f6"
	DefaultVariants    = 10
	DefaultMaxVariants = 20
	DefaultToolName    = "Tint & Shade Generator"
)

// DefaultPresets are the quick-access base colors.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Brand Blue", Color: "#3b82f6"},
		{Name: "Forest Green", Color: "#10b981"},
		{Name: "Sunset Orange", Color: "#f97316"},
		{Name: "Royal Purple", Color: "#8b5cf6"},
		{Name: "Crimson Red", Color: "#ef4444"},
		{Name: "Amber Gold", Color: "#f59e0b"},
	}
}

// GetDefaultConfig returns the configuration used when no file or
// environment override is present.
func GetDefaultConfig() Config {
	return Config{
		BaseColor:   DefaultBaseColor,
		Tints:       DefaultVariants,
		Shades:      DefaultVariants,
		MaxVariants: DefaultMaxVariants,
		Format:      "hex",
		LogLevel:    "info",
		Presets:     DefaultPresets(),
		Export: ExportConfig{
			Directory: ".",
			ToolName:  DefaultToolName,
		},
		Policy: palette.DefaultPolicy(),
	}
}
