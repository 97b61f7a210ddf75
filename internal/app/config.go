package app

import (
	"io"

	"tintshade/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging and shows debug entries in the editor log.
	Debug bool

	// LogLevel overrides the configured level when set.
	LogLevel string

	// ConfigPath loads a single file instead of the user and project layers.
	ConfigPath string

	// LogOutput receives CLI log records. Defaults to stderr so stdout
	// stays clean for palette output.
	LogOutput io.Writer

	// Settings is filled in by NewApplication.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, logLevel, configPath string) *Config {
	return &Config{
		Debug:      debug,
		LogLevel:   logLevel,
		ConfigPath: configPath,
	}
}
