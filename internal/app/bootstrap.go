package app

import (
	"context"
	"fmt"
	"os"

	"tintshade/internal/color"
	"tintshade/internal/config"
	"tintshade/internal/export"
	"tintshade/internal/palette"
	"tintshade/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application wires configuration, logging and the palette services used
// by every command.
type Application struct {
	config    *Config
	level     logging.LogLevel
	generator *palette.Generator
	exporter  *export.Exporter
}

// NewApplication sets up CLI logging, loads the configuration and builds the
// generator and exporter.
func NewApplication(cfg *Config) (*Application, error) {
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}

	level, err := resolveLevel(cfg, "")
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, cfg.LogOutput)

	var settings config.Config
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	cfg.Settings = &settings

	// The configured level only applies when no flag chose one.
	if configured, err := resolveLevel(cfg, settings.LogLevel); err != nil {
		logging.Warn(bootstrapSubsystem, "Ignoring configured log level: %v", err)
	} else if configured != level {
		level = configured
		logging.InitForCLI(level, cfg.LogOutput)
	}

	return &Application{
		config:    cfg,
		level:     level,
		generator: palette.New(settings.Policy),
		exporter:  export.New(settings.Export.ToolName),
	}, nil
}

func resolveLevel(cfg *Config, configured string) (logging.LogLevel, error) {
	if cfg.Debug {
		return logging.LevelDebug, nil
	}
	if cfg.LogLevel != "" {
		return logging.ParseLevel(cfg.LogLevel)
	}
	return logging.ParseLevel(configured)
}

// Settings returns the loaded configuration.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Exporter returns the exporter stamped with the configured tool name.
func (a *Application) Exporter() *export.Exporter {
	return a.exporter
}

// ResolveBase picks the base color: an explicit argument, then a named
// preset, then the configured default.
func (a *Application) ResolveBase(arg, preset string) (string, error) {
	switch {
	case arg != "":
		hex, err := color.Normalize(arg)
		if err != nil {
			return "", err
		}
		return hex, nil
	case preset != "":
		p, ok := a.config.Settings.FindPreset(preset)
		if !ok {
			return "", fmt.Errorf("unknown preset %q", preset)
		}
		return p.Color, nil
	default:
		return a.config.Settings.BaseColor, nil
	}
}

// Palette checks the counts against the configured maximum and generates.
func (a *Application) Palette(base string, tints, shades int) (palette.Palette, error) {
	limit := a.config.Settings.MaxVariants
	if err := config.CheckCount("tints", tints, limit); err != nil {
		return palette.Palette{}, err
	}
	if err := config.CheckCount("shades", shades, limit); err != nil {
		return palette.Palette{}, err
	}

	p, err := a.generator.Build(base, tints, shades)
	if err != nil {
		return palette.Palette{}, err
	}
	logging.Debug(logging.SubsystemPalette, "Generated %d tints and %d shades for %s", len(p.Tints), len(p.Shades), base)
	return p, nil
}

// RunTUI starts the interactive editor on base and blocks until it exits.
func (a *Application) RunTUI(ctx context.Context, base string) error {
	settings := a.Settings()
	settings.BaseColor = base
	return runTUIMode(ctx, a.config, a.level, settings)
}
