package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/config"
	"tintshade/internal/tui/controller"
	"tintshade/internal/tui/view"
	"tintshade/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, level logging.LogLevel, settings config.Config) error {
	logging.Info(logging.SubsystemTUI, "Starting TUI mode...")

	// Initialize colors for TUI (dark mode by default)
	view.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(level)
	defer func() {
		logging.CloseTUIChannel()
		logging.InitForCLI(level, cfg.LogOutput)
	}()

	p, err := controller.NewProgram(settings, cfg.Debug, logChan, tea.WithContext(ctx))
	if err != nil {
		logging.Error(logging.SubsystemTUI, err, "Error creating TUI program")
		return err
	}

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error(logging.SubsystemTUI, err, "Error running TUI program")
		return err
	}
	logging.Info(logging.SubsystemTUI, "TUI exited.")

	return nil
}
