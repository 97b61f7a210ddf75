package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/config"
	"tintshade/internal/tui/model"
	"tintshade/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the palette editor. opts are
// applied after the alternate screen option.
func NewProgram(cfg config.Config, debugMode bool, logChannel <-chan logging.LogEntry, opts ...tea.ProgramOption) (*tea.Program, error) {
	m, err := model.InitialModel(cfg, debugMode, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	return p, nil
}
