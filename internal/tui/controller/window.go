package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/tui/model"
)

// handleWindowSizeMsg records the terminal size so the swatch strip and help
// can reflow.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	return m, nil
}
