package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/tui/model"
	"tintshade/pkg/logging"
)

// handleKeyMsgInputMode processes key presses while the base color is being
// edited. Enter applies, Esc cancels and everything else goes to the
// textinput component.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Enter):
		input := m.ColorInput.Value()
		closeInput(m)
		if err := m.SetBaseColor(input); err != nil {
			logging.Warn(logging.SubsystemColor, "Ignoring base color %q: %v", input, err)
			return m, m.SetStatusMessage("Invalid color, keeping "+m.BaseColor, model.StatusBarWarning, statusTimeout)
		}
		return m, m.SetStatusMessage("Base color "+m.BaseColor, model.StatusBarSuccess, statusTimeout)

	case key.Matches(keyMsg, m.Keys.Esc):
		closeInput(m)
		return m, nil
	}

	var inputCmd tea.Cmd
	m.ColorInput, inputCmd = m.ColorInput.Update(keyMsg)
	return m, inputCmd
}

func closeInput(m *model.Model) {
	m.CurrentAppMode = model.ModeMain
	m.ColorInput.Blur()
	m.ColorInput.Reset()
}
