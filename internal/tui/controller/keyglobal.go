package controller

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tintshade/internal/export"
	"tintshade/internal/tui/model"
	"tintshade/pkg/logging"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return model.ClipboardResultMsg{What: what, Err: writeClipboard(text)}
	}
}

// handleKeyMsgGlobal processes key presses outside of the color input.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeHelpOverlay && key.Matches(keyMsg, m.Keys.Esc) {
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = m.LastAppMode
		} else {
			m.LastAppMode = m.CurrentAppMode
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.MoreTints):
		return adjusted(m, m.AdjustTints(1), "tints")
	case key.Matches(keyMsg, m.Keys.FewerTints):
		return adjusted(m, m.AdjustTints(-1), "tints")
	case key.Matches(keyMsg, m.Keys.MoreShades):
		return adjusted(m, m.AdjustShades(1), "shades")
	case key.Matches(keyMsg, m.Keys.FewerShades):
		return adjusted(m, m.AdjustShades(-1), "shades")

	case key.Matches(keyMsg, m.Keys.Format):
		m.Format = m.Format.Next()
		return m, m.SetStatusMessage("Format: "+m.Format.String(), model.StatusBarInfo, statusTimeout)

	case key.Matches(keyMsg, m.Keys.Left):
		m.MoveSelection(-1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.Right):
		m.MoveSelection(1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopySwatch):
		value := m.SelectedValue()
		return m, copyCmd(value, value)

	case key.Matches(keyMsg, m.Keys.CopyCSS):
		return m, copyCmd("CSS variables", export.CSS(m.Palette))

	case key.Matches(keyMsg, m.Keys.Export):
		return m, model.ExportPaletteCmd(m.Exporter, export.KindJSON, m.Palette, m.Format, m.ExportDir)

	case key.Matches(keyMsg, m.Keys.NextPreset):
		p, err := m.NextPreset()
		if err != nil {
			return m, m.SetStatusMessage(err.Error(), model.StatusBarWarning, statusTimeout)
		}
		logging.Info(logging.SubsystemPalette, "Switched to preset %s (%s)", p.Name, p.Color)
		return m, m.SetStatusMessage("Preset: "+p.Name, model.StatusBarInfo, statusTimeout)

	case key.Matches(keyMsg, m.Keys.EditColor):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeColorInput
		m.ColorInput.SetValue(m.BaseColor)
		m.ColorInput.CursorEnd()
		return m, tea.Batch(m.ColorInput.Focus(), textinput.Blink)

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
		return m, nil
	}

	return m, nil
}

func adjusted(m *model.Model, ok bool, what string) (*model.Model, tea.Cmd) {
	if !ok {
		return m, m.SetStatusMessage(fmt.Sprintf("%s must stay between 0 and %d", what, m.MaxVariants), model.StatusBarWarning, statusTimeout)
	}
	logging.Debug(logging.SubsystemPalette, "Regenerated palette: %d tints, %d shades", m.Tints, m.Shades)
	return m, nil
}
