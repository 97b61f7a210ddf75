package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"tintshade/internal/tui/model"
)

const (
	defaultWidth = 80
	// minHeightForLog is the terminal height below which the activity log
	// is hidden.
	minHeightForLog = 24
	logLines        = 5
)

// Render draws the whole editor for the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return m.QuittingMessage
	}

	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		renderHeader(m, width),
		Strip(m.Palette, m.Selected, width),
		renderSelection(m),
	}
	if m.CurrentAppMode == model.ModeColorInput {
		sections = append(sections, m.ColorInput.View())
	}
	if m.CurrentAppMode == model.ModeHelpOverlay {
		sections = append(sections, PanelStyle.Render(m.Help.FullHelpView(m.Keys.FullHelp())))
	} else {
		sections = append(sections, m.Help.ShortHelpView(m.Keys.ShortHelp()))
	}
	if m.Height == 0 || m.Height >= minHeightForLog {
		if log := renderLog(m); log != "" {
			sections = append(sections, log)
		}
	}
	sections = append(sections, renderStatusBar(m, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model, width int) string {
	title := TitleStyle.Render("Tint & Shade Generator")
	summary := fmt.Sprintf("base %s  tints %d  shades %d  format %s",
		m.BaseColor, m.Tints, m.Shades, m.Format)
	if m.PresetIndex >= 0 && m.PresetIndex < len(m.Presets) {
		summary += "  preset " + m.Presets[m.PresetIndex].Name
	}
	return HeaderStyle.Width(width).Render(title + "  " + SubtleStyle.Render(summary))
}

func renderSelection(m *model.Model) string {
	v := m.SelectedVariant()
	head := fmt.Sprintf("%s  %s", v.Name(), m.SelectedValue())
	details, err := Details(v.Hex)
	if err != nil {
		return PanelStyle.Render(head)
	}
	return PanelStyle.Render(head + "\n\n" + details)
}

func renderStatusBar(m *model.Model, width int) string {
	style := StatusBarStyle.Width(width)
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = style.Foreground(Success)
	case model.StatusBarError:
		style = style.Foreground(Error)
	case model.StatusBarWarning:
		style = style.Foreground(Warning)
	}
	msg := fmt.Sprintf("%d colors", m.Palette.Len())
	if m.StatusBarMessage != "" {
		msg = SafeIcon(statusIcon(m.StatusBarMessageType)) + m.StatusBarMessage
	}
	return style.Render(msg)
}
