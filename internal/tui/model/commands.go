package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/color"
	"tintshade/internal/export"
	"tintshade/internal/palette"
	"tintshade/pkg/logging"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed so the loop ends with the program.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ExportPaletteCmd renders p and writes it to dir in the background.
func ExportPaletteCmd(e *export.Exporter, kind export.Kind, p palette.Palette, format color.Format, dir string) tea.Cmd {
	return func() tea.Msg {
		data, err := e.Render(kind, p, format)
		if err != nil {
			return ExportResultMsg{Kind: kind, Err: err}
		}
		path, err := export.WriteFile(dir, export.FileName(kind, p), data)
		return ExportResultMsg{Kind: kind, Path: path, Err: err}
	}
}
