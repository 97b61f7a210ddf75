package controller

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/tui/model"
	"tintshade/pkg/logging"
)

const statusTimeout = 3 * time.Second

// Update routes every message to its handler and returns the next command.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeColorInput {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ExportResultMsg:
		return handleExportResult(m, msg)

	case model.ClipboardResultMsg:
		return handleClipboardResult(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		return m, nil
	}

	if m.DebugMode {
		logging.Debug(logging.SubsystemTUI, "Unhandled msg: %T", msg)
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	return m, tea.Quit
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only show up when the editor runs in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.String())
	}
	return m
}

func handleExportResult(m *model.Model, msg model.ExportResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Error(logging.SubsystemExport, msg.Err, "Export %s failed", msg.Kind)
		return m, m.SetStatusMessage(fmt.Sprintf("Export failed: %v", msg.Err), model.StatusBarError, statusTimeout)
	}
	logging.Info(logging.SubsystemExport, "Exported %s palette to %s", msg.Kind, msg.Path)
	return m, m.SetStatusMessage("Exported "+msg.Path, model.StatusBarSuccess, statusTimeout)
}

func handleClipboardResult(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Error(logging.SubsystemTUI, msg.Err, "Failed to copy %s", msg.What)
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, statusTimeout)
	}
	return m, m.SetStatusMessage("Copied "+msg.What, model.StatusBarSuccess, statusTimeout)
}
