package controller

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshade/internal/color"
	"tintshade/internal/config"
	"tintshade/internal/tui/model"
	"tintshade/pkg/logging"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Tints = 3
	cfg.Shades = 3
	m, err := model.InitialModel(cfg, false, nil)
	require.NoError(t, err)
	return m
}

// stubClipboard captures clipboard writes for the duration of the test.
func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var captured string
	original := writeClipboard
	writeClipboard = func(text string) error {
		captured = text
		return err
	}
	t.Cleanup(func() { writeClipboard = original })
	return &captured
}

func press(m *model.Model, msgs ...tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = mainControllerDispatch(m, msg)
	}
	return m, cmd
}

func TestCountKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('+'))
	assert.Equal(t, 4, m.Tints)
	assert.Len(t, m.Palette.Tints, 4)

	m, _ = press(m, runeKey('-'), runeKey('-'))
	assert.Equal(t, 2, m.Tints)

	m, _ = press(m, runeKey(']'))
	assert.Len(t, m.Palette.Shades, 4)
	m, _ = press(m, runeKey('['))
	assert.Len(t, m.Palette.Shades, 3)
}

func TestCountKeysRespectMaximum(t *testing.T) {
	m := newTestModel(t)
	m.MaxVariants = 3

	m, cmd := press(m, runeKey('+'))
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.Tints)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
	assert.Contains(t, m.StatusBarMessage, "between 0 and 3")
}

func TestFormatAndSelectionKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('f'))
	assert.Equal(t, color.FormatRGB, m.Format)
	m, _ = press(m, runeKey('f'), runeKey('f'))
	assert.Equal(t, color.FormatHex, m.Format)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Selected)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, m.Palette.Len()-1, m.Selected)
}

func TestCopySwatch(t *testing.T) {
	captured := stubClipboard(t, nil)
	m := newTestModel(t)
	m.Format = color.FormatHSL

	m, cmd := press(m, runeKey('y'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "hsl(217, 91%, 60%)", *captured)

	m, _ = press(m, msg)
	assert.Equal(t, "Copied hsl(217, 91%, 60%)", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
}

func TestCopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard utility"))
	m := newTestModel(t)

	m, cmd := press(m, runeKey('y'))
	m, _ = press(m, cmd())
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestCopyCSS(t *testing.T) {
	captured := stubClipboard(t, nil)
	m := newTestModel(t)

	_, cmd := press(m, runeKey('c'))
	cmd()
	assert.Contains(t, *captured, "--color-base: #3b82f6;")
	assert.Contains(t, *captured, "--color-shade-150: #052d6e;")
}

func TestExportKey(t *testing.T) {
	m := newTestModel(t)
	m.ExportDir = t.TempDir()

	m, cmd := press(m, runeKey('e'))
	require.NotNil(t, cmd)
	msg := cmd()
	res, ok := msg.(model.ExportResultMsg)
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(m.ExportDir, "color-palette-3b82f6.json"), res.Path)
	_, err := os.Stat(res.Path)
	require.NoError(t, err)

	m, _ = press(m, msg)
	assert.Equal(t, "Exported "+res.Path, m.StatusBarMessage)

	m, _ = press(m, model.ExportResultMsg{Err: errors.New("read-only")})
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestPresetKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('p'))
	assert.Equal(t, "#10b981", m.BaseColor)
	assert.Equal(t, "Preset: Forest Green", m.StatusBarMessage)
}

func TestEditColor(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('/'))
	require.Equal(t, model.ModeColorInput, m.CurrentAppMode)
	assert.Equal(t, "#3b82f6", m.ColorInput.Value())

	m, _ = press(m, runeKey('q'))
	assert.Equal(t, model.ModeColorInput, m.CurrentAppMode, "q is text while editing")

	m.ColorInput.SetValue("hsl(0, 100%, 50%)")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "#ff0000", m.BaseColor)
	assert.Equal(t, "#ff0000", m.Palette.Base)
}

func TestEditColorInvalidKeepsPrevious(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('/'))
	m.ColorInput.SetValue("banana")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "#3b82f6", m.BaseColor)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
}

func TestEditColorEscCancels(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('/'))
	m.ColorInput.SetValue("#000000")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "#3b82f6", m.BaseColor)
	assert.Empty(t, m.ColorInput.Value())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runeKey('h'))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	m, _ = press(m, runeKey('h'), runeKey('h'))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestQuit(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"q":      runeKey('q'),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		t.Run(name, func(t *testing.T) {
			m, cmd := press(newTestModel(t), msg)
			assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestNewLogEntry(t *testing.T) {
	m := newTestModel(t)
	ch := make(chan logging.LogEntry, 1)
	m.LogChannel = ch

	m, cmd := press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelInfo, Subsystem: "Palette", Message: "hello"}})
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[INFO] Palette: hello")
	assert.NotNil(t, cmd, "keeps listening")

	m, _ = press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Message: "noise"}})
	assert.Len(t, m.ActivityLog, 1)

	m.DebugMode = true
	m, _ = press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Message: "noise"}})
	assert.Len(t, m.ActivityLog, 2)
}

func TestWindowSizeAndClearStatus(t *testing.T) {
	m := newTestModel(t)
	m.StatusBarMessage = "old"
	m.StatusBarMessageType = model.StatusBarError

	m, _ = press(m, tea.WindowSizeMsg{Width: 120, Height: 40}, model.ClearStatusBarMsg{})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Equal(t, 120, m.Help.Width)
	assert.Empty(t, m.StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)
}
