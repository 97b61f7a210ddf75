package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/color"
	"tintshade/internal/config"
	"tintshade/internal/export"
	"tintshade/internal/palette"
	"tintshade/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeColorInput
	ModeHelpOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeColorInput:
		return "ColorInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

const MaxActivityLogLines = 200

// KeyMap defines all the key bindings for the editor
type KeyMap struct {
	MoreTints   key.Binding
	FewerTints  key.Binding
	MoreShades  key.Binding
	FewerShades key.Binding
	Format      key.Binding
	Left        key.Binding
	Right       key.Binding
	CopySwatch  key.Binding
	CopyCSS     key.Binding
	Export      key.Binding
	NextPreset  key.Binding
	EditColor   key.Binding
	Enter       key.Binding
	Esc         key.Binding
	ToggleDark  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoreTints, k.MoreShades, k.Format, k.EditColor, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoreTints, k.FewerTints, k.MoreShades, k.FewerShades},
		{k.Left, k.Right, k.Format, k.NextPreset, k.EditColor},
		{k.CopySwatch, k.CopyCSS, k.Export},
		{k.ToggleDark, k.Help, k.Quit},
	}
}

// Model is the state of the interactive palette editor.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// Palette state. Palette is rebuilt from scratch on every change.
	BaseColor   string
	Tints       int
	Shades      int
	MaxVariants int
	Format      color.Format
	Selected    int
	Presets     []config.Preset
	PresetIndex int
	Palette     palette.Palette

	Generator *palette.Generator
	Exporter  *export.Exporter
	ExportDir string

	// UI State & Output
	ColorInput           textinput.Model
	Keys                 KeyMap
	Help                 help.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Regenerate rebuilds the palette from the current base color and counts.
// The selection is kept in range.
func (m *Model) Regenerate() error {
	p, err := m.Generator.Build(m.BaseColor, m.Tints, m.Shades)
	if err != nil {
		return err
	}
	m.Palette = p
	if m.Selected >= p.Len() {
		m.Selected = p.Len() - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
	return nil
}

// SetBaseColor normalizes input and regenerates. On error the previous
// color is kept.
func (m *Model) SetBaseColor(input string) error {
	hex, err := color.Normalize(input)
	if err != nil {
		return err
	}
	previous := m.BaseColor
	m.BaseColor = hex
	if err := m.Regenerate(); err != nil {
		m.BaseColor = previous
		return err
	}
	m.PresetIndex = m.presetIndexFor(hex)
	return nil
}

// AdjustTints changes the tint count by delta. It reports false when the
// result would leave [0, MaxVariants].
func (m *Model) AdjustTints(delta int) bool {
	n := m.Tints + delta
	if n < 0 || n > m.MaxVariants {
		return false
	}
	m.Tints = n
	return m.Regenerate() == nil
}

// AdjustShades is AdjustTints for shades.
func (m *Model) AdjustShades(delta int) bool {
	n := m.Shades + delta
	if n < 0 || n > m.MaxVariants {
		return false
	}
	m.Shades = n
	return m.Regenerate() == nil
}

// NextPreset switches to the preset after the current one.
func (m *Model) NextPreset() (config.Preset, error) {
	if len(m.Presets) == 0 {
		return config.Preset{}, fmt.Errorf("no presets configured")
	}
	next := m.Presets[(m.PresetIndex+1)%len(m.Presets)]
	if err := m.SetBaseColor(next.Color); err != nil {
		return next, err
	}
	return next, nil
}

// MoveSelection moves the selected swatch by delta, wrapping around.
func (m *Model) MoveSelection(delta int) {
	n := m.Palette.Len()
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// SelectedVariant returns the highlighted swatch.
func (m *Model) SelectedVariant() palette.Variant {
	variants := m.Palette.Variants()
	if m.Selected < 0 || m.Selected >= len(variants) {
		return variants[0]
	}
	return variants[m.Selected]
}

// SelectedValue is the highlighted swatch in the active format.
func (m *Model) SelectedValue() string {
	return color.ConvertColor(m.SelectedVariant().Hex, m.Format)
}

func (m *Model) presetIndexFor(hex string) int {
	for i, p := range m.Presets {
		if p.Color == hex {
			return i
		}
	}
	return -1
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
