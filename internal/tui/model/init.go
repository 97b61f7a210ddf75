package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tintshade/internal/config"
	"tintshade/internal/export"
	"tintshade/internal/palette"
	"tintshade/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoreTints: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more tints"),
		),
		FewerTints: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer tints"),
		),
		MoreShades: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more shades"),
		),
		FewerShades: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer shades"),
		),
		Format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle format"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next swatch"),
		),
		CopySwatch: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy swatch"),
		),
		CopyCSS: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy CSS"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export JSON"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next preset"),
		),
		EditColor: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit color"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitialModel builds the editor state from the loaded configuration.
func InitialModel(cfg config.Config, debugMode bool, logChannel <-chan logging.LogEntry) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "#3b82f6, rgb(59, 130, 246) or hsl(217, 91%, 60%)"
	ti.Prompt = "Base color: "
	ti.CharLimit = 64
	ti.Width = 40

	m := &Model{
		CurrentAppMode: ModeMain,
		DebugMode:      debugMode,
		BaseColor:      cfg.BaseColor,
		Tints:          cfg.Tints,
		Shades:         cfg.Shades,
		MaxVariants:    cfg.MaxVariants,
		Format:         cfg.ColorFormat(),
		Presets:        cfg.Presets,
		Generator:      palette.New(cfg.Policy),
		Exporter:       export.New(cfg.Export.ToolName),
		ExportDir:      cfg.Export.Directory,
		ColorInput:     ti,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		ActivityLog:    make([]string, 0),
		LogChannel:     logChannel,
	}
	if m.MaxVariants <= 0 {
		m.MaxVariants = config.DefaultMaxVariants
	}
	m.PresetIndex = m.presetIndexFor(m.BaseColor)

	if err := m.Regenerate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init starts listening on the logging channel.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
