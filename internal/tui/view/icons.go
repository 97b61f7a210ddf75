package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"tintshade/internal/tui/model"
)

// Status icons
const (
	IconCheck     = "✔"
	IconCross     = "✘"
	IconWarning   = "⚠"
	IconInfo      = "ℹ"
	IconSelection = "▲"
)

// SafeIcon pads icon so it never swallows the following character: one
// space after single-cell glyphs, two after wide ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// statusIcon picks the icon shown in front of a status bar message.
func statusIcon(t model.MessageType) string {
	switch t {
	case model.StatusBarSuccess:
		return IconCheck
	case model.StatusBarError:
		return IconCross
	case model.StatusBarWarning:
		return IconWarning
	default:
		return IconInfo
	}
}
