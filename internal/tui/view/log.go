package view

import (
	"strings"

	"tintshade/internal/tui/model"
)

// renderLog shows the tail of the activity log.
func renderLog(m *model.Model) string {
	if len(m.ActivityLog) == 0 {
		return ""
	}
	start := len(m.ActivityLog) - logLines
	if start < 0 {
		start = 0
	}
	return PrepareLogContent(m.ActivityLog[start:])
}

// PrepareLogContent applies color styles based on log level markers.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return ErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return WarningStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return SubtleStyle.Render(l)
	default:
		return InfoStyle.Render(l)
	}
}
