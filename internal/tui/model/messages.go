package model

import (
	"tintshade/internal/export"
	"tintshade/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ExportResultMsg reports the outcome of a background export.
type ExportResultMsg struct {
	Kind export.Kind
	Path string
	Err  error
}

// ClipboardResultMsg reports the outcome of a clipboard copy.
type ClipboardResultMsg struct {
	What string
	Err  error
}

type ClearStatusBarMsg struct{}
