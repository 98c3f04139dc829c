package domain

import (
	"time"
)

// EntryKind classifies a console history line.
type EntryKind string

const (
	KindCommand EntryKind = "command"
	KindOutput  EntryKind = "output"
	KindError   EntryKind = "error"
	KindSuccess EntryKind = "success"
	KindInfo    EntryKind = "info"
	KindWarning EntryKind = "warning"
)

// HistoryEntry is one recorded line of console activity.
// Entries are immutable once created.
type HistoryEntry struct {
	Message   string    `json:"message"`
	Kind      EntryKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHistoryEntry creates an entry stamped with the current time.
func NewHistoryEntry(kind EntryKind, message string) HistoryEntry {
	return HistoryEntry{
		Message:   message,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}
