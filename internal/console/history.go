package console

import (
	"sync"

	"github.com/ashureev/console-gate/internal/domain"
)

// DefaultHistoryLimit caps the audit history at 100 entries.
const DefaultHistoryLimit = 100

// History is a fixed-size ring of console history entries. Once the
// cap is reached the oldest entries are evicted first. Entries are
// never mutated after insertion.
type History struct {
	mu    sync.RWMutex
	buf   []domain.HistoryEntry
	head  int // index of the oldest entry
	count int
}

// NewHistory creates a history buffer holding at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		buf: make([]domain.HistoryEntry, limit),
	}
}

// Append adds an entry, evicting the oldest one if the buffer is full.
func (h *History) Append(entry domain.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count < len(h.buf) {
		h.buf[(h.head+h.count)%len(h.buf)] = entry
		h.count++
		return
	}

	// Full: overwrite the oldest slot and advance.
	h.buf[h.head] = entry
	h.head = (h.head + 1) % len(h.buf)
}

// All returns the entries oldest to newest.
func (h *History) All() []domain.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.HistoryEntry, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}

// Clear empties the buffer and returns how many entries it held.
func (h *History) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	previous := h.count
	h.head = 0
	h.count = 0
	return previous
}

// Len returns the number of entries currently held.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Cap returns the maximum number of entries the buffer can hold.
func (h *History) Cap() int {
	return len(h.buf)
}
