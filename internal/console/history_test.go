package console

import (
	"strconv"
	"testing"

	"github.com/ashureev/console-gate/internal/domain"
)

func TestHistory_AppendAndAll(t *testing.T) {
	h := NewHistory(10)

	h.Append(domain.NewHistoryEntry(domain.KindCommand, "first"))
	h.Append(domain.NewHistoryEntry(domain.KindOutput, "second"))

	all := h.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(all))
	}
	if all[0].Message != "first" || all[1].Message != "second" {
		t.Errorf("Expected insertion order preserved, got %q then %q", all[0].Message, all[1].Message)
	}
	if all[0].Kind != domain.KindCommand {
		t.Errorf("Expected kind command, got %q", all[0].Kind)
	}
}

func TestHistory_EvictsOldestAtCap(t *testing.T) {
	h := NewHistory(100)

	for i := 0; i < 250; i++ {
		h.Append(domain.NewHistoryEntry(domain.KindOutput, strconv.Itoa(i)))
	}

	all := h.All()
	if len(all) != 100 {
		t.Fatalf("Expected exactly 100 entries, got %d", len(all))
	}

	// The survivors must be the last 100 appended, in order.
	for i, entry := range all {
		want := strconv.Itoa(150 + i)
		if entry.Message != want {
			t.Fatalf("Entry %d: expected %q, got %q", i, want, entry.Message)
		}
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 5; i++ {
		h.Append(domain.NewHistoryEntry(domain.KindOutput, "line"))
	}

	cleared := h.Clear()
	if cleared != 5 {
		t.Errorf("Expected Clear to report 5, got %d", cleared)
	}
	if h.Len() != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d entries", h.Len())
	}

	// Buffer remains usable after clearing.
	h.Append(domain.NewHistoryEntry(domain.KindInfo, "after"))
	all := h.All()
	if len(all) != 1 || all[0].Message != "after" {
		t.Errorf("Expected single entry after Clear+Append, got %v", all)
	}
}

func TestHistory_DefaultLimit(t *testing.T) {
	h := NewHistory(0)
	if h.Cap() != DefaultHistoryLimit {
		t.Errorf("Expected default cap %d, got %d", DefaultHistoryLimit, h.Cap())
	}
}
