package console

import (
	"errors"
	"sync"
	"testing"
)

// recordSink remembers every line it receives.
type recordSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordSink) Println(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, msg)
}

func (s *recordSink) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func TestOutput_CaptureCollectsInOrder(t *testing.T) {
	base := &recordSink{}
	out := NewOutput(base)

	lines, err := out.Capture(func() error {
		out.Println("A")
		out.Println("B")
		return nil
	})
	if err != nil {
		t.Fatalf("Capture returned unexpected error: %v", err)
	}

	if len(lines) != 2 || lines[0] != "A" || lines[1] != "B" {
		t.Errorf("Expected [A B], got %v", lines)
	}

	// Lines must also have been forwarded to the base sink.
	if got := base.all(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Expected base sink to see [A B], got %v", got)
	}
}

func TestOutput_CaptureRestoresOnReturn(t *testing.T) {
	base := &recordSink{}
	out := NewOutput(base)

	if _, err := out.Capture(func() error { return nil }); err != nil {
		t.Fatalf("Capture returned unexpected error: %v", err)
	}

	out.Println("after")
	if got := base.all(); len(got) != 1 || got[0] != "after" {
		t.Errorf("Expected base sink restored after capture, got %v", got)
	}
}

func TestOutput_CaptureRestoresOnError(t *testing.T) {
	base := &recordSink{}
	out := NewOutput(base)
	boom := errors.New("boom")

	lines, err := out.Capture(func() error {
		out.Println("partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected original error back, got %v", err)
	}
	if len(lines) != 1 || lines[0] != "partial" {
		t.Errorf("Expected partial output returned alongside the error, got %v", lines)
	}

	// A second capture must observe the pre-capture sink, not a stale
	// wrapper from the failed one.
	second, err := out.Capture(func() error {
		out.Println("clean")
		return nil
	})
	if err != nil {
		t.Fatalf("Second capture returned unexpected error: %v", err)
	}
	if len(second) != 1 || second[0] != "clean" {
		t.Errorf("Expected second capture isolated from the first, got %v", second)
	}
}

func TestOutput_CaptureRestoresOnPanic(t *testing.T) {
	base := &recordSink{}
	out := NewOutput(base)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic to propagate out of Capture")
			}
		}()
		_, _ = out.Capture(func() error {
			panic("exploded")
		})
	}()

	out.Println("after panic")
	if got := base.all(); len(got) != 1 || got[0] != "after panic" {
		t.Errorf("Expected base sink restored after panic, got %v", got)
	}
}

func TestMultiSink_FansOut(t *testing.T) {
	a := &recordSink{}
	b := &recordSink{}
	m := MultiSink{a, b}

	m.Println("hello")

	if got := a.all(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("Expected first sink to receive line, got %v", got)
	}
	if got := b.all(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("Expected second sink to receive line, got %v", got)
	}
}
