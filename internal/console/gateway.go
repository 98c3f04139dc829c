package console

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
)

// NoOutputPlaceholder is returned when a command completes without
// printing anything, so the console always has a line to render.
const NoOutputPlaceholder = "(no output)"

// Registry interprets and executes one command string, emitting any
// output through the shared sink handle it was constructed with.
type Registry interface {
	Execute(command string) error
}

// StatusReader reads the supervised server process's state.
type StatusReader interface {
	Status() (domain.ProcessStatus, error)
}

// Result is the outcome of one command execution.
type Result struct {
	Success bool     `json:"success"`
	Output  []string `json:"output,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Gateway orchestrates capture, registry execution, and history
// recording. Execute calls are serialized: the shared sink admits only
// one capture at a time, and serialization also keeps history order
// identical to submission order.
type Gateway struct {
	mu       sync.Mutex
	out      *Output
	registry Registry
	history  *History
	status   StatusReader
}

// NewGateway creates a command gateway.
func NewGateway(out *Output, registry Registry, history *History, status StatusReader) *Gateway {
	return &Gateway{
		out:      out,
		registry: registry,
		history:  history,
		status:   status,
	}
}

// Execute runs one command to completion and returns its captured
// output. Registry faults are fully absorbed here: they are recorded
// to history and reported in the result, never propagated.
func (g *Gateway) Execute(command string) Result {
	command = strings.TrimSpace(command)
	if command == "" {
		// Local validation failure; nothing reached the registry and
		// nothing is recorded.
		return Result{Success: false, Error: "command cannot be empty"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// The command itself is recorded before execution, whatever the
	// outcome.
	g.history.Append(domain.NewHistoryEntry(domain.KindCommand, command))

	start := time.Now()
	lines, err := g.out.Capture(func() error {
		return g.run(command)
	})
	if err != nil {
		msg := fmt.Sprintf("Command failed: %v", err)
		g.history.Append(domain.NewHistoryEntry(domain.KindError, msg))
		slog.Warn("Command execution failed", "command", command, "error", err)
		return Result{Success: false, Error: msg}
	}

	if len(lines) == 0 {
		lines = []string{NoOutputPlaceholder}
	}
	for _, line := range lines {
		g.history.Append(domain.NewHistoryEntry(domain.KindOutput, line))
	}

	slog.Info("Command executed", "command", command, "lines", len(lines), "duration_ms", time.Since(start).Milliseconds())
	return Result{Success: true, Output: lines}
}

// run invokes the registry with panic absorption. The registry is an
// external collaborator; neither its errors nor its panics may cross
// the gateway boundary.
func (g *Gateway) run(command string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registry panic: %v", r)
		}
	}()
	return g.registry.Execute(command)
}

// ClearHistory empties the history buffer, appends one info entry
// noting the removal, and returns how many entries were removed.
func (g *Gateway) ClearHistory() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := g.history.Clear()
	g.history.Append(domain.NewHistoryEntry(domain.KindInfo,
		fmt.Sprintf("Console history cleared (%d entries removed)", removed)))
	return removed
}

// History returns the recorded entries oldest to newest.
func (g *Gateway) History() []domain.HistoryEntry {
	return g.history.All()
}

// Status returns the server process status. A failing status reader
// degrades the payload instead of producing an error, so the console
// stays usable.
func (g *Gateway) Status() domain.ProcessStatus {
	st, err := g.status.Status()
	if err != nil {
		slog.Warn("Status probe failed", "error", err)
		return domain.ProcessStatus{
			Running:   false,
			CheckedAt: time.Now(),
			Degraded:  true,
		}
	}
	return st
}
