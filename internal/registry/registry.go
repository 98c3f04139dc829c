// Package registry provides the built-in command table. Any registry
// satisfying the console.Registry contract can replace it; this one
// keeps the binary usable out of the box.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ashureev/console-gate/internal/console"
)

// Handler executes one named command, writing output through out.
type Handler func(out *console.Output, args []string) error

// Table is a map-based command registry.
type Table struct {
	out      *console.Output
	commands map[string]Handler
	started  time.Time
	version  string
}

// New creates a registry with the built-in commands registered.
func New(out *console.Output, version string) *Table {
	t := &Table{
		out:      out,
		commands: make(map[string]Handler),
		started:  time.Now(),
		version:  version,
	}

	t.Register("help", t.help)
	t.Register("echo", echo)
	t.Register("uptime", t.uptime)
	t.Register("version", t.versionCmd)

	return t
}

// Register adds or replaces a command handler.
func (t *Table) Register(name string, h Handler) {
	t.commands[strings.ToLower(name)] = h
}

// Execute parses and runs one command line, emitting output through
// the shared sink.
func (t *Table) Execute(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("empty command")
	}

	name := strings.ToLower(fields[0])
	h, ok := t.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}

	return h(t.out, fields[1:])
}

func (t *Table) help(out *console.Output, _ []string) error {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	out.Println("Available commands:")
	for _, name := range names {
		out.Println("  " + name)
	}
	return nil
}

func echo(out *console.Output, args []string) error {
	out.Println(strings.Join(args, " "))
	return nil
}

func (t *Table) uptime(out *console.Output, _ []string) error {
	out.Println(fmt.Sprintf("Console up %s", time.Since(t.started).Round(time.Second)))
	return nil
}

func (t *Table) versionCmd(out *console.Output, _ []string) error {
	out.Println(t.version)
	return nil
}
