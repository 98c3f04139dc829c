// Package console implements the command gateway core: the shared
// output sink, scoped capture, the bounded history buffer, and the
// orchestration around the external command registry.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Sink is the destination for console output lines. The registry and
// the server process write through a single shared sink handle; at
// most one capture may be installed on it at a time.
type Sink interface {
	Println(msg string)
}

// WriterSink adapts an io.Writer to a line-oriented Sink.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing one line per message to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Println writes msg followed by a newline.
func (s *WriterSink) Println(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, msg)
}

// MultiSink fans each line out to every sink in order.
type MultiSink []Sink

// Println forwards msg to all sinks.
func (m MultiSink) Println(msg string) {
	for _, s := range m {
		s.Println(msg)
	}
}

// Output is the process-wide sink handle. Writers hold the handle, not
// the sink itself, so the installed sink can be swapped for the
// duration of a capture without touching any caller.
type Output struct {
	mu   sync.Mutex
	sink Sink
}

// NewOutput creates an output handle over the given base sink.
func NewOutput(sink Sink) *Output {
	return &Output{sink: sink}
}

// Println forwards msg to the currently installed sink.
func (o *Output) Println(msg string) {
	o.mu.Lock()
	sink := o.sink
	o.mu.Unlock()

	if sink != nil {
		sink.Println(msg)
	}
}

// install swaps the current sink and returns the previous one.
func (o *Output) install(sink Sink) Sink {
	o.mu.Lock()
	defer o.mu.Unlock()
	prev := o.sink
	o.sink = sink
	return prev
}
