package console

import (
	"sync"
)

// captureSink accumulates lines while forwarding them unchanged to the
// previously installed sink, so existing log consumers keep working
// during a capture.
type captureSink struct {
	mu    sync.Mutex
	next  Sink
	lines []string
}

func (c *captureSink) Println(msg string) {
	c.mu.Lock()
	c.lines = append(c.lines, msg)
	next := c.next
	c.mu.Unlock()

	if next != nil {
		next.Println(msg)
	}
}

func (c *captureSink) collected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Capture runs fn with a tee sink installed and returns the lines
// emitted through the handle while fn ran, in order. The previous sink
// is restored in a defer, so restoration happens on normal return, on
// error, and on panic alike. Callers must not run two captures on the
// same handle concurrently; the command gateway serializes this.
func (o *Output) Capture(fn func() error) ([]string, error) {
	tee := &captureSink{}
	tee.next = o.install(tee)
	defer o.install(tee.next)

	err := fn()
	return tee.collected(), err
}
