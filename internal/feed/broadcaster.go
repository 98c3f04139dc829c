// Package feed fans console output lines out to live websocket
// subscribers. It observes the shared sink; per-command capture
// results still travel only through the command endpoint.
package feed

import (
	"log/slog"
	"sync"
)

const defaultQueueSize = 100

// Broadcaster is a console.Sink that forwards every line to all
// subscribers. Slow subscribers lose their oldest queued lines rather
// than blocking the writer.
type Broadcaster struct {
	mu        sync.Mutex
	subs      map[int]chan string
	nextID    int
	queueSize int
}

// NewBroadcaster creates a broadcaster with the given per-subscriber
// queue size.
func NewBroadcaster(queueSize int) *Broadcaster {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Broadcaster{
		subs:      make(map[int]chan string),
		queueSize: queueSize,
	}
}

// Println forwards msg to every subscriber without blocking. A full
// subscriber queue drops its oldest line to make room.
func (b *Broadcaster) Println(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- msg:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- msg:
			default:
			}
			slog.Debug("Feed subscriber lagging, dropped oldest line", "subscriber", id)
		}
	}
}

// Subscribe registers a new subscriber and returns its line channel
// together with a cancel function that must be called when done.
func (b *Broadcaster) Subscribe() (<-chan string, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan string, b.queueSize)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return ch, cancel
}

// Subscribers returns the number of live subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
