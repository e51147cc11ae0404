// Package input turns the terminal's asynchronous event stream into keys
// that can be polled once per tick without blocking.
package input

import (
	"io"
	"sync"

	"github.com/gdamore/tcell"
)

const eventBufferSize = 64

// EventSource is the blocking event provider behind a Source; tcell.Screen
// implements it.
type EventSource interface {
	PollEvent() tcell.Event
}

// Source polls decoded keys from an event source.
type Source struct {
	events <-chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewSource starts pumping events from es. The pump stops once es returns a
// nil event, which tcell does after the screen is finalized, or once the
// Source is closed and the pump is not blocked inside es.
func NewSource(es EventSource) *Source {
	ch := make(chan tcell.Event, eventBufferSize)
	src := &Source{
		events: ch,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(ch)
		for {
			ev := es.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-src.done:
				return
			default:
			}
			select {
			case ch <- ev:
			case <-src.done:
				return
			}
		}
	}()
	return src
}

// Close stops the pump from delivering any further events, even if nobody
// is polling. Events already buffered may still be polled. Safe to call more
// than once.
func (src *Source) Close() error {
	src.once.Do(func() { close(src.done) })
	return nil
}

// Poll returns the next pending key, if any, without blocking. Pending
// events that are not keys are consumed and dropped. Once the pump has
// stopped Poll returns io.EOF.
func (src *Source) Poll() (Key, bool, error) {
	for {
		select {
		case ev, ok := <-src.events:
			if !ok {
				return Key{}, false, io.EOF
			}
			if key, have, err := Decode(ev); have || err != nil {
				return key, have, err
			}
		default:
			return Key{}, false, nil
		}
	}
}
