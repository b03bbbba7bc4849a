package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// eventQueueSize bounds keystrokes buffered between ticks
const eventQueueSize = 256

// Source yields at most one keystroke per call without blocking
type Source interface {
	PollKey() Key
}

// Poller buffers terminal events and hands them to the game one keystroke at a time
type Poller struct {
	events   chan tcell.Event
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoller starts pumping events from screen into the poller
func NewPoller(screen tcell.Screen) *Poller {
	p := newPoller()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case p.events <- ev:
			case <-p.stop:
				return
			}
		}
	})
	return p
}

// NewChannelPoller creates a poller reading from an existing event channel
func NewChannelPoller(events chan tcell.Event) *Poller {
	return &Poller{
		events: events,
		stop:   make(chan struct{}),
	}
}

func newPoller() *Poller {
	return NewChannelPoller(make(chan tcell.Event, eventQueueSize))
}

// PollKey returns the next queued keystroke, or KeyNone when nothing is queued
// Non-key events such as resizes are skipped and do not use up the call
func (p *Poller) PollKey() Key {
	for {
		select {
		case ev := <-p.events:
			if k, ok := ev.(*tcell.EventKey); ok {
				return TranslateKey(k)
			}
		default:
			return KeyNone
		}
	}
}

// Close stops the event pump
func (p *Poller) Close() {
	p.stopOnce.Do(func() { close(p.stop) })
}
