package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ecarlucci/tessera/internal/style"
)

// Terminal implements Backend on top of tcell.
type Terminal struct {
	screen tcell.Screen
	events chan Event
	quit   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewTerminal creates a terminal backend for the current tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		events: make(chan Event, 16),
		quit:   make(chan struct{}),
	}, nil
}

// Init initializes the screen and starts the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	go t.pump()
	return nil
}

// pump forwards tcell events to the normalized event channel until the
// backend shuts down.
func (t *Terminal) pump() {
	raw := make(chan tcell.Event, 16)
	go t.screen.ChannelEvents(raw, t.quit)
	for ev := range raw {
		converted := convertEvent(ev)
		if converted.Type == EventNone {
			continue
		}
		select {
		case t.events <- converted:
		case <-t.quit:
			close(t.events)
			return
		}
	}
	close(t.events)
}

// Fini restores the terminal. Safe to call more than once.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	close(t.quit)
	t.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell places a rune with a style.
func (t *Terminal) SetCell(x, y int, r rune, s style.Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(s))
}

// Clear blanks the pending frame.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending cells to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Events returns the normalized event channel.
func (t *Terminal) Events() <-chan Event {
	return t.events
}
