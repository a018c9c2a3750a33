// Package backend abstracts the terminal so the view tree renders into
// an interface rather than tcell directly. Terminal is the real
// implementation; Null backs tests and headless runs.
package backend

import (
	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/style"
)

// EventType discriminates terminal events.
type EventType int

const (
	// EventNone is an event the backend could not classify.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventResize is a terminal size change.
	EventResize
)

// Event is a terminal event normalized away from the tcell types.
type Event struct {
	Type EventType

	// Key holds the key press for EventKey.
	Key key.Event

	// Width and Height hold the new size for EventResize.
	Width, Height int
}

// Backend is a terminal the application can draw to and receive events
// from. SetCell and Size satisfy the render sink contract of the view
// tree.
type Backend interface {
	// Init puts the terminal into raw mode and claims the alternate
	// screen.
	Init() error

	// Fini restores the terminal. Safe to call more than once.
	Fini()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// SetCell places a rune with a style.
	SetCell(x, y int, r rune, s style.Style)

	// Clear blanks the pending frame.
	Clear()

	// Show flushes pending cells to the terminal.
	Show()

	// Events returns the channel terminal events arrive on. The channel
	// closes when the backend shuts down.
	Events() <-chan Event
}
