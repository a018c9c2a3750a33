package backend

import (
	"sync"

	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/style"
)

// Null is an in-memory Backend for tests and headless runs. Events are
// injected with PostKey and PostResize.
type Null struct {
	mu     sync.Mutex
	width  int
	height int
	runes  [][]rune
	styles [][]style.Style
	events chan Event
	closed bool
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	n := &Null{events: make(chan Event, 64)}
	n.resize(width, height)
	return n
}

func (n *Null) resize(width, height int) {
	n.width, n.height = width, height
	n.runes = make([][]rune, height)
	n.styles = make([][]style.Style, height)
	for y := 0; y < height; y++ {
		n.runes[y] = make([]rune, width)
		n.styles[y] = make([]style.Style, width)
		for x := range n.runes[y] {
			n.runes[y][x] = ' '
		}
	}
}

// Init implements Backend.
func (n *Null) Init() error { return nil }

// Fini implements Backend. Closes the event channel.
func (n *Null) Fini() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	close(n.events)
}

// Size implements Backend.
func (n *Null) Size() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.width, n.height
}

// SetCell implements Backend.
func (n *Null) SetCell(x, y int, r rune, s style.Style) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if x < 0 || y < 0 || x >= n.width || y >= n.height {
		return
	}
	n.runes[y][x] = r
	n.styles[y][x] = s
}

// Clear implements Backend.
func (n *Null) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resize(n.width, n.height)
}

// Show implements Backend. A no-op; cells are readable immediately.
func (n *Null) Show() {}

// Events implements Backend.
func (n *Null) Events() <-chan Event {
	return n.events
}

// PostKey injects a key event.
func (n *Null) PostKey(ev key.Event) {
	n.events <- Event{Type: EventKey, Key: ev}
}

// PostResize injects a resize event and regrows the cell grid.
func (n *Null) PostResize(width, height int) {
	n.mu.Lock()
	n.resize(width, height)
	n.mu.Unlock()
	n.events <- Event{Type: EventResize, Width: width, Height: height}
}

// Line returns the runes of row y as a string.
func (n *Null) Line(y int) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if y < 0 || y >= n.height {
		return ""
	}
	return string(n.runes[y])
}
