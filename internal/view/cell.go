package view

import (
	"sync"

	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/layout"
)

// Cell wraps an interactive view with shared mutable access and a focus
// flag. A Cell may appear in the view tree and in the registry's focus
// ring at the same time; the mutex keeps script-driven mutation safe
// against the render loop.
type Cell struct {
	mu      sync.Mutex
	view    Interactive
	focused bool
}

// NewCell wraps view in a cell. The cell starts unfocused.
func NewCell(view Interactive) *Cell {
	return &Cell{view: view}
}

// Render draws the wrapped view, passing along the cell's focus flag.
func (c *Cell) Render(f *Frame, area layout.Rect, _ bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Render(f, area, c.focused)
}

// PreferredSize implements Sizer by delegating to the wrapped view.
func (c *Cell) PreferredSize() (int, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sz, ok := c.view.(Sizer); ok {
		return sz.PreferredSize()
	}
	return 0, 0, false
}

// Focused reports whether the cell currently holds focus.
func (c *Cell) Focused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focused
}

// Focusable reports whether the wrapped view accepts focus right now.
func (c *Cell) Focusable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Focusable()
}

// HandleKey forwards a key event to the wrapped view.
func (c *Cell) HandleKey(ev key.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.OnKey(ev)
}

// focus marks the cell focused and fires the view's OnFocus hook. A
// no-op if the cell is already focused.
func (c *Cell) focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.focused {
		return
	}
	c.focused = true
	c.view.OnFocus()
}

// unfocus clears the focus flag and fires OnUnfocus. A no-op if the
// cell is not focused.
func (c *Cell) unfocus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.focused {
		return
	}
	c.focused = false
	c.view.OnUnfocus()
}

// Inspect runs fn with the cell's view downcast to the concrete type V.
// It returns ErrTypeMismatch when the cell holds some other type. The
// cell stays locked for the duration of fn, so fn must not call back
// into the cell.
func Inspect[V Interactive](c *Cell, fn func(V)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.view.(V)
	if !ok {
		return ErrTypeMismatch
	}
	fn(v)
	return nil
}
