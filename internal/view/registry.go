package view

import (
	"fmt"

	"github.com/ecarlucci/tessera/internal/key"
)

// Registry tracks interactive cells in a focus ring and by tag. Cells
// are owned by the registry's arena; the ring and tag map hold only
// generational handles, so a released cell silently drops out of
// traversal instead of dangling.
type Registry struct {
	arena *Arena
	ring  []Handle
	tags  map[string]Handle

	// focusIdx is the ring position of the focused cell, -1 when no
	// cell holds focus.
	focusIdx int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		arena:    NewArena(),
		tags:     make(map[string]Handle),
		focusIdx: -1,
	}
}

// Register wraps view in a cell, appends it to the focus ring, and
// returns the cell with its handle.
func (r *Registry) Register(view Interactive) (*Cell, Handle) {
	c := NewCell(view)
	h := r.arena.Add(c)
	r.ring = append(r.ring, h)
	return c, h
}

// RegisterTagged registers a cell under a tag. Registering a second
// cell with the same tag shadows the first for lookup; the earlier cell
// stays in the focus ring.
func (r *Registry) RegisterTagged(tag string, view Interactive) (*Cell, Handle) {
	c, h := r.Register(view)
	r.tags[tag] = h
	return c, h
}

// Build gives initial focus to the first live focusable cell in ring
// order, firing its OnFocus hook. Safe to call on an empty registry.
func (r *Registry) Build() {
	for i, h := range r.ring {
		c := r.arena.Resolve(h)
		if c == nil || !c.Focusable() {
			continue
		}
		c.focus()
		r.focusIdx = i
		return
	}
}

// Focused returns the currently focused cell, or nil.
func (r *Registry) Focused() *Cell {
	if r.focusIdx < 0 || r.focusIdx >= len(r.ring) {
		return nil
	}
	return r.arena.Resolve(r.ring[r.focusIdx])
}

// FocusNext moves focus to the next live focusable cell in ring order,
// wrapping past the end. Dead and non-focusable entries are skipped.
// With a single focusable cell, focus wraps back to it.
func (r *Registry) FocusNext() {
	r.cycle(1)
}

// FocusPrev moves focus to the previous live focusable cell in ring
// order, wrapping past the start.
func (r *Registry) FocusPrev() {
	r.cycle(-1)
}

func (r *Registry) cycle(step int) {
	n := len(r.ring)
	if n == 0 {
		return
	}

	cur := r.focusIdx
	start := cur
	if start < 0 {
		// No focus yet: scan the whole ring from the appropriate end.
		if step > 0 {
			start = -1
		} else {
			start = n
		}
	}

	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		c := r.arena.Resolve(r.ring[idx])
		if c == nil || !c.Focusable() {
			continue
		}
		if prev := r.Focused(); prev != nil && prev != c {
			prev.unfocus()
		}
		c.focus()
		r.focusIdx = idx
		return
	}
}

// LookupTag returns the live cell registered under tag. A missing tag
// or a tag whose cell has been released yields ErrTagNotFound.
func (r *Registry) LookupTag(tag string) (*Cell, error) {
	h, ok := r.tags[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTagNotFound, tag)
	}
	c := r.arena.Resolve(h)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrTagNotFound, tag)
	}
	return c, nil
}

// Resolve returns the cell behind a handle, or nil if released.
func (r *Registry) Resolve(h Handle) *Cell {
	return r.arena.Resolve(h)
}

// Release frees the cell behind a handle. A focused cell loses focus
// first, without firing OnUnfocus on the already-released view. Stale
// handles are a no-op.
func (r *Registry) Release(h Handle) {
	c := r.arena.Resolve(h)
	if c == nil {
		return
	}
	if r.Focused() == c {
		r.focusIdx = -1
	}
	r.arena.Release(h)
}

// HandleKey routes a key event: Tab advances focus, Backtab (or
// Shift+Tab) moves it back, and everything else goes to the focused
// cell. Returns true if the event was consumed.
func (r *Registry) HandleKey(ev key.Event) bool {
	switch {
	case ev.Key == key.KeyTab && ev.Modifiers.IsEmpty():
		r.FocusNext()
		return true
	case ev.Key == key.KeyBacktab,
		ev.Key == key.KeyTab && ev.Modifiers.HasShift():
		r.FocusPrev()
		return true
	}
	if c := r.Focused(); c != nil {
		c.HandleKey(ev)
		return true
	}
	return false
}
