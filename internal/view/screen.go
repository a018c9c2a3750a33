package view

import (
	"github.com/ecarlucci/tessera/internal/key"
)

// Screen pairs a root view with the registry of interactive cells
// embedded in it.
type Screen struct {
	root View
	reg  *Registry
}

// Builder assembles a Screen. Interactive views are registered through
// the builder so the focus ring order matches registration order; the
// returned cells are placed into the view tree handed to Finish.
type Builder struct {
	reg *Registry
}

// NewBuilder creates a screen builder with an empty registry.
func NewBuilder() *Builder {
	return &Builder{reg: NewRegistry()}
}

// Cell registers an interactive view and returns its cell for
// placement in the view tree.
func (b *Builder) Cell(view Interactive) *Cell {
	c, _ := b.reg.Register(view)
	return c
}

// TaggedCell registers an interactive view under a tag. A repeated tag
// shadows the earlier registration for lookup.
func (b *Builder) TaggedCell(tag string, view Interactive) *Cell {
	c, _ := b.reg.RegisterTagged(tag, view)
	return c
}

// Finish completes the screen with the given root view and gives
// initial focus to the first focusable cell.
func (b *Builder) Finish(root View) *Screen {
	b.reg.Build()
	return &Screen{root: root, reg: b.reg}
}

// Render draws the whole view tree into the surface.
func (s *Screen) Render(surface Surface) {
	f := NewFrame(surface)
	s.root.Render(f, f.Area(), false)
}

// HandleKey routes a key event through the registry. Returns true if
// the event was consumed.
func (s *Screen) HandleKey(ev key.Event) bool {
	return s.reg.HandleKey(ev)
}

// FocusNext advances focus to the next focusable cell.
func (s *Screen) FocusNext() { s.reg.FocusNext() }

// FocusPrev moves focus to the previous focusable cell.
func (s *Screen) FocusPrev() { s.reg.FocusPrev() }

// Focused returns the focused cell, or nil.
func (s *Screen) Focused() *Cell { return s.reg.Focused() }

// LookupTag returns the live cell registered under tag.
func (s *Screen) LookupTag(tag string) (*Cell, error) {
	return s.reg.LookupTag(tag)
}

// Registry exposes the screen's cell registry.
func (s *Screen) Registry() *Registry { return s.reg }

// InspectTag looks up a tagged cell and runs fn with its view downcast
// to V. Returns ErrTagNotFound or ErrTypeMismatch on failure.
func InspectTag[V Interactive](s *Screen, tag string, fn func(V)) error {
	c, err := s.LookupTag(tag)
	if err != nil {
		return err
	}
	return Inspect(c, fn)
}
