package view

import "github.com/ecarlucci/tessera/internal/layout"

// Empty renders nothing. Useful as a spacer in stacks.
type Empty struct{}

// Render implements View.
func (Empty) Render(*Frame, layout.Rect, bool) {}

// Sized wraps a view and overrides its preferred size.
type Sized struct {
	inner         View
	width, height int
}

// NewSized gives inner a fixed preferred size. A zero width or height
// leaves that axis unconstrained.
func NewSized(width, height int, inner View) *Sized {
	return &Sized{inner: inner, width: width, height: height}
}

// Render implements View.
func (s *Sized) Render(f *Frame, area layout.Rect, focused bool) {
	s.inner.Render(f, area, focused)
}

// PreferredSize implements Sizer.
func (s *Sized) PreferredSize() (int, int, bool) {
	return s.width, s.height, true
}
