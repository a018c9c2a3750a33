package view

import (
	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/layout"
)

// View is anything that can render itself into a rectangle of the
// character grid. Static views ignore the focused flag; it is only
// meaningful for views reached through a Cell.
type View interface {
	Render(f *Frame, area layout.Rect, focused bool)
}

// Interactive is a View that can hold keyboard focus. Interactive views
// must be wrapped in a Cell (via Builder.Cell or Registry.Register) to
// participate in focus cycling and key dispatch.
type Interactive interface {
	View

	// Focusable reports whether the view currently accepts focus.
	Focusable() bool

	// OnFocus is called when the view gains focus.
	OnFocus()

	// OnUnfocus is called when the view loses focus.
	OnUnfocus()

	// OnKey handles a key event while the view is focused.
	OnKey(ev key.Event)
}

// Sizer is an optional interface for views with a preferred size.
// Stack consults it when building split constraints.
type Sizer interface {
	// PreferredSize returns the preferred width and height in cells.
	// ok is false when the view has no preference.
	PreferredSize() (width, height int, ok bool)
}
