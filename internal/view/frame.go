package view

import (
	"github.com/rivo/uniseg"

	"github.com/ecarlucci/tessera/internal/layout"
	"github.com/ecarlucci/tessera/internal/style"
)

// Surface is the render sink views draw into. The terminal backend
// implements it; tests use an in-memory grid.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell places a rune with a style at the given position.
	// Positions outside the surface are ignored.
	SetCell(x, y int, r rune, s style.Style)
}

// Frame wraps a Surface for the duration of one render pass.
type Frame struct {
	surface Surface
}

// NewFrame creates a frame drawing into surface.
func NewFrame(surface Surface) *Frame {
	return &Frame{surface: surface}
}

// Area returns the full surface rectangle.
func (f *Frame) Area() layout.Rect {
	w, h := f.surface.Size()
	return layout.NewRect(0, 0, w, h)
}

// SetCell places a single rune, clipped to area.
func (f *Frame) SetCell(area layout.Rect, x, y int, r rune, s style.Style) {
	if !area.Contains(x, y) {
		return
	}
	f.surface.SetCell(x, y, r, s)
}

// Fill covers area with the given rune and style.
func (f *Frame) Fill(area layout.Rect, r rune, s style.Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			f.surface.SetCell(x, y, r, s)
		}
	}
}

// DrawText draws text left to right starting at (x, y), clipped to
// area, and returns the number of columns consumed. Grapheme clusters
// wider than one column occupy their full width; a cluster that would
// cross the right edge is dropped.
func (f *Frame) DrawText(area layout.Rect, x, y int, text string, s style.Style) int {
	if y < area.Y || y >= area.Bottom() {
		return 0
	}
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+used+w > area.Right() {
			break
		}
		runes := g.Runes()
		f.SetCell(area, x+used, y, runes[0], s)
		// Wide clusters blank their continuation columns so stale
		// cells do not show through.
		for i := 1; i < w; i++ {
			f.SetCell(area, x+used+i, y, ' ', s)
		}
		used += w
	}
	return used
}

// TextWidth returns the display width of text in columns.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Box borders for drawing.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// Box draws a single-line border just inside area and returns the inner
// rectangle. Areas smaller than 2x2 are returned unchanged with no
// border drawn.
func (f *Frame) Box(area layout.Rect, s style.Style) layout.Rect {
	if area.Width < 2 || area.Height < 2 {
		return area
	}

	right := area.Right() - 1
	bottom := area.Bottom() - 1

	f.SetCell(area, area.X, area.Y, boxTopLeft, s)
	f.SetCell(area, right, area.Y, boxTopRight, s)
	f.SetCell(area, area.X, bottom, boxBottomLeft, s)
	f.SetCell(area, right, bottom, boxBottomRight, s)
	for x := area.X + 1; x < right; x++ {
		f.SetCell(area, x, area.Y, boxHorizontal, s)
		f.SetCell(area, x, bottom, boxHorizontal, s)
	}
	for y := area.Y + 1; y < bottom; y++ {
		f.SetCell(area, area.X, y, boxVertical, s)
		f.SetCell(area, right, y, boxVertical, s)
	}
	return area.Inner(1)
}

// BoxTitle draws a border like Box with a title embedded in the top
// edge, returning the inner rectangle.
func (f *Frame) BoxTitle(area layout.Rect, title string, s style.Style) layout.Rect {
	inner := f.Box(area, s)
	if title == "" || area.Width < 4 {
		return inner
	}
	titleArea := layout.NewRect(area.X+1, area.Y, area.Width-2, 1)
	f.DrawText(titleArea, area.X+1, area.Y, title, s)
	return inner
}
