// Package layout provides rectangle geometry and the constraint-based
// splitting used to assign screen regions to views.
package layout

// Rect is a rectangular region of the character grid (0-indexed,
// half-open on the right and bottom edges).
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns r shrunk by margin cells on every side. Collapses to an
// empty rectangle when the margin exceeds the size.
func (r Rect) Inner(margin int) Rect {
	inner := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Intersect returns the overlap of r and other, empty if they are
// disjoint.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Direction selects the axis a rectangle is split along.
type Direction int

const (
	// Horizontal splits into side-by-side columns.
	Horizontal Direction = iota
	// Vertical splits into stacked rows.
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ConstraintKind discriminates Constraint values.
type ConstraintKind int

const (
	// KindLength is a fixed size in cells.
	KindLength ConstraintKind = iota
	// KindPercent is a percentage of the total size.
	KindPercent
	// KindRatio is a fraction num/den of the total size.
	KindRatio
	// KindMin is a minimum size that also absorbs leftover space.
	KindMin
)

// Constraint describes the desired size of one region of a split.
type Constraint struct {
	Kind  ConstraintKind
	Value int
	Den   int // denominator for KindRatio
}

// Length creates a fixed-size constraint.
func Length(cells int) Constraint {
	return Constraint{Kind: KindLength, Value: cells}
}

// Percent creates a percentage-of-total constraint.
func Percent(p int) Constraint {
	return Constraint{Kind: KindPercent, Value: p}
}

// Ratio creates a num/den fraction-of-total constraint.
func Ratio(num, den int) Constraint {
	if den <= 0 {
		den = 1
	}
	return Constraint{Kind: KindRatio, Value: num, Den: den}
}

// Min creates a minimum-size constraint that grows to absorb leftover
// space.
func Min(cells int) Constraint {
	return Constraint{Kind: KindMin, Value: cells}
}

// EqualConstraints returns n Ratio(1, n) constraints.
func EqualConstraints(n int) []Constraint {
	if n <= 0 {
		return nil
	}
	cs := make([]Constraint, n)
	for i := range cs {
		cs[i] = Ratio(1, n)
	}
	return cs
}

// Split divides area along direction according to constraints, returning
// one sub-rectangle per constraint in order. The sub-rectangles tile the
// area: leftover cells go to Min constraints (equally, remainder to the
// earliest), or to the last region when no Min constraint is present.
// When the constraints demand more than the available size, trailing
// regions are truncated to empty.
func Split(area Rect, direction Direction, constraints []Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}

	total := area.Width
	if direction == Vertical {
		total = area.Height
	}

	sizes := make([]int, len(constraints))
	fixed := 0
	minIdx := []int{}
	for i, c := range constraints {
		switch c.Kind {
		case KindLength:
			sizes[i] = c.Value
		case KindPercent:
			sizes[i] = total * c.Value / 100
		case KindRatio:
			sizes[i] = total * c.Value / c.Den
		case KindMin:
			sizes[i] = c.Value
			minIdx = append(minIdx, i)
		}
		if sizes[i] < 0 {
			sizes[i] = 0
		}
		fixed += sizes[i]
	}

	if leftover := total - fixed; leftover > 0 {
		if len(minIdx) > 0 {
			share := leftover / len(minIdx)
			rem := leftover % len(minIdx)
			for j, i := range minIdx {
				sizes[i] += share
				if j < rem {
					sizes[i]++
				}
			}
		} else {
			sizes[len(sizes)-1] += leftover
		}
	}

	// Lay the regions out front to back, truncating on overflow.
	out := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if offset+size > total {
			size = total - offset
		}
		if size < 0 {
			size = 0
		}
		if direction == Horizontal {
			out[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			out[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return out
}

// EqualSplit divides area into n equal regions along direction.
func EqualSplit(area Rect, direction Direction, n int) []Rect {
	return Split(area, direction, EqualConstraints(n))
}
