package view

import (
	"github.com/ecarlucci/tessera/internal/layout"
)

// Stack lays out child views along one direction. Constraints are
// derived from each child's preferred size where available; children
// without a preference split the leftover space equally.
type Stack struct {
	children    []View
	direction   layout.Direction
	constraints []layout.Constraint
}

// NewStack creates a stack in the given direction.
func NewStack(direction layout.Direction, children ...View) *Stack {
	cs := make([]layout.Constraint, len(children))
	for i, child := range children {
		cs[i] = deriveConstraint(direction, child)
	}
	return &Stack{children: children, direction: direction, constraints: cs}
}

// HStack creates a horizontal stack.
func HStack(children ...View) *Stack {
	return NewStack(layout.Horizontal, children...)
}

// VStack creates a vertical stack.
func VStack(children ...View) *Stack {
	return NewStack(layout.Vertical, children...)
}

// Constraints overrides the derived constraints. len(cs) must equal the
// number of children.
func (s *Stack) Constraints(cs ...layout.Constraint) *Stack {
	if len(cs) != len(s.children) {
		panic("view: constraint count does not match child count")
	}
	s.constraints = cs
	return s
}

func deriveConstraint(direction layout.Direction, child View) layout.Constraint {
	if sz, ok := child.(Sizer); ok {
		if w, h, ok := sz.PreferredSize(); ok {
			if direction == layout.Horizontal {
				return layout.Length(w)
			}
			return layout.Length(h)
		}
	}
	return layout.Min(0)
}

// Render implements View.
func (s *Stack) Render(f *Frame, area layout.Rect, focused bool) {
	regions := layout.Split(area, s.direction, s.constraints)
	for i, child := range s.children {
		region := regions[i]
		// Clamp the cross axis to the child's preference so a short
		// view does not stretch across the whole region.
		if sz, ok := child.(Sizer); ok {
			if w, h, ok := sz.PreferredSize(); ok {
				switch {
				case s.direction == layout.Horizontal && h > 0 && h < region.Height:
					region.Height = h
				case s.direction == layout.Vertical && w > 0 && w < region.Width:
					region.Width = w
				}
			}
		}
		child.Render(f, region, focused)
	}
}
