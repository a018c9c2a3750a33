package view

// Handle is a generation-checked reference to a Cell in an Arena. The
// zero Handle never resolves; generations start at 1.
type Handle struct {
	index int
	gen   uint32
}

// IsZero reports whether the handle was never issued by an arena.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	cell *Cell
	gen  uint32
	live bool
}

// Arena owns cells and issues generational handles to them. Releasing a
// slot bumps its generation so stale handles resolve to nothing instead
// of a recycled cell.
type Arena struct {
	slots []slot
	free  []int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add stores a cell and returns its handle.
func (a *Arena) Add(c *Cell) Handle {
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = len(a.slots)
		a.slots = append(a.slots, slot{gen: 1})
	}
	a.slots[idx].cell = c
	a.slots[idx].live = true
	return Handle{index: idx, gen: a.slots[idx].gen}
}

// Resolve returns the cell for a handle, or nil if the handle is stale,
// zero, or out of range.
func (a *Arena) Resolve(h Handle) *Cell {
	if h.gen == 0 || h.index < 0 || h.index >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s.cell
}

// Release frees the cell behind a handle. Releasing a stale or zero
// handle is a no-op. Returns true if a cell was freed.
func (a *Arena) Release(h Handle) bool {
	if a.Resolve(h) == nil {
		return false
	}
	s := &a.slots[h.index]
	s.cell = nil
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)
	return true
}

// Len returns the number of live cells.
func (a *Arena) Len() int {
	return len(a.slots) - len(a.free)
}
