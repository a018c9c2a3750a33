package textedit

import "testing"

// boundaries returns every codepoint boundary offset of s, including the
// one-past-end offset.
func boundaries(s string) []int {
	offs := []int{}
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}

func TestNextBoundaryWidths(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		want int
	}{
		{"abc", 0, 1},
		{"abc", 2, 3},
		{"abc", 3, 3}, // one-past-end is idempotent
		{"café", 3, 5},
		{"日本語", 0, 3},
		{"日本語", 3, 6},
		{"🙂x", 0, 4},
		{"🙂x", 4, 5},
		{"", 0, 0},
	}

	for _, tt := range tests {
		if got := NextBoundary(tt.s, tt.i); got != tt.want {
			t.Errorf("NextBoundary(%q, %d) = %d, want %d", tt.s, tt.i, got, tt.want)
		}
	}
}

func TestPrevBoundaryWidths(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		want int
	}{
		{"abc", 1, 0},
		{"abc", 3, 2},
		{"abc", 0, 0}, // start is idempotent
		{"café", 5, 3},
		{"日本語", 9, 6},
		{"日本語", 3, 0},
		{"x🙂", 5, 1},
		{"", 0, 0},
	}

	for _, tt := range tests {
		if got := PrevBoundary(tt.s, tt.i); got != tt.want {
			t.Errorf("PrevBoundary(%q, %d) = %d, want %d", tt.s, tt.i, got, tt.want)
		}
	}
}

func TestBoundaryRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "héllo", "日本語テスト", "a🙂b🙂c", "café"} {
		for _, i := range boundaries(s) {
			if i < len(s) {
				if got := PrevBoundary(s, NextBoundary(s, i)); got != i {
					t.Errorf("prev(next(%q, %d)) = %d, want %d", s, i, got, i)
				}
			}
			if i > 0 {
				if got := NextBoundary(s, PrevBoundary(s, i)); got != i {
					t.Errorf("next(prev(%q, %d)) = %d, want %d", s, i, got, i)
				}
			}
		}
	}
}

func TestBoundaryPanicsOffBoundary(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	// Offset 4 is inside é (2 bytes starting at 3).
	mustPanic("NextBoundary mid-codepoint", func() { NextBoundary("café", 4) })
	mustPanic("PrevBoundary mid-codepoint", func() { PrevBoundary("café", 4) })
	mustPanic("NextBoundary out of range", func() { NextBoundary("abc", 7) })
	mustPanic("PrevBoundary negative", func() { PrevBoundary("abc", -1) })
}
