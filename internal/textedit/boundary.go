package textedit

import "fmt"

// codepointLen returns the byte length of the codepoint starting at s[i],
// classified by its leading byte, or 0 when i is one-past-end.
// Panics if i is out of range or does not start a codepoint.
func codepointLen(s string, i int) int {
	if i == len(s) {
		return 0
	}
	if i < 0 || i > len(s) {
		panic(fmt.Sprintf("textedit: offset %d out of range for string of length %d", i, len(s)))
	}
	b := s[i]
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		panic(fmt.Sprintf("textedit: offset %d is not on a codepoint boundary", i))
	}
}

// prevCodepointLen returns the byte length of the codepoint ending just
// before s[i], or 0 when i is 0. Panics if i is out of range or does not
// lie on a codepoint boundary.
func prevCodepointLen(s string, i int) int {
	if i == 0 {
		return 0
	}
	if i < 0 || i > len(s) {
		panic(fmt.Sprintf("textedit: offset %d out of range for string of length %d", i, len(s)))
	}

	// A codepoint is at most 4 bytes: one leading byte followed by up to
	// three continuation bytes (10xxxxxx).
	for n := 1; n <= 4 && n <= i; n++ {
		b := s[i-n]
		if b&0xC0 != 0x80 {
			if codepointLen(s, i-n) != n {
				break
			}
			return n
		}
	}
	panic(fmt.Sprintf("textedit: offset %d is not on a codepoint boundary", i))
}

// NextBoundary returns the offset of the codepoint following the one that
// starts at i. The one-past-end offset is returned unchanged.
//
// Panics if i is not on a codepoint boundary or lies outside [0, len(s)].
func NextBoundary(s string, i int) int {
	return i + codepointLen(s, i)
}

// PrevBoundary returns the offset of the codepoint preceding the one that
// starts at i. Offset 0 is returned unchanged.
//
// Panics if i is not on a codepoint boundary or lies outside [0, len(s)].
func PrevBoundary(s string, i int) int {
	return i - prevCodepointLen(s, i)
}
