// Package textedit implements the single-line text editing model used by
// interactive input views: a UTF-8 buffer with a byte-offset caret and an
// optional selection anchor.
//
// All offsets handled by this package lie on UTF-8 codepoint boundaries.
// The boundary functions NextBoundary and PrevBoundary navigate between
// codepoints without decoding; every edit operation on Content preserves
// the boundary invariant for both the caret and the anchor.
package textedit
