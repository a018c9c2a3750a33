package textedit

// Content holds the text of an input view along with its caret and an
// optional selection anchor. Both caret and anchor are byte offsets on
// codepoint boundaries.
//
// The zero value is an empty buffer with the caret at offset 0.
type Content struct {
	text  string
	caret int
	// anchor is the second end of the selection, meaningful only while
	// selecting is true. The selected span is
	// [min(caret,anchor), max(caret,anchor)).
	anchor    int
	selecting bool
}

// NewContent creates a Content holding text, caret at offset 0.
func NewContent(text string) *Content {
	return &Content{text: text}
}

// Text returns the current buffer.
func (c *Content) Text() string {
	return c.text
}

// Caret returns the caret byte offset.
func (c *Content) Caret() int {
	return c.caret
}

// Selecting reports whether a selection is active.
func (c *Content) Selecting() bool {
	return c.selecting
}

// Selection returns the normalized selection span. ok is false when no
// selection is active.
func (c *Content) Selection() (start, end int, ok bool) {
	if !c.Selecting() {
		return 0, 0, false
	}
	return min(c.caret, c.anchor), max(c.caret, c.anchor), true
}

// SelectedText returns the selected substring, or "" without a selection.
func (c *Content) SelectedText() string {
	start, end, ok := c.Selection()
	if !ok {
		return ""
	}
	return c.text[start:end]
}

// CaretAtEnd reports whether the caret sits one past the last byte.
func (c *Content) CaretAtEnd() bool {
	return c.caret == len(c.text)
}

// Insert inserts one character at the caret and advances the caret past
// it. An active selection is deleted first.
func (c *Content) Insert(r rune) {
	if c.Selecting() {
		c.DeleteBackward()
	}
	s := string(r)
	c.text = c.text[:c.caret] + s + c.text[c.caret:]
	c.caret += len(s)
}

// InsertString inserts a string at the caret and advances the caret by
// its byte length. An active selection is deleted first.
func (c *Content) InsertString(s string) {
	if c.Selecting() {
		c.DeleteBackward()
	}
	c.text = c.text[:c.caret] + s + c.text[c.caret:]
	c.caret += len(s)
}

// DeleteBackward deletes the selection if one is active, otherwise the
// codepoint before the caret. The caret ends at the lower bound of the
// deleted span.
func (c *Content) DeleteBackward() {
	if start, end, ok := c.Selection(); ok {
		c.text = c.text[:start] + c.text[end:]
		c.caret = start
		c.selecting = false
		return
	}
	prev := PrevBoundary(c.text, c.caret)
	c.text = c.text[:prev] + c.text[c.caret:]
	c.caret = prev
}

// DeleteForward deletes the selection if one is active, otherwise the
// codepoint at the caret. Without a selection the caret does not move;
// at end-of-text this is a no-op.
func (c *Content) DeleteForward() {
	if start, end, ok := c.Selection(); ok {
		c.text = c.text[:start] + c.text[end:]
		c.caret = start
		c.selecting = false
		return
	}
	next := NextBoundary(c.text, c.caret)
	c.text = c.text[:c.caret] + c.text[next:]
}

// CaretLeft collapses an active selection to its lower bound, then moves
// the caret one codepoint left.
func (c *Content) CaretLeft() {
	if start, _, ok := c.Selection(); ok {
		c.caret = start
		c.selecting = false
	}
	c.caret = PrevBoundary(c.text, c.caret)
}

// CaretRight collapses an active selection to its upper bound, then moves
// the caret one codepoint right.
func (c *Content) CaretRight() {
	if _, end, ok := c.Selection(); ok {
		c.caret = end
		c.selecting = false
	}
	c.caret = NextBoundary(c.text, c.caret)
}

// CaretLeftEnd clears the selection and moves the caret to offset 0.
func (c *Content) CaretLeftEnd() {
	c.selecting = false
	c.caret = 0
}

// CaretRightEnd clears the selection and moves the caret past the last
// byte.
func (c *Content) CaretRightEnd() {
	c.selecting = false
	c.caret = len(c.text)
}

// SelectLeft extends the selection one codepoint left, anchoring it at
// the caret if no selection was active. The selection collapses when the
// caret returns to the anchor.
func (c *Content) SelectLeft() {
	if c.Selecting() {
		c.caret = PrevBoundary(c.text, c.caret)
		if c.caret == c.anchor {
			c.selecting = false
		}
		return
	}
	c.anchor = c.caret
	c.selecting = true
	c.caret = PrevBoundary(c.text, c.caret)
	if c.caret == c.anchor {
		c.selecting = false
	}
}

// SelectRight extends the selection one codepoint right, anchoring it at
// the caret if no selection was active. The selection collapses when the
// caret returns to the anchor.
func (c *Content) SelectRight() {
	if c.Selecting() {
		c.caret = NextBoundary(c.text, c.caret)
		if c.caret == c.anchor {
			c.selecting = false
		}
		return
	}
	c.anchor = c.caret
	c.selecting = true
	c.caret = NextBoundary(c.text, c.caret)
	if c.caret == c.anchor {
		c.selecting = false
	}
}

// SelectLeftEnd selects from the caret to offset 0. No selection results
// when the caret is already there.
func (c *Content) SelectLeftEnd() {
	c.anchor = 0
	c.selecting = c.caret != 0
}

// SelectRightEnd selects from the caret to the end of the buffer. No
// selection results when the caret is already there.
func (c *Content) SelectRightEnd() {
	c.anchor = len(c.text)
	c.selecting = c.caret != len(c.text)
}

// SetText replaces the buffer, returning the previous text. The caret
// resets to offset 0 and any selection is cleared.
func (c *Content) SetText(text string) string {
	old := c.text
	c.text = text
	c.caret = 0
	c.selecting = false
	return old
}

// TakeText removes and returns the buffer, leaving it empty with the
// caret at offset 0.
func (c *Content) TakeText() string {
	return c.SetText("")
}

// Clear empties the buffer and resets the caret.
func (c *Content) Clear() {
	c.SetText("")
}

// Copy writes the selected text to the clipboard. Without an active
// selection it does nothing and returns nil. Clipboard failures are
// returned to the caller.
func (c *Content) Copy(clip Clipboard) error {
	start, end, ok := c.Selection()
	if !ok {
		return nil
	}
	return clip.WriteText(c.text[start:end])
}

// Paste inserts the clipboard text at the caret. Clipboard failures are
// absorbed as a no-op.
func (c *Content) Paste(clip Clipboard) {
	s, err := clip.ReadText()
	if err != nil {
		return
	}
	c.InsertString(s)
}
