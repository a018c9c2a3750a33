package textedit

import (
	"errors"
	"testing"
)

// fakeClipboard implements Clipboard in memory for tests.
type fakeClipboard struct {
	text    string
	readErr error
	failSet bool
}

func (f *fakeClipboard) ReadText() (string, error) {
	return f.text, f.readErr
}

func (f *fakeClipboard) WriteText(s string) error {
	if f.failSet {
		return errors.New("clipboard unavailable")
	}
	f.text = s
	return nil
}

func TestInsertAdvancesCaret(t *testing.T) {
	c := NewContent("")
	for _, r := range "ab界" {
		c.Insert(r)
	}
	if c.Text() != "ab界" {
		t.Errorf("text = %q, want %q", c.Text(), "ab界")
	}
	if c.Caret() != len("ab界") {
		t.Errorf("caret = %d, want %d", c.Caret(), len("ab界"))
	}
}

func TestInsertThenDeleteBackwardRestores(t *testing.T) {
	for _, initial := range []string{"", "abc", "日本語"} {
		c := NewContent(initial)
		c.CaretRightEnd()
		c.Insert('字')
		c.DeleteBackward()
		if c.Text() != initial {
			t.Errorf("text = %q, want %q", c.Text(), initial)
		}
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	c := NewContent("hello")
	c.CaretRightEnd()
	c.SelectLeft()
	c.SelectLeft()
	c.Insert('!')
	if c.Text() != "hel!" {
		t.Errorf("text = %q, want %q", c.Text(), "hel!")
	}
	if c.Selecting() {
		t.Error("selection should be cleared after insert")
	}
	if c.Caret() != 4 {
		t.Errorf("caret = %d, want 4", c.Caret())
	}
}

func TestInsertStringAdvancesByByteLength(t *testing.T) {
	c := NewContent("xy")
	c.CaretRight()
	c.InsertString("日本")
	if c.Text() != "x日本y" {
		t.Errorf("text = %q, want %q", c.Text(), "x日本y")
	}
	if c.Caret() != 1+len("日本") {
		t.Errorf("caret = %d, want %d", c.Caret(), 1+len("日本"))
	}
}

func TestDeleteForwardAtEndIsNoop(t *testing.T) {
	c := NewContent("ab")
	c.CaretRightEnd()
	c.DeleteForward()
	if c.Text() != "ab" || c.Caret() != 2 {
		t.Errorf("text = %q caret = %d, want ab/2", c.Text(), c.Caret())
	}
}

func TestDeleteForwardKeepsCaret(t *testing.T) {
	c := NewContent("a界b")
	c.CaretRight()
	c.DeleteForward()
	if c.Text() != "ab" {
		t.Errorf("text = %q, want ab", c.Text())
	}
	if c.Caret() != 1 {
		t.Errorf("caret = %d, want 1", c.Caret())
	}
}

func TestDeleteOnSelectionClearsAnchor(t *testing.T) {
	for _, forward := range []bool{false, true} {
		c := NewContent("abcdef")
		c.CaretRight()
		c.SelectRight()
		c.SelectRight()
		if !c.Selecting() {
			t.Fatal("expected active selection")
		}
		if forward {
			c.DeleteForward()
		} else {
			c.DeleteBackward()
		}
		if c.Selecting() {
			t.Error("selection should be cleared")
		}
		if c.Text() != "adef" {
			t.Errorf("text = %q, want adef", c.Text())
		}
		if c.Caret() != 1 {
			t.Errorf("caret = %d, want lower selection bound 1", c.Caret())
		}
	}
}

func TestCaretMovementCollapsesThenSteps(t *testing.T) {
	// Collapse-then-step: CaretLeft on a selection collapses to the
	// lower bound and then moves one further codepoint.
	c := NewContent("abcd")
	c.CaretRightEnd()
	c.SelectLeft()
	c.SelectLeft()
	c.CaretLeft()
	if c.Selecting() {
		t.Error("selection should be cleared")
	}
	if c.Caret() != 1 {
		t.Errorf("caret = %d, want 1", c.Caret())
	}

	c = NewContent("abcd")
	c.SelectRight()
	c.SelectRight()
	c.CaretRight()
	if c.Caret() != 3 {
		t.Errorf("caret = %d, want 3", c.Caret())
	}
}

func TestCaretEnds(t *testing.T) {
	c := NewContent("héllo")
	c.CaretRightEnd()
	if !c.CaretAtEnd() {
		t.Error("caret should be at end")
	}
	c.SelectLeft()
	c.CaretLeftEnd()
	if c.Caret() != 0 || c.Selecting() {
		t.Errorf("caret = %d selecting = %v, want 0/false", c.Caret(), c.Selecting())
	}
}

func TestSelectionCollapsesExactlyAtAnchor(t *testing.T) {
	c := NewContent("ab界cd")
	c.CaretRight()
	c.CaretRight()

	anchor := c.Caret()
	c.SelectRight()
	if !c.Selecting() {
		t.Fatal("expected selection after SelectRight")
	}
	c.SelectLeft()
	if c.Selecting() {
		t.Error("selection should collapse when caret returns to anchor")
	}
	if c.Caret() != anchor {
		t.Errorf("caret = %d, want anchor %d", c.Caret(), anchor)
	}

	// Walking past the anchor re-opens the selection on the other side.
	c.SelectLeft()
	if !c.Selecting() {
		t.Error("expected selection on the other side of the anchor")
	}
	start, end, _ := c.Selection()
	if start >= end {
		t.Errorf("selection [%d,%d) should be non-empty", start, end)
	}
}

func TestSelectAtBufferEdgeCollapses(t *testing.T) {
	c := NewContent("ab")
	c.SelectLeft() // caret already at 0
	if c.Selecting() {
		t.Error("SelectLeft at offset 0 should not leave a selection")
	}
	c.CaretRightEnd()
	c.SelectRight()
	if c.Selecting() {
		t.Error("SelectRight at end should not leave a selection")
	}
}

func TestSelectEnds(t *testing.T) {
	c := NewContent("hello")
	c.CaretRightEnd()
	c.SelectLeftEnd()
	start, end, ok := c.Selection()
	if !ok || start != 0 || end != 5 {
		t.Errorf("selection = [%d,%d) ok=%v, want [0,5) true", start, end, ok)
	}

	c.CaretLeftEnd()
	c.SelectLeftEnd()
	if c.Selecting() {
		t.Error("SelectLeftEnd with caret at 0 should collapse")
	}

	c.SelectRightEnd()
	if got := c.SelectedText(); got != "hello" {
		t.Errorf("selected text = %q, want hello", got)
	}
	c.CaretRightEnd()
	c.SelectRightEnd()
	if c.Selecting() {
		t.Error("SelectRightEnd with caret at end should collapse")
	}
}

func TestSetTakeClear(t *testing.T) {
	c := NewContent("old")
	c.CaretRightEnd()
	c.SelectLeft()

	if got := c.SetText("new"); got != "old" {
		t.Errorf("SetText returned %q, want old", got)
	}
	if c.Caret() != 0 || c.Selecting() {
		t.Error("SetText should reset caret and selection")
	}

	if got := c.TakeText(); got != "new" {
		t.Errorf("TakeText returned %q, want new", got)
	}
	if c.Text() != "" {
		t.Errorf("text = %q, want empty", c.Text())
	}

	c.InsertString("junk")
	c.Clear()
	if c.Text() != "" || c.Caret() != 0 {
		t.Error("Clear should empty the buffer and reset the caret")
	}
}

func TestCopyRequiresSelection(t *testing.T) {
	clip := &fakeClipboard{text: "untouched"}
	c := NewContent("abc")
	if err := c.Copy(clip); err != nil {
		t.Errorf("Copy without selection should be a nil-error no-op, got %v", err)
	}
	if clip.text != "untouched" {
		t.Error("Copy without selection should not touch the clipboard")
	}

	c.SelectRight()
	c.SelectRight()
	if err := c.Copy(clip); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if clip.text != "ab" {
		t.Errorf("clipboard = %q, want ab", clip.text)
	}
}

func TestCopySurfacesProviderError(t *testing.T) {
	clip := &fakeClipboard{failSet: true}
	c := NewContent("abc")
	c.SelectRight()
	if err := c.Copy(clip); err == nil {
		t.Error("Copy should surface the provider error")
	}
}

func TestPasteAbsorbsFailure(t *testing.T) {
	c := NewContent("ab")
	c.Paste(&fakeClipboard{readErr: errors.New("no clipboard")})
	if c.Text() != "ab" {
		t.Errorf("failed paste should be a no-op, text = %q", c.Text())
	}

	c.Paste(&fakeClipboard{text: "XY"})
	if c.Text() != "XYab" {
		t.Errorf("text = %q, want XYab", c.Text())
	}
}

func TestPasteReplacesSelection(t *testing.T) {
	c := NewContent("hello")
	c.SelectRight()
	c.SelectRight()
	c.Paste(&fakeClipboard{text: "J"})
	if c.Text() != "Jllo" {
		t.Errorf("text = %q, want Jllo", c.Text())
	}
}

func TestCafeScenario(t *testing.T) {
	// "café" is 5 bytes; é occupies bytes 3 and 4.
	c := NewContent("café")
	c.CaretRightEnd()
	if c.Caret() != 5 {
		t.Fatalf("caret = %d, want 5", c.Caret())
	}
	c.CaretLeft()
	if c.Caret() != 3 {
		t.Errorf("caret = %d, want 3", c.Caret())
	}

	// Deleting at the caret removes é without moving the caret.
	c.DeleteForward()
	if c.Text() != "caf" {
		t.Errorf("text = %q, want caf", c.Text())
	}
	if c.Caret() != 3 {
		t.Errorf("caret = %d, want 3", c.Caret())
	}

	// Deleting before the caret removes f and pulls the caret back.
	c.DeleteBackward()
	if c.Text() != "ca" {
		t.Errorf("text = %q, want ca", c.Text())
	}
	if c.Caret() != 2 {
		t.Errorf("caret = %d, want 2", c.Caret())
	}
}
