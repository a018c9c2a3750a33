package view

import (
	"strings"

	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/layout"
	"github.com/ecarlucci/tessera/internal/style"
	"github.com/ecarlucci/tessera/internal/textedit"
)

// InputField is a single-line editable text box with a border, caret
// and selection rendering, and a placeholder shown while empty.
type InputField struct {
	content     textedit.Content
	placeholder string
	title       string

	styleFocused     style.Style
	styleUnfocused   style.Style
	stylePlaceholder style.Style
	styleSelection   style.Style
	styleCaret       style.Style
	borderFocused    style.Style
	borderUnfocused  style.Style
}

// NewInputField creates an input field with default styling.
func NewInputField() *InputField {
	return &InputField{
		styleFocused:     style.Default().Fg(style.ColorWhite),
		styleUnfocused:   style.Default().Fg(style.ColorWhite),
		stylePlaceholder: style.Default().Fg(style.ColorDarkGray),
		styleSelection:   style.Default().Bg(style.ColorBlue).Fg(style.ColorBlack),
		styleCaret:       style.Default().Reverse(),
		borderFocused:    style.Default().Fg(style.ColorCyan),
		borderUnfocused:  style.Default().Fg(style.ColorGray),
	}
}

// Placeholder sets the text shown while the field is empty.
func (in *InputField) Placeholder(s string) *InputField {
	in.placeholder = s
	return in
}

// Title sets a label embedded in the top border.
func (in *InputField) Title(s string) *InputField {
	in.title = s
	return in
}

// Text presets the field's text. The caret stays at offset 0.
func (in *InputField) Text(s string) *InputField {
	in.content.SetText(s)
	return in
}

// CaretAtEnd moves the caret past the last character.
func (in *InputField) CaretAtEnd() *InputField {
	in.content.CaretRightEnd()
	return in
}

// StyleFocused sets the text style while focused.
func (in *InputField) StyleFocused(s style.Style) *InputField {
	in.styleFocused = s
	return in
}

// StyleUnfocused sets the text style while unfocused.
func (in *InputField) StyleUnfocused(s style.Style) *InputField {
	in.styleUnfocused = s
	return in
}

// StylePlaceholder sets the style of the placeholder text.
func (in *InputField) StylePlaceholder(s style.Style) *InputField {
	in.stylePlaceholder = s
	return in
}

// StyleCaret sets the style of the caret cell.
func (in *InputField) StyleCaret(s style.Style) *InputField {
	in.styleCaret = s
	return in
}

// StyleSelection sets the style of the selected span.
func (in *InputField) StyleSelection(s style.Style) *InputField {
	in.styleSelection = s
	return in
}

// BorderFocused sets the border style while focused.
func (in *InputField) BorderFocused(s style.Style) *InputField {
	in.borderFocused = s
	return in
}

// BorderUnfocused sets the border style while unfocused.
func (in *InputField) BorderUnfocused(s style.Style) *InputField {
	in.borderUnfocused = s
	return in
}

// Content exposes the underlying editing state.
func (in *InputField) Content() *textedit.Content {
	return &in.content
}

// Copy writes the selected text to the clipboard. A no-op without a
// selection.
func (in *InputField) Copy(clip textedit.Clipboard) error {
	return in.content.Copy(clip)
}

// Paste inserts the clipboard text at the caret.
func (in *InputField) Paste(clip textedit.Clipboard) {
	in.content.Paste(clip)
}

// PreferredSize implements Sizer. The field wants three rows: border,
// text line, border.
func (in *InputField) PreferredSize() (int, int, bool) {
	return 0, 3, true
}

// Render implements View.
func (in *InputField) Render(f *Frame, area layout.Rect, focused bool) {
	border := in.borderUnfocused
	if focused {
		border = in.borderFocused
	}
	inner := f.BoxTitle(area, in.title, border)
	if inner.Empty() {
		return
	}

	text := in.content.Text()
	x, y := inner.X, inner.Y
	if text == "" {
		in.renderPlaceholder(f, inner, focused)
		return
	}
	if !focused {
		f.DrawText(inner, x, y, text, in.styleUnfocused)
		return
	}

	if start, end, ok := in.content.Selection(); ok {
		x += f.DrawText(inner, x, y, text[:start], in.styleFocused)
		x += f.DrawText(inner, x, y, text[start:end], in.styleSelection)
		f.DrawText(inner, x, y, text[end:], in.styleFocused)
		return
	}

	caret := in.content.Caret()
	if in.content.CaretAtEnd() {
		x += f.DrawText(inner, x, y, text, in.styleFocused)
		f.DrawText(inner, x, y, " ", in.styleCaret)
		return
	}
	next := textedit.NextBoundary(text, caret)
	x += f.DrawText(inner, x, y, text[:caret], in.styleFocused)
	x += f.DrawText(inner, x, y, text[caret:next], in.styleCaret)
	f.DrawText(inner, x, y, text[next:], in.styleFocused)
}

func (in *InputField) renderPlaceholder(f *Frame, inner layout.Rect, focused bool) {
	x, y := inner.X, inner.Y
	if !focused {
		f.DrawText(inner, x, y, in.placeholder, in.stylePlaceholder)
		return
	}
	if in.placeholder == "" {
		f.DrawText(inner, x, y, " ", in.styleCaret)
		return
	}
	// Caret sits on the first placeholder character.
	head := in.placeholder[:textedit.NextBoundary(in.placeholder, 0)]
	tail := in.placeholder[len(head):]
	x += f.DrawText(inner, x, y, head, in.styleCaret)
	f.DrawText(inner, x, y, tail, in.stylePlaceholder)
}

// Focusable implements Interactive.
func (in *InputField) Focusable() bool { return true }

// OnFocus implements Interactive.
func (in *InputField) OnFocus() {}

// OnUnfocus implements Interactive.
func (in *InputField) OnUnfocus() {}

// OnKey implements Interactive, mapping key events to edits.
func (in *InputField) OnKey(ev key.Event) {
	mods := ev.Modifiers
	ctrl := mods == key.ModCtrl
	shift := mods == key.ModShift
	ctrlShift := mods == key.ModCtrl|key.ModShift

	switch {
	case ev.Key == key.KeyLeft && mods.IsEmpty(),
		ctrl && ev.Rune == 'b':
		in.content.CaretLeft()
	case ev.Key == key.KeyRight && mods.IsEmpty(),
		ctrl && ev.Rune == 'f':
		in.content.CaretRight()
	case ctrl && (ev.Key == key.KeyLeft || ev.Rune == 'a'):
		in.content.CaretLeftEnd()
	case ctrl && (ev.Key == key.KeyRight || ev.Rune == 'e'):
		in.content.CaretRightEnd()
	case shift && ev.Key == key.KeyLeft:
		in.content.SelectLeft()
	case shift && ev.Key == key.KeyRight:
		in.content.SelectRight()
	case ctrlShift && ev.Key == key.KeyLeft:
		in.content.SelectLeftEnd()
	case ctrlShift && ev.Key == key.KeyRight:
		in.content.SelectRightEnd()
	case ev.Key == key.KeyBackspace && mods.IsEmpty():
		in.content.DeleteBackward()
	case ev.Key == key.KeyDelete && mods.IsEmpty(),
		ctrl && ev.Rune == 'd':
		in.content.DeleteForward()
	case ev.IsChar() && mods.IsEmpty():
		in.content.Insert(ev.Rune)
	case ev.IsChar() && shift:
		// Naive uppercase; real keyboard layouts are not consulted.
		for _, r := range strings.ToUpper(string(ev.Rune)) {
			in.content.Insert(r)
		}
	}
}
