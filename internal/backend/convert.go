package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/style"
)

// convertStyle converts a style.Style to tcell.Style.
func convertStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		ts = ts.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		ts = ts.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(style.AttrBold) {
		ts = ts.Bold(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		ts = ts.Dim(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		ts = ts.Italic(true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		ts = ts.Underline(true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		ts = ts.Reverse(true)
	}

	return ts
}

// convertEvent converts a tcell event to a normalized Event.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKeyEvent(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent converts a tcell key event, folding the KeyCtrlX
// range back into rune events carrying the Ctrl modifier.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyBacktab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5, tcell.KeyF6,
		tcell.KeyF7, tcell.KeyF8, tcell.KeyF9, tcell.KeyF10, tcell.KeyF11, tcell.KeyF12:
		return key.NewSpecialEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods)
	}

	// Ctrl+letter arrives as a dedicated tcell key code. Fold it back
	// to the letter so dispatch sees Ctrl+'a' through Ctrl+'z'.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods|key.ModCtrl)
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertMod converts tcell modifier flags.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
