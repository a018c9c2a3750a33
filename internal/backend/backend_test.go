package backend

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/style"
)

func TestNullSetCellAndLine(t *testing.T) {
	n := NewNull(10, 2)
	for i, r := range "hi" {
		n.SetCell(i, 0, r, style.Default())
	}
	if got := strings.TrimRight(n.Line(0), " "); got != "hi" {
		t.Errorf("line 0 = %q", got)
	}

	// Out-of-range writes are dropped.
	n.SetCell(-1, 0, 'x', style.Default())
	n.SetCell(0, 5, 'x', style.Default())

	n.Clear()
	if got := strings.TrimRight(n.Line(0), " "); got != "" {
		t.Errorf("after clear, line 0 = %q", got)
	}
}

func TestNullEvents(t *testing.T) {
	n := NewNull(4, 4)
	n.PostKey(key.NewRuneEvent('a', key.ModNone))
	n.PostResize(8, 8)

	ev := <-n.Events()
	if ev.Type != EventKey || ev.Key.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	ev = <-n.Events()
	if ev.Type != EventResize || ev.Width != 8 {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := n.Size(); w != 8 || h != 8 {
		t.Errorf("size = %dx%d, want 8x8", w, h)
	}

	n.Fini()
	if _, ok := <-n.Events(); ok {
		t.Error("events channel should be closed after Fini")
	}
	n.Fini() // second Fini is a no-op
}

func TestConvertKeyEvent(t *testing.T) {
	cases := []struct {
		name string
		in   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), key.NewRuneEvent('X', key.ModShift)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBacktab, key.ModNone)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyLeft, key.ModShift)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), key.NewRuneEvent('b', key.ModCtrl)},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyF5, key.ModNone)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := convertKeyEvent(tc.in)
			if got != tc.want {
				t.Errorf("convertKeyEvent = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestConvertMod(t *testing.T) {
	m := convertMod(tcell.ModShift | tcell.ModCtrl)
	if !m.HasShift() || !m.HasCtrl() || m.HasAlt() {
		t.Errorf("mods = %v", m)
	}
}
