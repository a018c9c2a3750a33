package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/ecarlucci/tessera/internal/clipboard"
	"github.com/ecarlucci/tessera/internal/view"
)

func newTestScreen() *view.Screen {
	b := view.NewBuilder()
	first := b.TaggedCell("first", view.NewInputField().Text("hello"))
	second := b.TaggedCell("second", view.NewInputField())
	return b.Finish(view.VStack(first, second))
}

func newTestEngine() *Engine {
	return New(newTestScreen(), clipboard.NewMemory())
}

func TestGetAndSetText(t *testing.T) {
	e := newTestEngine()
	defer e.Close()

	err := e.DoString(`
		old = tessera.set_text("first", "replaced")
		got = tessera.get_text("first")
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if err := e.DoString(`assert(old == "hello", old)`); err != nil {
		t.Errorf("set_text should return the previous text: %v", err)
	}
	if err := e.DoString(`assert(got == "replaced", got)`); err != nil {
		t.Errorf("get_text after set_text: %v", err)
	}
}

func TestInsertAndClear(t *testing.T) {
	e := newTestEngine()
	defer e.Close()

	if err := e.DoString(`tessera.insert("second", "abc")`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := e.DoString(`assert(tessera.get_text("second") == "abc")`); err != nil {
		t.Errorf("text after insert: %v", err)
	}
	if err := e.DoString(`tessera.clear("second")`); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := e.DoString(`assert(tessera.get_text("second") == "")`); err != nil {
		t.Errorf("text after clear: %v", err)
	}
}

func TestFocusCycling(t *testing.T) {
	s := newTestScreen()
	e := New(s, clipboard.NewMemory())
	defer e.Close()

	first, _ := s.LookupTag("first")
	second, _ := s.LookupTag("second")
	if s.Focused() != first {
		t.Fatal("first field should start focused")
	}
	if err := e.DoString(`tessera.focus_next()`); err != nil {
		t.Fatalf("focus_next: %v", err)
	}
	if s.Focused() != second {
		t.Error("focus_next should move to the second field")
	}
	if err := e.DoString(`tessera.focus_prev()`); err != nil {
		t.Fatalf("focus_prev: %v", err)
	}
	if s.Focused() != first {
		t.Error("focus_prev should move back")
	}
}

func TestUnknownTagRaises(t *testing.T) {
	e := newTestEngine()
	defer e.Close()

	err := e.DoString(`tessera.get_text("missing")`)
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ScriptError", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the tag: %v", err)
	}
}

func TestSandboxHidesUnsafeLibraries(t *testing.T) {
	e := newTestEngine()
	defer e.Close()

	for _, lib := range []string{"io", "os", "debug", "package"} {
		if err := e.DoString(`assert(` + lib + ` == nil)`); err != nil {
			t.Errorf("library %s should not be loaded: %v", lib, err)
		}
	}
	// The safe ones are present.
	if err := e.DoString(`assert(string.upper("a") == "A" and math.max(1, 2) == 2)`); err != nil {
		t.Errorf("safe libraries missing: %v", err)
	}
}

func TestClosedEngine(t *testing.T) {
	e := newTestEngine()
	e.Close()
	e.Close() // second close is a no-op

	if err := e.DoString(`x = 1`); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("err = %v, want ErrEngineClosed", err)
	}
}

func TestCopyAndPaste(t *testing.T) {
	clip := clipboard.NewMemory()
	s := newTestScreen()
	e := New(s, clip)
	defer e.Close()

	// Select "hello" in the first field, copy, paste into the second.
	err := view.InspectTag(s, "first", func(in *view.InputField) {
		in.Content().SelectRightEnd()
	})
	if err != nil {
		t.Fatalf("InspectTag: %v", err)
	}
	if err := e.DoString(`tessera.copy("first")`); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if text, _ := clip.ReadText(); text != "hello" {
		t.Errorf("clipboard = %q, want hello", text)
	}
	if err := e.DoString(`tessera.paste("second")`); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if err := e.DoString(`assert(tessera.get_text("second") == "hello")`); err != nil {
		t.Errorf("text after paste: %v", err)
	}
}

func TestCopyWithoutClipboard(t *testing.T) {
	e := New(newTestScreen(), nil)
	defer e.Close()

	err := e.DoString(`tessera.copy("first")`)
	if err == nil {
		t.Fatal("copy without a clipboard should fail")
	}
}

func TestSessionID(t *testing.T) {
	e := newTestEngine()
	defer e.Close()
	if e.ID() == "" {
		t.Fatal("engine should have a session id")
	}
	if err := e.DoString(`assert(tessera.session_id ~= nil and #tessera.session_id > 0)`); err != nil {
		t.Errorf("session_id should be exposed to Lua: %v", err)
	}
}
