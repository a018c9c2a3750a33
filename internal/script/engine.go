// Package script embeds a sandboxed Lua interpreter for driving the
// screen from automation scripts: reading and writing tagged input
// fields and moving focus.
//
// gopher-lua states are not goroutine-safe. The Engine serializes all
// execution behind one mutex; cell access from Lua goes through the
// same per-cell locks the render loop uses.
package script

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/ecarlucci/tessera/internal/textedit"
	"github.com/ecarlucci/tessera/internal/view"
)

// Engine runs Lua automation against a screen.
type Engine struct {
	id     string
	screen *view.Screen
	clip   textedit.Clipboard

	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// New creates an engine bound to screen. Copy and paste go through
// clip; pass nil to disable the clipboard operations. The Lua state
// opens only the safe standard libraries; io, os, debug and package
// stay closed.
func New(screen *view.Screen, clip textedit.Clipboard) *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	e := &Engine{
		id:     uuid.New().String(),
		screen: screen,
		clip:   clip,
		state:  L,
	}
	e.installAPI()
	return e
}

// ID returns the engine's session identifier.
func (e *Engine) ID() string {
	return e.id
}

// openSafeLibraries loads the Lua libraries that cannot touch the
// file system or the host process.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installAPI registers the tessera table.
func (e *Engine) installAPI() {
	tbl := e.state.NewTable()
	e.state.SetGlobal("tessera", tbl)

	e.state.SetField(tbl, "session_id", lua.LString(e.id))
	e.state.SetField(tbl, "get_text", e.state.NewFunction(e.luaGetText))
	e.state.SetField(tbl, "set_text", e.state.NewFunction(e.luaSetText))
	e.state.SetField(tbl, "insert", e.state.NewFunction(e.luaInsert))
	e.state.SetField(tbl, "clear", e.state.NewFunction(e.luaClear))
	e.state.SetField(tbl, "focus_next", e.state.NewFunction(e.luaFocusNext))
	e.state.SetField(tbl, "focus_prev", e.state.NewFunction(e.luaFocusPrev))
	e.state.SetField(tbl, "copy", e.state.NewFunction(e.luaCopy))
	e.state.SetField(tbl, "paste", e.state.NewFunction(e.luaPaste))
}

// DoString executes Lua source.
func (e *Engine) DoString(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.state.DoString(code); err != nil {
		return &ScriptError{Source: "<string>", Err: err}
	}
	return nil
}

// DoFile executes a Lua script from disk.
func (e *Engine) DoFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.state.DoFile(path); err != nil {
		return &ScriptError{Source: path, Err: err}
	}
	return nil
}

// Close releases the Lua state. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

// withField resolves a tagged input field and runs fn on it, raising a
// Lua error when the tag is unknown or names a different view type.
func (e *Engine) withField(L *lua.LState, tag string, fn func(*view.InputField)) {
	err := view.InspectTag(e.screen, tag, fn)
	if err != nil {
		L.RaiseError("tag %q: %s", tag, err.Error())
	}
}

// luaGetText implements tessera.get_text(tag) -> string.
func (e *Engine) luaGetText(L *lua.LState) int {
	tag := L.CheckString(1)
	var text string
	e.withField(L, tag, func(in *view.InputField) {
		text = in.Content().Text()
	})
	L.Push(lua.LString(text))
	return 1
}

// luaSetText implements tessera.set_text(tag, text) -> string. Returns
// the previous text.
func (e *Engine) luaSetText(L *lua.LState) int {
	tag := L.CheckString(1)
	text := L.CheckString(2)
	var old string
	e.withField(L, tag, func(in *view.InputField) {
		old = in.Content().SetText(text)
	})
	L.Push(lua.LString(old))
	return 1
}

// luaInsert implements tessera.insert(tag, text), inserting at the
// caret like a paste.
func (e *Engine) luaInsert(L *lua.LState) int {
	tag := L.CheckString(1)
	text := L.CheckString(2)
	e.withField(L, tag, func(in *view.InputField) {
		in.Content().InsertString(text)
	})
	return 0
}

// luaClear implements tessera.clear(tag).
func (e *Engine) luaClear(L *lua.LState) int {
	tag := L.CheckString(1)
	e.withField(L, tag, func(in *view.InputField) {
		in.Content().Clear()
	})
	return 0
}

// luaCopy implements tessera.copy(tag), copying the field's selection
// to the clipboard. A no-op without a selection.
func (e *Engine) luaCopy(L *lua.LState) int {
	tag := L.CheckString(1)
	if e.clip == nil {
		L.RaiseError("no clipboard configured")
	}
	var copyErr error
	e.withField(L, tag, func(in *view.InputField) {
		copyErr = in.Copy(e.clip)
	})
	if copyErr != nil {
		L.RaiseError("copy: %s", copyErr.Error())
	}
	return 0
}

// luaPaste implements tessera.paste(tag), inserting the clipboard text
// at the field's caret.
func (e *Engine) luaPaste(L *lua.LState) int {
	tag := L.CheckString(1)
	if e.clip == nil {
		L.RaiseError("no clipboard configured")
	}
	e.withField(L, tag, func(in *view.InputField) {
		in.Paste(e.clip)
	})
	return 0
}

// luaFocusNext implements tessera.focus_next().
func (e *Engine) luaFocusNext(L *lua.LState) int {
	e.screen.FocusNext()
	return 0
}

// luaFocusPrev implements tessera.focus_prev().
func (e *Engine) luaFocusPrev(L *lua.LState) int {
	e.screen.FocusPrev()
	return 0
}

// ScriptError wraps a Lua execution failure with its source.
type ScriptError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %s", e.Source, e.Err.Error())
}

// Unwrap returns the underlying Lua error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
