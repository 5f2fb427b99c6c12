package hook

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/crestui/crest/internal/input/event"
)

// hookFunc is the global a filter script must define:
//
//	function on_key(spec, held) return spec == "ctrl-q" end
//
// spec is the canonical keystroke string, held reports OS key repeat.
const hookFunc = "on_key"

// LuaFilter runs a Lua on_key hook as a key filter.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls so
// the filter can be registered once and shared with script reloads.
type LuaFilter struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewLuaFilter creates a filter with an empty script. Until a script
// defining on_key is loaded, every keystroke passes through.
func NewLuaFilter() *LuaFilter {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Base, table, string, and math are enough for key matching logic.
	// io, os, and debug stay closed.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	return &LuaFilter{state: L}
}

// LoadFile executes a script file in the filter's state, typically to
// define or redefine on_key.
func (f *LuaFilter) LoadFile(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("lua filter: load %s: filter closed", path)
	}
	if err := f.state.DoFile(path); err != nil {
		return fmt.Errorf("lua filter: load %s: %w", path, err)
	}
	return nil
}

// LoadString executes a script source in the filter's state.
func (f *LuaFilter) LoadString(src string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("lua filter: load: filter closed")
	}
	if err := f.state.DoString(src); err != nil {
		return fmt.Errorf("lua filter: load: %w", err)
	}
	return nil
}

// FilterKeyDown calls the script's on_key function. A missing on_key
// global or a closed filter passes the event through. A Lua error is
// returned to the router, which reports it and routes the event normally.
func (f *LuaFilter) FilterKeyDown(ev event.KeyDownEvent) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false, nil
	}

	fn := f.state.GetGlobal(hookFunc)
	if fn == lua.LNil {
		return false, nil
	}

	err := f.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(ev.Keystroke.String()), lua.LBool(ev.IsHeld))
	if err != nil {
		return false, fmt.Errorf("lua filter: %s: %w", hookFunc, err)
	}

	ret := f.state.Get(-1)
	f.state.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. A closed filter passes every keystroke
// through; Close is safe to call more than once.
func (f *LuaFilter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.state.Close()
}
