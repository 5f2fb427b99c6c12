// Package hook lets host applications intercept key events with small Lua
// scripts before routing. A script declares a global on_key(spec, held)
// function; returning true consumes the keystroke so that no listener or
// keybinding observes it.
package hook
