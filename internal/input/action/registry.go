package action

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Action is a nominally-typed marker dispatched to listeners registered for
// its concrete type. Actions are value types; a keybinding match builds a
// fresh zero value per dispatch.
type Action any

// ID is the stable, comparable identity of an action type.
type ID = reflect.Type

// Registry errors.
var (
	ErrUnknownAction = errors.New("unknown action name")
	ErrNameConflict  = errors.New("action name already registered to a different type")
)

// IDOf returns the identity of an action instance.
func IDOf(a Action) ID {
	return reflect.TypeOf(a)
}

// Registry assigns stable names to action types and builds instances from
// names. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
	names  map[reflect.Type]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]reflect.Type),
		names:  make(map[reflect.Type]string),
	}
}

// Register binds a name to the concrete type of prototype. Registering the
// same name/type pair again is a no-op; rebinding a name to a different
// type is an error so that binding tables stay unambiguous.
func (r *Registry) Register(name string, prototype Action) error {
	if name == "" {
		return fmt.Errorf("empty action name")
	}
	t := reflect.TypeOf(prototype)
	if t == nil {
		return fmt.Errorf("nil action prototype for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok && existing != t {
		return fmt.Errorf("%w: %q is %v", ErrNameConflict, name, existing)
	}
	r.byName[name] = t
	r.names[t] = name
	return nil
}

// MustRegister is Register for init-time use; it panics on error.
func (r *Registry) MustRegister(name string, prototype Action) {
	if err := r.Register(name, prototype); err != nil {
		panic(err)
	}
}

// Build returns a fresh zero value of the action type registered under
// name.
func (r *Registry) Build(name string) (Action, error) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return reflect.New(t).Elem().Interface(), nil
}

// Name returns the registered name for an action instance.
func (r *Registry) Name(a Action) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[reflect.TypeOf(a)]
	return name, ok
}
