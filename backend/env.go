package backend

import (
	"maps"
	"slices"
)

// Env is a frame of name bindings with a link to its parent frame.
//
// Frames form a chain from a function call, through the module, to the root frame of builtins.
// Get walks up the chain, Set only ever binds in the frame it is called on.
type Env struct {
	parent *Env
	vars   map[string]Value
}

// NewRootEnv returns a frame without a parent
func NewRootEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Child returns a new empty frame whose parent is e
func (e *Env) Child() *Env {
	return &Env{parent: e, vars: make(map[string]Value)}
}

func (e *Env) Parent() *Env {
	return e.parent
}

// Get looks name up in e, then in its ancestors
func (e *Env) Get(name string) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in e, shadowing any binding of the same name in its ancestors
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Names returns the names bound in e itself, sorted
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
