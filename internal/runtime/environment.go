// Package runtime implements the Lyps environment chain (spec.md §3.2) and
// the structured runtime error types (spec.md §7), grounded on the
// teacher's internal/interp/runtime package (Environment, errors.go).
package runtime

import (
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Environment is a frame plus an optional parent frame (spec.md §3.2). Every
// Environment, however deeply nested, carries a direct pointer to the
// global frame so the `…!!` definers can reach it without walking the
// lookup chain.
type Environment struct {
	store  map[string]value.Value
	outer  *Environment
	global *Environment
}

// NewGlobal creates the one distinguished global frame. It is its own
// global pointer.
func NewGlobal() *Environment {
	e := &Environment{store: make(map[string]value.Value)}
	e.global = e
	return e
}

// NewEnclosed creates a new environment enclosed by e. Every evaluation of a
// function body, a `block`, or a macro expansion opens one of these
// (spec.md §3.2 invariant) and discards it on return.
func (e *Environment) NewEnclosed() *Environment {
	return &Environment{
		store:  make(map[string]value.Value),
		outer:  e,
		global: e.global,
	}
}

// Global returns the process-wide global frame reachable from e.
func (e *Environment) Global() *Environment { return e.global }

// Outer returns the parent frame, or nil at the global frame.
func (e *Environment) Outer() *Environment { return e.outer }

// Get walks the chain from innermost outward; the first hit wins
// (spec.md §3.2 "Lookup").
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetLocal looks up name only in e's own frame, without consulting outer
// scopes.
func (e *Environment) GetLocal(name string) (value.Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Define inserts name in e's own frame (spec.md §3.2 "Local definition").
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}

// DefineGlobal inserts name in the global frame unconditionally
// (spec.md §3.2 "Global definition"), regardless of which frame e is.
func (e *Environment) DefineGlobal(name string, v value.Value) {
	e.global.store[name] = v
}

// Set rebinds name in the innermost frame where it already exists; if the
// name is nowhere in the chain, it is defined in the innermost frame
// (spec.md §3.2 "Set").
func (e *Environment) Set(name string, v value.Value) {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			env.store[name] = v
			return
		}
	}
	e.store[name] = v
}

// Undef removes the first occurrence of name found walking outward from e
// (spec.md §3.2 "Undef"). It reports whether a binding was removed.
func (e *Environment) Undef(name string) bool {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			delete(env.store, name)
			return true
		}
	}
	return false
}

// Has reports whether name is bound anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Size returns the number of bindings in e's own frame, not counting outer
// scopes.
func (e *Environment) Size() int { return len(e.store) }

// Range iterates e's own frame. If f returns false, iteration stops.
func (e *Environment) Range(f func(name string, v value.Value) bool) {
	for k, v := range e.store {
		if !f(k, v) {
			return
		}
	}
}

// Reboot clears the global frame in place, preserving every Environment
// that still points at it (closures over the global frame keep working
// across a reboot, which only changes what the frame holds — spec.md §5).
func (e *Environment) Reboot() {
	g := e.global
	g.store = make(map[string]value.Value)
}
