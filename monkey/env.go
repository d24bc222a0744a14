package monkey

import "sort"

// Env is one lexical scope. Closures hold on to the Env they were created
// in, so a scope outlives the call that created it when a closure escapes.
type Env struct {
	parent *Env
	values map[string]Value
}

// NewEnv returns an empty scope enclosed by parent, which may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Get looks name up from the innermost scope outwards.
func (e *Env) Get(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if val, ok := scope.values[name]; ok {
			return val, true
		}
	}
	return Value{}, false
}

// Set binds name in this scope only, shadowing any outer binding.
func (e *Env) Set(name string, val Value) Value {
	e.values[name] = val
	return val
}

func (e *Env) Parent() *Env { return e.parent }

// Names lists the names bound directly in this scope, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
