package interp

// Env is the single flat mapping from variable names to values. One Env
// lives for an entire run; every assignment mutates it in place and
// overwrites any prior binding. There is no parent chain and no scoping.
type Env struct {
	bindings map[string]Value
}

func NewEnv() *Env {
	return &Env{bindings: make(map[string]Value)}
}

// Get looks up a variable by name.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Set binds a variable, replacing any existing binding.
func (e *Env) Set(name string, v Value) {
	e.bindings[name] = v
}

// Has reports whether a variable is bound.
func (e *Env) Has(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	return len(e.bindings)
}
