package mal

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward; Define only ever touches the current frame.
//
// Frames are shared by pointer: every closure created in a frame keeps that
// frame alive and sees later definitions made in it.
type Env struct {
	outer *Env
	table map[string]Value
}

// NewEnv creates a new frame with the given parent (which may be nil).
func NewEnv(outer *Env) *Env { return &Env{outer: outer, table: make(map[string]Value)} }

// Bind creates a child of outer binding params to args positionally. A
// parameter named "&" binds the parameter after it to a List of the remaining
// arguments and ends binding. Arity is checked by the caller; missing
// arguments are simply left unbound.
func Bind(outer *Env, params []string, args []Value) *Env {
	e := NewEnv(outer)
	for i, p := range params {
		if p == "&" {
			if i+1 < len(params) {
				var rest []Value
				if i < len(args) {
					rest = append(rest, args[i:]...)
				}
				e.Define(params[i+1], List(rest...))
			}
			break
		}
		if i >= len(args) {
			break
		}
		e.Define(p, args[i])
	}
	return e
}

// Outer returns the parent frame, or nil for a root frame.
func (e *Env) Outer() *Env { return e.outer }

// Define binds name to v in the current frame, shadowing any outer binding,
// and returns v.
func (e *Env) Define(name string, v Value) Value {
	e.table[name] = v
	return v
}

// Lookup returns the nearest visible binding for name.
func (e *Env) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.outer {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return Nil, false
}

// Resolve is Lookup that fails with UnboundSymbol.
func (e *Env) Resolve(name string) (Value, error) {
	if v, ok := e.Lookup(name); ok {
		return v, nil
	}
	return Nil, newError(UnboundSymbol, "'%s' not found", name)
}
