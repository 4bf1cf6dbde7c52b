// interpreter.go: public API surface of the interpreter.
//
// OVERVIEW
// ========
// Source text flows through four stages:
//
//	text --ReadStr/ReadAll--> Value tree --Eval--> Value --PrStr--> text
//
// The Interpreter owns two well-known frames:
//   - Core: the builtin table (natives registered with RegisterNative) and
//     `eval`.
//   - Global: the top-level user environment, a child of Core. REPL lines,
//     loaded files and `eval` all run here, so `def!` at top level lands in
//     Global. `*ARGV*` lives here too.
//
// NewInterpreter returns the bare core: special forms, `eval` and `*ARGV*`
// only. NewRuntime (runtime.go) adds the standard builtin table and the
// prelude.
//
// ERRORS
// ------
// Every entry point returns (Value, error). Errors are *Error values (see
// errors.go) except ErrEmptyInput, which Rep returns for blank or
// comment-only input. LoadFile renders syntax errors as caret snippets that
// name the file.
package mal

import (
	"io"
	"os"
)

// DefaultMaxDepth bounds nested (non-tail) evaluation.
const DefaultMaxDepth = 10000

// Interpreter evaluates programs. It is single-threaded: share one only
// between goroutines that serialize access themselves.
type Interpreter struct {
	Core   *Env // builtins; parent of Global
	Global *Env // top-level program environment

	// Out receives output from printing builtins (prn, println).
	Out io.Writer

	// MaxDepth limits nested evaluation; deeper evaluation fails with a
	// ResourceError instead of overflowing the Go stack. Zero disables the
	// limit.
	MaxDepth int

	depth  int
	gensym int // counter behind the gensym builtin
}

// NewInterpreter constructs the bare core with `eval` in Core and an empty
// `*ARGV*` in Global.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{Out: os.Stdout, MaxDepth: DefaultMaxDepth}
	ip.Core = NewEnv(nil)
	ip.Global = NewEnv(ip.Core)

	// eval always runs at top level, whatever the caller's scope.
	ip.RegisterNative("eval", func(ip *Interpreter, args []Value) (Value, error) {
		if err := wantArity("eval", args, 1); err != nil {
			return Nil, err
		}
		return ip.Eval(args[0], ip.Global)
	})
	ip.SetArgv(nil)
	return ip
}

// RegisterNative binds a host function in Core.
func (ip *Interpreter) RegisterNative(name string, impl NativeImpl) {
	ip.Core.Define(name, NativeVal(name, impl))
}

// RegisterTable binds every entry of a builtin table in Core.
func (ip *Interpreter) RegisterTable(ns map[string]NativeImpl) {
	for name, impl := range ns {
		ip.RegisterNative(name, impl)
	}
}

// SetArgv binds `*ARGV*` to a List of the given strings.
func (ip *Interpreter) SetArgv(args []string) {
	xs := make([]Value, 0, len(args))
	for _, a := range args {
		xs = append(xs, Str(a))
	}
	ip.Global.Define("*ARGV*", List(xs...))
}

// Rep reads one form from src, evaluates it in Global and returns its
// readable rendering. Blank or comment-only input yields ErrEmptyInput.
func (ip *Interpreter) Rep(src string) (string, error) {
	ast, err := ReadStr(src)
	if err != nil {
		return "", err
	}
	v, err := ip.Eval(ast, ip.Global)
	if err != nil {
		return "", err
	}
	return PrStr(v, true), nil
}

// EvalSource evaluates every top-level form of src in Global, in order, and
// returns the value of the last one (nil when src holds no forms).
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	forms, err := ReadAll(src)
	if err != nil {
		return Nil, err
	}
	out := Nil
	for _, f := range forms {
		if out, err = ip.Eval(f, ip.Global); err != nil {
			return Nil, err
		}
	}
	return out, nil
}

// LoadFile reads path and evaluates its forms with EvalSource. Syntax errors
// are rendered against the file contents.
func (ip *Interpreter) LoadFile(path string) (Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Nil, err
	}
	v, err := ip.EvalSource(string(src))
	if err != nil {
		return Nil, WrapErrorWithName(err, path, string(src))
	}
	return v, nil
}
