// builtin_misc.go
//
// Builtins surfaced:
//  1. (atom x), (atom? x), (deref a), (reset! a x), (swap! a f args...)
//  2. (symbol s), (keyword s)
//  3. (gensym) -> a fresh symbol G__<n>, unique per interpreter
//  4. (throw x) -> fails with a UserError carrying x
package mal

import "fmt"

func wantAtom(name string, v Value) (*Atom, error) {
	if v.Tag != VTAtom {
		return nil, typeErr(name, "atom", v)
	}
	return v.Data.(*Atom), nil
}

func registerMiscBuiltins(ip *Interpreter) {
	registerAtomBuiltins(ip)

	ip.RegisterNative("symbol", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("symbol", args, 1); err != nil {
			return Nil, err
		}
		if args[0].Tag == VTSymbol {
			return args[0], nil
		}
		s, err := wantString("symbol", args[0])
		if err != nil {
			return Nil, err
		}
		return Symbol(s), nil
	})

	ip.RegisterNative("keyword", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("keyword", args, 1); err != nil {
			return Nil, err
		}
		if args[0].Tag == VTKeyword {
			return args[0], nil
		}
		s, err := wantString("keyword", args[0])
		if err != nil {
			return Nil, err
		}
		return Keyword(s), nil
	})

	ip.RegisterNative("gensym", func(ip *Interpreter, args []Value) (Value, error) {
		if err := wantArity("gensym", args, 0); err != nil {
			return Nil, err
		}
		ip.gensym++
		return Symbol(fmt.Sprintf("G__%d", ip.gensym)), nil
	})

	ip.RegisterNative("throw", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("throw", args, 1); err != nil {
			return Nil, err
		}
		return Nil, Throw(args[0])
	})
}

func registerAtomBuiltins(ip *Interpreter) {
	ip.RegisterNative("atom", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("atom", args, 1); err != nil {
			return Nil, err
		}
		return AtomVal(args[0]), nil
	})
	ip.RegisterNative("atom?", predicate("atom?", func(v Value) bool { return v.Tag == VTAtom }))

	ip.RegisterNative("deref", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("deref", args, 1); err != nil {
			return Nil, err
		}
		a, err := wantAtom("deref", args[0])
		if err != nil {
			return Nil, err
		}
		return a.Val, nil
	})

	ip.RegisterNative("reset!", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("reset!", args, 2); err != nil {
			return Nil, err
		}
		a, err := wantAtom("reset!", args[0])
		if err != nil {
			return Nil, err
		}
		a.Val = args[1]
		return a.Val, nil
	})

	// (swap! a f x ...) sets a to (f @a x ...) and returns the new value.
	ip.RegisterNative("swap!", func(ip *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("swap!", args, 2); err != nil {
			return Nil, err
		}
		a, err := wantAtom("swap!", args[0])
		if err != nil {
			return Nil, err
		}
		callArgs := append([]Value{a.Val}, args[2:]...)
		v, err := ip.Apply(args[1], callArgs)
		if err != nil {
			return Nil, err
		}
		a.Val = v
		return v, nil
	})
}
