package mal

import (
	"fmt"

	"github.com/nukata/goarith"
)

// ---- argument helpers ---------------------------------------------------

func wantArity(name string, args []Value, n int) error {
	if len(args) != n {
		return newError(ApplyError, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func wantMinArity(name string, args []Value, n int) error {
	if len(args) < n {
		return newError(ApplyError, "%s expects at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func typeErr(name, want string, got Value) error {
	return newError(TypeError, "%s: expected %s, got %s", name, want, got.Tag)
}

func wantNumber(name string, v Value) (goarith.Number, error) {
	if !isNumber(v) {
		return nil, typeErr(name, "number", v)
	}
	return goarith.AsNumber(v.Data), nil
}

// fromNumber converts a goarith result back to a Value. Integer results
// that no longer fit in int64 are an error.
func fromNumber(name string, n goarith.Number) (Value, error) {
	switch x := n.(type) {
	case goarith.Int32:
		return Int(int64(x)), nil
	case goarith.Int64:
		return Int(int64(x)), nil
	case goarith.Float64:
		return Float(float64(x)), nil
	}
	return Nil, newError(TypeError, "%s: integer overflow (%s)", name, fmt.Sprint(n))
}

// fold applies op left to right starting from init (or from the first
// argument when init is nil).
func fold(name string, args []Value, init goarith.Number, op func(a, b goarith.Number) goarith.Number) (Value, error) {
	acc := init
	for _, a := range args {
		n, err := wantNumber(name, a)
		if err != nil {
			return Nil, err
		}
		if acc == nil {
			acc = n
			continue
		}
		acc = op(acc, n)
	}
	return fromNumber(name, acc)
}

// compare checks that every adjacent pair satisfies ok(cmp).
func compare(name string, args []Value, ok func(c int) bool) (Value, error) {
	if err := wantMinArity(name, args, 2); err != nil {
		return Nil, err
	}
	for i := 0; i+1 < len(args); i++ {
		a, err := wantNumber(name, args[i])
		if err != nil {
			return Nil, err
		}
		b, err := wantNumber(name, args[i+1])
		if err != nil {
			return Nil, err
		}
		if !ok(a.Cmp(b)) {
			return False, nil
		}
	}
	return True, nil
}

func predicate(name string, test func(Value) bool) NativeImpl {
	return func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity(name, args, 1); err != nil {
			return Nil, err
		}
		return Bool(test(args[0])), nil
	}
}

// ---- core built-ins -----------------------------------------------------

func registerCoreBuiltins(ip *Interpreter) {
	// (+ x ...) -> sum; (+) is 0
	ip.RegisterNative("+", func(_ *Interpreter, args []Value) (Value, error) {
		return fold("+", args, goarith.AsNumber(int64(0)), goarith.Number.Add)
	})

	// (* x ...) -> product; (*) is 1
	ip.RegisterNative("*", func(_ *Interpreter, args []Value) (Value, error) {
		return fold("*", args, goarith.AsNumber(int64(1)), goarith.Number.Mul)
	})

	// (- x) negates; (- x y ...) subtracts left to right
	ip.RegisterNative("-", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("-", args, 1); err != nil {
			return Nil, err
		}
		if len(args) == 1 {
			args = []Value{Int(0), args[0]}
		}
		return fold("-", args, nil, goarith.Number.Sub)
	})

	// (/ x) is 1/x; (/ x y ...) divides left to right. Integer division
	// truncates; any float operand makes the result a float.
	ip.RegisterNative("/", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("/", args, 1); err != nil {
			return Nil, err
		}
		if len(args) == 1 {
			args = []Value{Int(1), args[0]}
		}
		acc := args[0]
		if !isNumber(acc) {
			return Nil, typeErr("/", "number", acc)
		}
		for _, d := range args[1:] {
			a, err := wantNumber("/", acc)
			if err != nil {
				return Nil, err
			}
			b, err := wantNumber("/", d)
			if err != nil {
				return Nil, err
			}
			var q goarith.Number
			if acc.Tag == VTInt && d.Tag == VTInt {
				if d.Data.(int64) == 0 {
					return Nil, newError(ApplyError, "/: division by zero")
				}
				q, _ = a.QuoRem(b)
			} else {
				q = a.RQuo(b)
			}
			if acc, err = fromNumber("/", q); err != nil {
				return Nil, err
			}
		}
		return acc, nil
	})

	ip.RegisterNative("=", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("=", args, 2); err != nil {
			return Nil, err
		}
		for i := 0; i+1 < len(args); i++ {
			if !Equal(args[i], args[i+1]) {
				return False, nil
			}
		}
		return True, nil
	})
	ip.RegisterNative("<", func(_ *Interpreter, args []Value) (Value, error) {
		return compare("<", args, func(c int) bool { return c < 0 })
	})
	ip.RegisterNative("<=", func(_ *Interpreter, args []Value) (Value, error) {
		return compare("<=", args, func(c int) bool { return c <= 0 })
	})
	ip.RegisterNative(">", func(_ *Interpreter, args []Value) (Value, error) {
		return compare(">", args, func(c int) bool { return c > 0 })
	})
	ip.RegisterNative(">=", func(_ *Interpreter, args []Value) (Value, error) {
		return compare(">=", args, func(c int) bool { return c >= 0 })
	})

	// type predicates
	ip.RegisterNative("nil?", predicate("nil?", func(v Value) bool { return v.Tag == VTNil }))
	ip.RegisterNative("true?", predicate("true?", func(v Value) bool { return v.Tag == VTBool && v.Data.(bool) }))
	ip.RegisterNative("false?", predicate("false?", func(v Value) bool { return v.Tag == VTBool && !v.Data.(bool) }))
	ip.RegisterNative("number?", predicate("number?", isNumber))
	ip.RegisterNative("integer?", predicate("integer?", func(v Value) bool { return v.Tag == VTInt }))
	ip.RegisterNative("float?", predicate("float?", func(v Value) bool { return v.Tag == VTFloat }))
	ip.RegisterNative("string?", predicate("string?", func(v Value) bool { return v.Tag == VTStr }))
	ip.RegisterNative("symbol?", predicate("symbol?", func(v Value) bool { return v.Tag == VTSymbol }))
	ip.RegisterNative("keyword?", predicate("keyword?", func(v Value) bool { return v.Tag == VTKeyword }))
	ip.RegisterNative("fn?", predicate("fn?", func(v Value) bool { return v.Tag == VTFn || v.Tag == VTNative }))
	ip.RegisterNative("macro?", predicate("macro?", func(v Value) bool { return v.Tag == VTMacro }))
}
