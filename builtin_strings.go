// builtin_strings.go
//
// Builtins surfaced:
//  1. (pr-str x ...)   -> readable forms joined by " "
//  2. (str x ...)      -> display forms concatenated
//  3. (prn x ...)      -> writes pr-str and a newline to Out, returns nil
//  4. (println x ...)  -> writes display forms joined by " " and a newline
//  5. (read-string s)  -> first form of s, nil for blank input
package mal

import (
	"errors"
	"fmt"
)

func wantString(name string, v Value) (string, error) {
	if v.Tag != VTStr {
		return "", typeErr(name, "string", v)
	}
	return v.Data.(string), nil
}

func registerStringBuiltins(ip *Interpreter) {
	ip.RegisterNative("pr-str", func(_ *Interpreter, args []Value) (Value, error) {
		return Str(PrSeq(args, true, " ")), nil
	})

	ip.RegisterNative("str", func(_ *Interpreter, args []Value) (Value, error) {
		return Str(PrSeq(args, false, "")), nil
	})

	ip.RegisterNative("prn", func(ip *Interpreter, args []Value) (Value, error) {
		if _, err := fmt.Fprintln(ip.Out, PrSeq(args, true, " ")); err != nil {
			return Nil, newError(ResourceError, "prn: %v", err)
		}
		return Nil, nil
	})

	ip.RegisterNative("println", func(ip *Interpreter, args []Value) (Value, error) {
		if _, err := fmt.Fprintln(ip.Out, PrSeq(args, false, " ")); err != nil {
			return Nil, newError(ResourceError, "println: %v", err)
		}
		return Nil, nil
	})

	ip.RegisterNative("read-string", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("read-string", args, 1); err != nil {
			return Nil, err
		}
		s, err := wantString("read-string", args[0])
		if err != nil {
			return Nil, err
		}
		v, err := ReadStr(s)
		if errors.Is(err, ErrEmptyInput) {
			return Nil, nil
		}
		return v, err
	})
}
