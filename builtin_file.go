// builtin_file.go
//
// Builtins surfaced:
//  1. (slurp path) -> file contents as a string
package mal

import "os"

func registerFileBuiltins(ip *Interpreter) {
	ip.RegisterNative("slurp", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("slurp", args, 1); err != nil {
			return Nil, err
		}
		path, err := wantString("slurp", args[0])
		if err != nil {
			return Nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return Nil, newError(ResourceError, "slurp: %v", err)
		}
		return Str(string(b)), nil
	})
}
