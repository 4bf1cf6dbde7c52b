// builtin_time.go
//
// Builtins surfaced:
//  1. (time-ms) -> milliseconds since the Unix epoch
package mal

import "time"

func registerTimeBuiltins(ip *Interpreter) {
	ip.RegisterNative("time-ms", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("time-ms", args, 0); err != nil {
			return Nil, err
		}
		return Int(time.Now().UnixMilli()), nil
	})
}
