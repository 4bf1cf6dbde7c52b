package mal

// ---- sequence built-ins -------------------------------------------------

// wantSeqOrNil returns the elements of a List/Vector, or none for nil.
func wantSeqOrNil(name string, v Value) ([]Value, error) {
	if v.Tag == VTNil {
		return nil, nil
	}
	xs, ok := Seq(v)
	if !ok {
		return nil, typeErr(name, "list or vector", v)
	}
	return xs, nil
}

func registerSeqBuiltins(ip *Interpreter) {
	ip.RegisterNative("list", func(_ *Interpreter, args []Value) (Value, error) {
		return List(append([]Value(nil), args...)...), nil
	})
	ip.RegisterNative("list?", predicate("list?", func(v Value) bool { return v.Tag == VTList }))

	ip.RegisterNative("vector", func(_ *Interpreter, args []Value) (Value, error) {
		return Vector(append([]Value(nil), args...)...), nil
	})
	ip.RegisterNative("vector?", predicate("vector?", func(v Value) bool { return v.Tag == VTVector }))
	ip.RegisterNative("sequential?", predicate("sequential?", IsSeq))

	// (vec seq) -> vector with the same elements
	ip.RegisterNative("vec", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("vec", args, 1); err != nil {
			return Nil, err
		}
		xs, err := wantSeqOrNil("vec", args[0])
		if err != nil {
			return Nil, err
		}
		return Vector(append([]Value(nil), xs...)...), nil
	})

	// (cons x seq) -> new list with x in front
	ip.RegisterNative("cons", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("cons", args, 2); err != nil {
			return Nil, err
		}
		xs, err := wantSeqOrNil("cons", args[1])
		if err != nil {
			return Nil, err
		}
		out := make([]Value, 0, len(xs)+1)
		out = append(out, args[0])
		return List(append(out, xs...)...), nil
	})

	// (concat seq ...) -> one list with all elements
	ip.RegisterNative("concat", func(_ *Interpreter, args []Value) (Value, error) {
		var out []Value
		for _, a := range args {
			xs, err := wantSeqOrNil("concat", a)
			if err != nil {
				return Nil, err
			}
			out = append(out, xs...)
		}
		return List(out...), nil
	})

	// (conj list x ...) prepends each x; (conj vector x ...) appends
	ip.RegisterNative("conj", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("conj", args, 1); err != nil {
			return Nil, err
		}
		xs, ok := Seq(args[0])
		if !ok {
			return Nil, typeErr("conj", "list or vector", args[0])
		}
		if args[0].Tag == VTVector {
			out := append(append([]Value(nil), xs...), args[1:]...)
			return Vector(out...), nil
		}
		out := make([]Value, 0, len(xs)+len(args)-1)
		for i := len(args) - 1; i >= 1; i-- {
			out = append(out, args[i])
		}
		return List(append(out, xs...)...), nil
	})

	ip.RegisterNative("nth", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("nth", args, 2); err != nil {
			return Nil, err
		}
		xs, ok := Seq(args[0])
		if !ok {
			return Nil, typeErr("nth", "list or vector", args[0])
		}
		if args[1].Tag != VTInt {
			return Nil, typeErr("nth", "integer index", args[1])
		}
		i := args[1].Data.(int64)
		if i < 0 || i >= int64(len(xs)) {
			return Nil, newError(IndexError, "nth: index %d out of range for length %d", i, len(xs))
		}
		return xs[i], nil
	})

	// (first seq) -> first element, nil for nil or empty
	ip.RegisterNative("first", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("first", args, 1); err != nil {
			return Nil, err
		}
		xs, err := wantSeqOrNil("first", args[0])
		if err != nil || len(xs) == 0 {
			return Nil, err
		}
		return xs[0], nil
	})

	// (rest seq) -> list of all but the first, () for nil or empty
	ip.RegisterNative("rest", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("rest", args, 1); err != nil {
			return Nil, err
		}
		xs, err := wantSeqOrNil("rest", args[0])
		if err != nil {
			return Nil, err
		}
		if len(xs) == 0 {
			return List(), nil
		}
		return List(append([]Value(nil), xs[1:]...)...), nil
	})

	ip.RegisterNative("empty?", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("empty?", args, 1); err != nil {
			return Nil, err
		}
		n, err := count("empty?", args[0])
		if err != nil {
			return Nil, err
		}
		return Bool(n == 0), nil
	})

	ip.RegisterNative("count", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("count", args, 1); err != nil {
			return Nil, err
		}
		n, err := count("count", args[0])
		if err != nil {
			return Nil, err
		}
		return Int(int64(n)), nil
	})

	// (apply f x ... seq) -> (f x ... elements-of-seq)
	ip.RegisterNative("apply", func(ip *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("apply", args, 2); err != nil {
			return Nil, err
		}
		last, err := wantSeqOrNil("apply", args[len(args)-1])
		if err != nil {
			return Nil, err
		}
		callArgs := append(append([]Value(nil), args[1:len(args)-1]...), last...)
		return ip.Apply(args[0], callArgs)
	})

	// (map f seq) -> list of (f x) for each element
	ip.RegisterNative("map", func(ip *Interpreter, args []Value) (Value, error) {
		if err := wantArity("map", args, 2); err != nil {
			return Nil, err
		}
		xs, err := wantSeqOrNil("map", args[1])
		if err != nil {
			return Nil, err
		}
		out := make([]Value, 0, len(xs))
		for _, x := range xs {
			v, err := ip.Apply(args[0], []Value{x})
			if err != nil {
				return Nil, err
			}
			out = append(out, v)
		}
		return List(out...), nil
	})
}

func count(name string, v Value) (int, error) {
	switch v.Tag {
	case VTNil:
		return 0, nil
	case VTList, VTVector:
		return len(v.Data.([]Value)), nil
	case VTHashMap:
		return v.Data.(*HashMap).Len(), nil
	case VTStr:
		return len([]rune(v.Data.(string))), nil
	default:
		return 0, typeErr(name, "collection", v)
	}
}
