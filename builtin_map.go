package mal

// ---- hash-map built-ins -------------------------------------------------

func wantMap(name string, v Value) (*HashMap, error) {
	if v.Tag != VTHashMap {
		return nil, typeErr(name, "hash-map", v)
	}
	return v.Data.(*HashMap), nil
}

func registerMapBuiltins(ip *Interpreter) {
	// (hash-map k v ...) -> map; odd arguments or repeated keys fail
	ip.RegisterNative("hash-map", func(_ *Interpreter, args []Value) (Value, error) {
		m, err := NewHashMap(args)
		if err != nil {
			return Nil, err
		}
		return HashMapVal(m), nil
	})
	ip.RegisterNative("map?", predicate("map?", func(v Value) bool { return v.Tag == VTHashMap }))

	ip.RegisterNative("assoc", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("assoc", args, 1); err != nil {
			return Nil, err
		}
		m, err := wantMap("assoc", args[0])
		if err != nil {
			return Nil, err
		}
		if len(args[1:])%2 != 0 {
			return Nil, newError(ApplyError, "assoc expects key/value pairs, got %d extra argument(s)", len(args)-1)
		}
		return HashMapVal(m.Assoc(args[1:])), nil
	})

	ip.RegisterNative("dissoc", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantMinArity("dissoc", args, 1); err != nil {
			return Nil, err
		}
		m, err := wantMap("dissoc", args[0])
		if err != nil {
			return Nil, err
		}
		return HashMapVal(m.Dissoc(args[1:])), nil
	})

	// (get m k) -> value or nil; (get nil k) is nil
	ip.RegisterNative("get", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("get", args, 2); err != nil {
			return Nil, err
		}
		if args[0].Tag == VTNil {
			return Nil, nil
		}
		m, err := wantMap("get", args[0])
		if err != nil {
			return Nil, err
		}
		v, _ := m.Get(args[1])
		return v, nil
	})

	ip.RegisterNative("contains?", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("contains?", args, 2); err != nil {
			return Nil, err
		}
		m, err := wantMap("contains?", args[0])
		if err != nil {
			return Nil, err
		}
		_, ok := m.Get(args[1])
		return Bool(ok), nil
	})

	ip.RegisterNative("keys", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("keys", args, 1); err != nil {
			return Nil, err
		}
		m, err := wantMap("keys", args[0])
		if err != nil {
			return Nil, err
		}
		return List(m.Keys()...), nil
	})

	ip.RegisterNative("vals", func(_ *Interpreter, args []Value) (Value, error) {
		if err := wantArity("vals", args, 1); err != nil {
			return Nil, err
		}
		m, err := wantMap("vals", args[0])
		if err != nil {
			return Nil, err
		}
		return List(m.Vals()...), nil
	})
}
