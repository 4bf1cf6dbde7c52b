// eval.go: the evaluator.
//
// Eval runs a trampoline over one (ast, env) pair. Forms in tail position
// (the body of let*, the last form of do, the chosen branch of if, the
// expansion of quasiquote, and the body of an applied closure) reassign the
// pair and continue the loop instead of recursing, so tail calls consume no
// Go stack. Everything else is evaluated by a nested Eval call, and each
// nesting level counts against Interpreter.MaxDepth.
//
// Per iteration:
//  1. Non-lists are evaluated structurally (evalAST).
//  2. The empty list evaluates to itself.
//  3. Macro calls are expanded until the head is no longer a macro.
//  4. Special forms are dispatched on the head symbol.
//  5. Otherwise the list is an application.
package mal

// Eval evaluates ast in env.
func (ip *Interpreter) Eval(ast Value, env *Env) (Value, error) {
	ip.depth++
	defer func() { ip.depth-- }()
	if ip.MaxDepth > 0 && ip.depth > ip.MaxDepth {
		return Nil, newError(ResourceError, "stack overflow: evaluation nested deeper than %d", ip.MaxDepth)
	}

	for {
		if ast.Tag != VTList {
			return ip.evalAST(ast, env)
		}
		if len(ast.Data.([]Value)) == 0 {
			return ast, nil
		}

		expanded, err := ip.macroexpand(ast, env)
		if err != nil {
			return Nil, err
		}
		ast = expanded
		if ast.Tag != VTList {
			return ip.evalAST(ast, env)
		}
		list := ast.Data.([]Value)
		if len(list) == 0 {
			return ast, nil
		}

		if list[0].Tag == VTSymbol {
			switch name := list[0].Data.(string); name {
			case "quote":
				if err := formArity(list, 1, 1); err != nil {
					return Nil, err
				}
				return list[1], nil

			case "quasiquoteexpand":
				if err := formArity(list, 1, 1); err != nil {
					return Nil, err
				}
				return quasiquote(list[1])

			case "quasiquote":
				if err := formArity(list, 1, 1); err != nil {
					return Nil, err
				}
				if ast, err = quasiquote(list[1]); err != nil {
					return Nil, err
				}
				continue

			case "def!", "defmacro!":
				if err := formArity(list, 2, 2); err != nil {
					return Nil, err
				}
				if list[1].Tag != VTSymbol {
					return Nil, newError(TypeError, "%s: binding name must be a symbol, got %s", name, list[1].Tag)
				}
				v, err := ip.Eval(list[2], env)
				if err != nil {
					return Nil, err
				}
				if name == "defmacro!" {
					if v.Tag != VTFn {
						return Nil, newError(TypeError, "defmacro!: value must be a function, got %s", v.Tag)
					}
					v = MacroVal(v.Data.(*Fn))
				}
				return env.Define(list[1].Data.(string), v), nil

			case "let*":
				if err := formArity(list, 1, -1); err != nil {
					return Nil, err
				}
				bindings, ok := Seq(list[1])
				if !ok {
					return Nil, newError(TypeError, "let*: bindings must be a list or vector, got %s", list[1].Tag)
				}
				if len(bindings)%2 != 0 {
					return Nil, newError(ApplyError, "let*: bindings must come in pairs; found %d forms", len(bindings))
				}
				letEnv := NewEnv(env)
				for i := 0; i < len(bindings); i += 2 {
					if bindings[i].Tag != VTSymbol {
						return Nil, newError(TypeError, "let*: binding name must be a symbol, got %s", bindings[i].Tag)
					}
					v, err := ip.Eval(bindings[i+1], letEnv)
					if err != nil {
						return Nil, err
					}
					letEnv.Define(bindings[i].Data.(string), v)
				}
				ast, env = bodyOf(list[2:]), letEnv
				continue

			case "do":
				if len(list) == 1 {
					return Nil, nil
				}
				for _, form := range list[1 : len(list)-1] {
					if _, err := ip.Eval(form, env); err != nil {
						return Nil, err
					}
				}
				ast = list[len(list)-1]
				continue

			case "if":
				if err := formArity(list, 2, 3); err != nil {
					return Nil, err
				}
				cond, err := ip.Eval(list[1], env)
				if err != nil {
					return Nil, err
				}
				switch {
				case Truthy(cond):
					ast = list[2]
				case len(list) > 3:
					ast = list[3]
				default:
					return Nil, nil
				}
				continue

			case "fn*":
				if err := formArity(list, 1, -1); err != nil {
					return Nil, err
				}
				params, err := paramNames(list[1])
				if err != nil {
					return Nil, err
				}
				return FnVal(&Fn{Params: params, Body: bodyOf(list[2:]), Env: env}), nil

			case "macroexpand":
				if err := formArity(list, 1, 1); err != nil {
					return Nil, err
				}
				return ip.macroexpand(list[1], env)
			}
		}

		// Application.
		evald, err := ip.evalSeq(list, env)
		if err != nil {
			return Nil, err
		}
		f, args := evald[0], evald[1:]
		switch f.Tag {
		case VTFn:
			fn := f.Data.(*Fn)
			if err := checkArity(fn, args); err != nil {
				return Nil, err
			}
			ast, env = fn.Body, Bind(fn.Env, fn.Params, args)
			continue
		case VTNative:
			return f.Data.(*NativeFn).Impl(ip, args)
		default:
			return Nil, newError(ApplyError, "%s is not a function", PrStr(f, true))
		}
	}
}

// Apply calls a function value with already evaluated arguments. Closures
// run in a nested Eval (no trampoline across the native boundary).
func (ip *Interpreter) Apply(f Value, args []Value) (Value, error) {
	switch f.Tag {
	case VTFn, VTMacro:
		fn := f.Data.(*Fn)
		if err := checkArity(fn, args); err != nil {
			return Nil, err
		}
		return ip.Eval(fn.Body, Bind(fn.Env, fn.Params, args))
	case VTNative:
		return f.Data.(*NativeFn).Impl(ip, args)
	default:
		return Nil, newError(ApplyError, "%s is not a function", PrStr(f, true))
	}
}

// evalAST evaluates non-list forms and rebuilds vectors and maps.
func (ip *Interpreter) evalAST(ast Value, env *Env) (Value, error) {
	switch ast.Tag {
	case VTSymbol:
		return env.Resolve(ast.Data.(string))
	case VTVector:
		xs, err := ip.evalSeq(ast.Data.([]Value), env)
		if err != nil {
			return Nil, err
		}
		return Vector(xs...), nil
	case VTHashMap:
		m := ast.Data.(*HashMap)
		kvs := make([]Value, 0, 2*m.Len())
		for i := range m.keys {
			k, err := ip.Eval(m.keys[i], env)
			if err != nil {
				return Nil, err
			}
			v, err := ip.Eval(m.vals[i], env)
			if err != nil {
				return Nil, err
			}
			kvs = append(kvs, k, v)
		}
		out, err := NewHashMap(kvs)
		if err != nil {
			return Nil, err
		}
		return HashMapVal(out), nil
	default:
		return ast, nil
	}
}

// evalSeq evaluates xs left to right.
func (ip *Interpreter) evalSeq(xs []Value, env *Env) ([]Value, error) {
	out := make([]Value, len(xs))
	for i, x := range xs {
		v, err := ip.Eval(x, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// macroexpand expands ast while its head symbol names a macro.
func (ip *Interpreter) macroexpand(ast Value, env *Env) (Value, error) {
	for {
		m, ok := macroCall(ast, env)
		if !ok {
			return ast, nil
		}
		out, err := ip.Apply(m, ast.Data.([]Value)[1:])
		if err != nil {
			return Nil, err
		}
		ast = out
	}
}

func macroCall(ast Value, env *Env) (Value, bool) {
	if ast.Tag != VTList {
		return Nil, false
	}
	xs := ast.Data.([]Value)
	if len(xs) == 0 || xs[0].Tag != VTSymbol {
		return Nil, false
	}
	v, ok := env.Lookup(xs[0].Data.(string))
	if !ok || v.Tag != VTMacro {
		return Nil, false
	}
	return v, true
}

func checkArity(fn *Fn, args []Value) error {
	n, variadic := fn.fixedArity()
	switch {
	case variadic && len(args) < n:
		return newError(ApplyError, "wrong number of arguments: expected at least %d, got %d", n, len(args))
	case !variadic && len(args) != n:
		return newError(ApplyError, "wrong number of arguments: expected %d, got %d", n, len(args))
	}
	return nil
}

// formArity checks the argument count of a special form; max < 0 means
// unbounded.
func formArity(list []Value, min, max int) error {
	n := len(list) - 1
	if n < min || (max >= 0 && n > max) {
		name := list[0].Data.(string)
		switch {
		case min == max:
			return newError(ApplyError, "%s expects %d argument(s), got %d", name, min, n)
		case max < 0:
			return newError(ApplyError, "%s expects at least %d argument(s), got %d", name, min, n)
		default:
			return newError(ApplyError, "%s expects %d to %d arguments, got %d", name, min, max, n)
		}
	}
	return nil
}

// bodyOf turns the trailing forms of fn*/let* into one expression.
func bodyOf(forms []Value) Value {
	switch len(forms) {
	case 0:
		return Nil
	case 1:
		return forms[0]
	default:
		return List(append([]Value{Symbol("do")}, forms...)...)
	}
}

// paramNames validates a fn* parameter list: symbols only, and "&" must be
// followed by exactly one symbol.
func paramNames(v Value) ([]string, error) {
	xs, ok := Seq(v)
	if !ok {
		return nil, newError(TypeError, "fn*: parameters must be a list or vector, got %s", v.Tag)
	}
	names := make([]string, 0, len(xs))
	for i, p := range xs {
		if p.Tag != VTSymbol {
			return nil, newError(TypeError, "fn*: parameter must be a symbol, got %s", p.Tag)
		}
		name := p.Data.(string)
		if name == "&" && i != len(xs)-2 {
			return nil, newError(ApplyError, "fn*: exactly one parameter must follow &")
		}
		names = append(names, name)
	}
	return names, nil
}
