package mal

// quasiquote rewrites a template into an expression that rebuilds it at
// evaluation time from cons/concat/vec/quote calls:
//
//	(unquote x)          => x
//	(a (splice-unquote b) c)
//	                     => (cons a' (concat b (cons c' ())))
//	[a b]                => (vec <list expansion of a b>)
//	sym, {map}           => (quote sym), (quote {map})
//	anything else        => itself
func quasiquote(ast Value) (Value, error) {
	switch ast.Tag {
	case VTList:
		xs := ast.Data.([]Value)
		if len(xs) > 0 && IsSymbol(xs[0], "unquote") {
			if len(xs) != 2 {
				return Nil, newError(ApplyError, "unquote expects 1 argument, got %d", len(xs)-1)
			}
			return xs[1], nil
		}
		return quasiquoteSeq(xs)
	case VTVector:
		inner, err := quasiquoteSeq(ast.Data.([]Value))
		if err != nil {
			return Nil, err
		}
		return List(Symbol("vec"), inner), nil
	case VTSymbol, VTHashMap:
		return List(Symbol("quote"), ast), nil
	default:
		return ast, nil
	}
}

// quasiquoteSeq folds the elements right to left onto the empty list.
func quasiquoteSeq(xs []Value) (Value, error) {
	acc := List()
	for i := len(xs) - 1; i >= 0; i-- {
		elt := xs[i]
		if elt.Tag == VTList {
			ys := elt.Data.([]Value)
			if len(ys) > 0 && IsSymbol(ys[0], "splice-unquote") {
				if len(ys) != 2 {
					return Nil, newError(ApplyError, "splice-unquote expects 1 argument, got %d", len(ys)-1)
				}
				acc = List(Symbol("concat"), ys[1], acc)
				continue
			}
		}
		q, err := quasiquote(elt)
		if err != nil {
			return Nil, err
		}
		acc = List(Symbol("cons"), q, acc)
	}
	return acc, nil
}
