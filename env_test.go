package mal

import "testing"

func Test_Env_LookupWalksParents(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", Int(1))
	child := NewEnv(root)
	child.Define("b", Int(2))

	v, ok := child.Lookup("a")
	if !ok {
		t.Fatalf("child should see parent binding")
	}
	wantInt(t, v, 1)
	if _, ok := root.Lookup("b"); ok {
		t.Fatalf("parent must not see child binding")
	}
}

func Test_Env_Shadowing(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Int(1))
	child := NewEnv(root)
	child.Define("x", Int(2))

	v, _ := child.Lookup("x")
	wantInt(t, v, 2)
	v, _ = root.Lookup("x")
	wantInt(t, v, 1)
}

func Test_Env_DefineRedefines(t *testing.T) {
	e := NewEnv(nil)
	e.Define("x", Int(1))
	e.Define("x", Str("one"))
	v, _ := e.Lookup("x")
	wantStr(t, v, "one")
}

func Test_Env_ResolveUnbound(t *testing.T) {
	e := NewEnv(NewEnv(nil))
	_, err := e.Resolve("nope")
	if k, ok := KindOf(err); !ok || k != UnboundSymbol {
		t.Fatalf("want UnboundSymbol, got %v", err)
	}
	if err.Error() != "UnboundSymbol: 'nope' not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func Test_Env_BindPositional(t *testing.T) {
	e := Bind(nil, []string{"a", "b"}, []Value{Int(1), Int(2)})
	a, _ := e.Lookup("a")
	b, _ := e.Lookup("b")
	wantInt(t, a, 1)
	wantInt(t, b, 2)
	if e.Outer() != nil {
		t.Fatalf("want nil outer")
	}
}

func Test_Env_BindRest(t *testing.T) {
	e := Bind(nil, []string{"a", "&", "more"}, []Value{Int(1), Int(2), Int(3)})
	more, ok := e.Lookup("more")
	if !ok || PrStr(more, true) != "(2 3)" {
		t.Fatalf("more = %s", PrStr(more, true))
	}
	if _, ok := e.Lookup("&"); ok {
		t.Fatalf("& must not be bound")
	}

	e = Bind(nil, []string{"&", "xs"}, nil)
	xs, _ := e.Lookup("xs")
	if xs.Tag != VTList || len(xs.Data.([]Value)) != 0 {
		t.Fatalf("want empty list, got %#v", xs)
	}
}

func Test_Env_BindSharesParent(t *testing.T) {
	parent := NewEnv(nil)
	child := Bind(parent, nil, nil)
	parent.Define("late", Int(9))
	v, ok := child.Lookup("late")
	if !ok {
		t.Fatalf("child should see definitions added to parent later")
	}
	wantInt(t, v, 9)
}
