package mal

import "testing"

func Test_Builtin_Atoms(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! a (atom 1))")
	wantRep(t, ip, "a", "(atom 1)")
	wantRep(t, ip, "(atom? a)", "true")
	wantRep(t, ip, "(atom? 1)", "false")
	wantRep(t, ip, "(deref a)", "1")
	wantRep(t, ip, "@a", "1")
	wantRep(t, ip, "(reset! a 5)", "5")
	wantRep(t, ip, "(swap! a inc)", "6")
	wantRep(t, ip, "(swap! a + 10 4)", "20")
	wantRep(t, ip, "(swap! a (fn* (x y) (* x y)) 2)", "40")
	wantRep(t, ip, "@a", "40")
	wantErrKind(t, ip, "(deref 1)", TypeError, "atom")
	wantErrKind(t, ip, "(swap! a 1)", ApplyError, "not a function")
}

func Test_Builtin_AtomsAreShared(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! counter (atom 0))")
	rep(t, ip, "(def! bump (fn* () (swap! counter inc)))")
	rep(t, ip, "(bump)")
	rep(t, ip, "(bump)")
	wantRep(t, ip, "@counter", "2")
}

func Test_Builtin_SymbolKeyword(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, `(symbol "abc")`, "abc")
	wantRep(t, ip, `(symbol? (symbol "abc"))`, "true")
	wantRep(t, ip, `(keyword "abc")`, ":abc")
	wantRep(t, ip, `(keyword :abc)`, ":abc")
	wantRep(t, ip, `(= (keyword "a") :a)`, "true")
	wantErrKind(t, ip, `(keyword 1)`, TypeError, "string")
}

func Test_Builtin_ThrowArity(t *testing.T) {
	ip := newTestRuntime(t)
	wantErrKind(t, ip, `(throw)`, ApplyError, "throw expects 1")
	wantErrKind(t, ip, `(throw [1 "x"])`, UserError, `[1 "x"]`)
}

func Test_Builtin_Gensym(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(symbol? (gensym))", "true")
	wantRep(t, ip, "(= (gensym) (gensym))", "false")
	wantErrKind(t, ip, "(gensym 1)", ApplyError, "gensym expects 0")
}
