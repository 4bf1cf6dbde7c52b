package mal

import "testing"

func Test_Builtin_HashMapBasics(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, `(hash-map :a 1 "b" 2)`, `{:a 1 "b" 2}`)
	wantRep(t, ip, "(map? {})", "true")
	wantRep(t, ip, "(map? [])", "false")
	wantErrKind(t, ip, "(hash-map :a)", SyntaxError, "even")
	wantErrKind(t, ip, "(hash-map :a 1 :a 2)", SyntaxError, "duplicate")
}

func Test_Builtin_HashMapAccess(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! m {:a 1 :b 2})")
	wantRep(t, ip, "(get m :a)", "1")
	wantRep(t, ip, "(get m :zz)", "nil")
	wantRep(t, ip, "(get nil :a)", "nil")
	wantRep(t, ip, "(contains? m :b)", "true")
	wantRep(t, ip, "(contains? m :c)", "false")
	wantRep(t, ip, "(keys m)", "(:a :b)")
	wantRep(t, ip, "(vals m)", "(1 2)")
	wantErrKind(t, ip, "(get [1] 0)", TypeError, "hash-map")
}

func Test_Builtin_AssocDissoc(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! m {:a 1})")
	wantRep(t, ip, "(assoc m :b 2 :a 10)", "{:a 10 :b 2}")
	wantRep(t, ip, "(dissoc {:a 1 :b 2 :c 3} :a :c)", "{:b 2}")
	wantRep(t, ip, "(dissoc m :missing)", "{:a 1}")
	// originals are untouched
	wantRep(t, ip, "m", "{:a 1}")
	wantErrKind(t, ip, "(assoc m :b)", ApplyError, "key/value pairs")
}

func Test_Builtin_HashMapDeepKeys(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! m (hash-map [1 2] :vec))")
	wantRep(t, ip, "(get m '(1 2))", ":vec")
}
