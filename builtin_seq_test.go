package mal

import "testing"

func Test_Builtin_Constructors(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(list)", "()")
	wantRep(t, ip, "(list 1 (+ 1 1))", "(1 2)")
	wantRep(t, ip, "(vector 1 2)", "[1 2]")
	wantRep(t, ip, "(vec '(1 2))", "[1 2]")
	wantRep(t, ip, "(vec nil)", "[]")
	wantRep(t, ip, "(list? '())", "true")
	wantRep(t, ip, "(list? [])", "false")
	wantRep(t, ip, "(vector? [])", "true")
	wantRep(t, ip, "(sequential? [])", "true")
	wantRep(t, ip, "(sequential? {})", "false")
}

func Test_Builtin_ConsConcat(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(cons 0 [1 2])", "(0 1 2)")
	wantRep(t, ip, "(cons 0 nil)", "(0)")
	wantRep(t, ip, "(concat)", "()")
	wantRep(t, ip, "(concat [1] '(2 3) nil [])", "(1 2 3)")
	wantErrKind(t, ip, "(concat 1)", TypeError, "list or vector")
}

func Test_Builtin_ConsDoesNotShareStorage(t *testing.T) {
	ip := newTestRuntime(t)
	rep(t, ip, "(def! base (list 1 2))")
	rep(t, ip, "(def! a (rest base))")
	rep(t, ip, "(def! b (conj a 9))")
	wantRep(t, ip, "base", "(1 2)")
	wantRep(t, ip, "a", "(2)")
	wantRep(t, ip, "b", "(9 2)")
}

func Test_Builtin_Conj(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(conj '(1 2) 3 4)", "(4 3 1 2)")
	wantRep(t, ip, "(conj [1 2] 3 4)", "[1 2 3 4]")
	wantRep(t, ip, "(conj [])", "[]")
}

func Test_Builtin_Access(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(nth [1 2 3] 0)", "1")
	wantRep(t, ip, "(nth '(1 2 3) 2)", "3")
	wantErrKind(t, ip, "(nth [1 2 3] 3)", IndexError, "out of range")
	wantErrKind(t, ip, "(nth [1] -1)", IndexError, "out of range")
	wantErrKind(t, ip, "(nth [1] 0.5)", TypeError, "integer index")

	wantRep(t, ip, "(first [7 8])", "7")
	wantRep(t, ip, "(first nil)", "nil")
	wantRep(t, ip, "(first ())", "nil")
	wantRep(t, ip, "(rest [7 8])", "(8)")
	wantRep(t, ip, "(rest nil)", "()")
	wantRep(t, ip, "(rest [])", "()")
}

func Test_Builtin_CountEmpty(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(count nil)", "0")
	wantRep(t, ip, "(count [1 2])", "2")
	wantRep(t, ip, "(count {:a 1})", "1")
	wantRep(t, ip, `(count "héllo")`, "5")
	wantRep(t, ip, "(empty? ())", "true")
	wantRep(t, ip, "(empty? [1])", "false")
	wantErrKind(t, ip, "(count 1)", TypeError, "collection")
}

func Test_Builtin_ApplyMap(t *testing.T) {
	ip := newTestRuntime(t)
	wantRep(t, ip, "(apply + [1 2 3])", "6")
	wantRep(t, ip, "(apply + 1 2 '(3 4))", "10")
	wantRep(t, ip, "(apply (fn* (& xs) xs) nil)", "()")
	wantRep(t, ip, "(map inc [1 2 3])", "(2 3 4)")
	wantRep(t, ip, "(map (fn* (x) (* x x)) '(1 2 3))", "(1 4 9)")
	wantRep(t, ip, "(map inc nil)", "()")
	wantErrKind(t, ip, "(map 1 [1])", ApplyError, "not a function")
}
