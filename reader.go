// reader.go: text to Value trees.
//
// The reader is a recursive-descent parser over the token stream from
// lexer.go with a single position cursor. Delimiters dispatch to sequence
// parsing; reader-macro prefixes are rewritten into two-element lists:
//
//	'form   => (quote form)
//	`form   => (quasiquote form)
//	~form   => (unquote form)
//	~@form  => (splice-unquote form)
//	@form   => (deref form)
//
// Atoms classify in this order: integer, decimal, string, true/false, nil,
// keyword (leading ':'), symbol.
package mal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	intRe   = regexp.MustCompile(`^-?[0-9]+$`)
	floatRe = regexp.MustCompile(`^-?[0-9][0-9.]*$`)
	strRe   = regexp.MustCompile(`^"(?:\\.|[^\\"])*"$`)
)

var readerMacros = map[string]string{
	"'":  "quote",
	"`":  "quasiquote",
	"~":  "unquote",
	"~@": "splice-unquote",
	"@":  "deref",
}

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// ReadStr reads the first form in src. Text holding no form yields
// ErrEmptyInput; anything after the first form is ignored.
func ReadStr(src string) (Value, error) {
	r := newReader(src)
	if r.atEnd() {
		return Nil, ErrEmptyInput
	}
	return r.readForm()
}

// ReadAll reads every top-level form in src.
func ReadAll(src string) ([]Value, error) {
	r := newReader(src)
	var forms []Value
	for !r.atEnd() {
		f, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

type reader struct {
	toks []Token
	pos  int

	// position just past the input, for errors at EOF
	endLine, endCol int
}

func newReader(src string) *reader {
	r := &reader{toks: Tokenize(src), endLine: 1, endCol: 1}
	for _, c := range src {
		if c == '\n' {
			r.endLine++
			r.endCol = 1
		} else {
			r.endCol++
		}
	}
	return r
}

func (r *reader) atEnd() bool { return r.pos >= len(r.toks) }

func (r *reader) peek() (Token, bool) {
	if r.atEnd() {
		return Token{}, false
	}
	return r.toks[r.pos], true
}

func (r *reader) next() (Token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

func syntaxErrAt(t Token, format string, args ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Msg: fmt.Sprintf(format, args...), Line: t.Line, Col: t.Col}
}

func (r *reader) eofErr(msg string) *Error {
	return &Error{Kind: SyntaxError, Msg: msg, Line: r.endLine, Col: r.endCol, Incomplete: true}
}

func (r *reader) readForm() (Value, error) {
	t, ok := r.peek()
	if !ok {
		return Nil, r.eofErr("expected form, got EOF")
	}

	if sym, ok := readerMacros[t.Text]; ok {
		r.next()
		form, err := r.readForm()
		if err != nil {
			return Nil, err
		}
		return List(Symbol(sym), form), nil
	}

	switch t.Text {
	case "(":
		xs, err := r.readSeq()
		if err != nil {
			return Nil, err
		}
		return List(xs...), nil
	case "[":
		xs, err := r.readSeq()
		if err != nil {
			return Nil, err
		}
		return Vector(xs...), nil
	case "{":
		xs, err := r.readSeq()
		if err != nil {
			return Nil, err
		}
		m, err := NewHashMap(xs)
		if err != nil {
			e := err.(*Error)
			e.Line, e.Col = t.Line, t.Col
			return Nil, e
		}
		return HashMapVal(m), nil
	case ")", "]", "}":
		return Nil, syntaxErrAt(t, "unbalanced %s", t.Text)
	case "^":
		return Nil, syntaxErrAt(t, "metadata ('^') is not supported")
	}
	return r.readAtom()
}

// readSeq consumes an opening delimiter and the forms up to its closer.
func (r *reader) readSeq() ([]Value, error) {
	open, _ := r.next()
	want := closers[open.Text]
	xs := []Value{}
	for {
		t, ok := r.peek()
		if !ok {
			e := r.eofErr(fmt.Sprintf("expected '%s', got EOF", want))
			e.Line, e.Col = open.Line, open.Col
			return nil, e
		}
		if t.Text == want {
			r.next()
			return xs, nil
		}
		f, err := r.readForm()
		if err != nil {
			return nil, err
		}
		xs = append(xs, f)
	}
}

func (r *reader) readAtom() (Value, error) {
	t, _ := r.next()
	s := t.Text
	switch {
	case intRe.MatchString(s):
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Nil, syntaxErrAt(t, "integer literal out of range: %s", s)
		}
		return Int(n), nil
	case floatRe.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Nil, syntaxErrAt(t, "malformed number: %s", s)
		}
		return Float(f), nil
	case strRe.MatchString(s):
		return Str(unescape(s[1 : len(s)-1])), nil
	case s[0] == '"':
		e := r.eofErr(`expected '"', got EOF`)
		e.Line, e.Col = t.Line, t.Col
		return Nil, e
	case s == "true":
		return True, nil
	case s == "false":
		return False, nil
	case s == "nil":
		return Nil, nil
	case s[0] == ':':
		return Keyword(s[1:]), nil
	}
	return Symbol(s), nil
}

// unescape resolves \n to a newline; any other escaped character stands for
// itself (so \\ and \" become \ and ").
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			if s[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
