// errors.go: error taxonomy and caret-snippet rendering
//
// What this file does
// -------------------
// Every failure in the reader, evaluator and builtins is an *Error carrying an
// ErrorKind. Errors are returned, never panicked, and unwind to the nearest
// boundary (a REPL line or a file load), which reports them.
//
//	SyntaxError    unbalanced delimiters, malformed literals, bad map literals
//	UnboundSymbol  symbol lookup failure
//	ApplyError     calling a non-function, wrong closure arity, bad special form
//	IndexError     out-of-range sequence access
//	TypeError      wrong argument type for a builtin or special form
//	UserError      a value raised with `throw`; Payload holds the value
//	ResourceError  evaluation nested deeper than Interpreter.MaxDepth, or
//	               failed host I/O (slurp, prn)
//
// ErrEmptyInput is not an *Error: it signals that the reader found only
// whitespace and comments, and the REPL skips it silently.
//
// Syntax errors produced by the reader carry a 1-based Line/Col. For those,
// WrapErrorWithName renders a snippet with a caret under the offending column:
//
//	SYNTAX ERROR in fib.mal at 3:12: expected ')', got EOF
//
//	   2 | (def! fib (fn* (n)
//	   3 |   (if (< n 2) n
//	     |            ^
//
// All other errors are returned unchanged.
package mal

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ErrorKind classifies an *Error.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	UnboundSymbol
	ApplyError
	IndexError
	TypeError
	UserError
	ResourceError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnboundSymbol:
		return "UnboundSymbol"
	case ApplyError:
		return "ApplyError"
	case IndexError:
		return "IndexError"
	case TypeError:
		return "TypeError"
	case UserError:
		return "UserError"
	case ResourceError:
		return "ResourceError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type of the interpreter.
type Error struct {
	Kind    ErrorKind
	Msg     string
	Payload Value // UserError only

	// Line/Col are 1-based source coordinates; zero when unknown.
	Line int
	Col  int

	// Incomplete marks a SyntaxError caused by input ending inside an open
	// form or string. A REPL can read another line and retry.
	Incomplete bool
}

func (e *Error) Error() string {
	if e.Kind == UserError {
		return fmt.Sprintf("%s: %s", e.Kind, PrStr(e.Payload, true))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// ErrEmptyInput is returned by the reader when the text holds no form.
var ErrEmptyInput = errors.New("empty input")

// Throw wraps v as a UserError.
func Throw(v Value) *Error {
	return &Error{Kind: UserError, Msg: PrStr(v, false), Payload: v}
}

// KindOf reports the ErrorKind of err if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsIncomplete reports whether err means "more input is needed".
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Incomplete
}

// WrapErrorWithSource is WrapErrorWithName without a source name.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName returns an error whose message is a caret snippet of src
// when err is a positioned SyntaxError; otherwise err is returned as-is.
func WrapErrorWithName(err error, srcName string, src string) error {
	var e *Error
	if !errors.As(err, &e) || e.Kind != SyntaxError || e.Line == 0 {
		return err
	}
	return &snippetError{
		err:  e,
		text: prettyErrorStringLabeled(src, "SYNTAX ERROR", srcName, e.Line, e.Col, e.Msg),
	}
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// snippetError keeps the original *Error reachable through errors.As.
type snippetError struct {
	err  *Error
	text string
}

func (s *snippetError) Error() string { return s.text }
func (s *snippetError) Unwrap() error { return s.err }

// prettyErrorStringLabeled builds a snippet with a header and a caret. It
// shows at most one previous and one next line. Coordinates are 1-based and
// clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
