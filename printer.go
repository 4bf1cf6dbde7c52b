package mal

import (
	"strconv"
	"strings"
)

/* ---------- value -> text ---------- */

// PrStr renders v. In readable mode strings are quoted and escaped so the
// result reads back as the same value; otherwise string contents are emitted
// verbatim.
func PrStr(v Value, readable bool) string {
	var b strings.Builder
	writeValue(&b, v, readable)
	return b.String()
}

// PrSeq renders xs joined by sep.
func PrSeq(xs []Value, readable bool, sep string) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		writeValue(&b, x, readable)
	}
	return b.String()
}

func writeValue(b *strings.Builder, v Value, readable bool) {
	switch v.Tag {
	case VTNil:
		b.WriteString("nil")
	case VTBool:
		b.WriteString(strconv.FormatBool(v.Data.(bool)))
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTFloat:
		b.WriteString(formatFloat(v.Data.(float64)))
	case VTStr:
		if readable {
			b.WriteString(quoteString(v.Data.(string)))
		} else {
			b.WriteString(v.Data.(string))
		}
	case VTSymbol:
		b.WriteString(v.Data.(string))
	case VTKeyword:
		b.WriteByte(':')
		b.WriteString(v.Data.(string))
	case VTList:
		writeSeq(b, "(", ")", v.Data.([]Value), readable)
	case VTVector:
		writeSeq(b, "[", "]", v.Data.([]Value), readable)
	case VTHashMap:
		m := v.Data.(*HashMap)
		b.WriteByte('{')
		for i := range m.keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, m.keys[i], readable)
			b.WriteByte(' ')
			writeValue(b, m.vals[i], readable)
		}
		b.WriteByte('}')
	case VTFn, VTNative:
		b.WriteString("#<function>")
	case VTMacro:
		b.WriteString("#<macro>")
	case VTAtom:
		b.WriteString("(atom ")
		writeValue(b, v.Data.(*Atom).Val, readable)
		b.WriteByte(')')
	default:
		b.WriteString("#<unknown>")
	}
}

func writeSeq(b *strings.Builder, open, close string, xs []Value, readable bool) {
	b.WriteString(open)
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, x, readable)
	}
	b.WriteString(close)
}

// quoteString escapes backslash, double quote and newline, the three
// escapes the reader understands.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat always keeps a decimal point so a printed float reads back as
// a float and not an integer. NaN and ±Inf print as NaN, +Inf and -Inf,
// which have no literal syntax and read back as symbols.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
