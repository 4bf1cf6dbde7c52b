// types.go: runtime value model.
//
// Every datum the reader produces, the evaluator computes and the printer
// renders is a Value: a discriminant (Tag) plus a Go payload (Data) whose
// concrete type is fixed by the tag:
//
//	VTNil      nil
//	VTBool     bool
//	VTInt      int64
//	VTFloat    float64
//	VTStr      string
//	VTSymbol   string (name)
//	VTKeyword  string (name, without the leading ':')
//	VTList     []Value
//	VTVector   []Value
//	VTHashMap  *HashMap
//	VTFn       *Fn       (user closure)
//	VTMacro    *Fn       (closure applied to unevaluated forms)
//	VTNative   *NativeFn (host function from the builtin table)
//	VTAtom     *Atom     (the only mutable cell)
//
// Values are immutable except Atom. Slices held by lists and vectors are
// never written after construction; builtins always allocate new slices.
package mal

import (
	"fmt"
	"math"

	"github.com/nukata/goarith"
)

// ValueTag enumerates the closed set of runtime kinds.
type ValueTag int

const (
	VTNil ValueTag = iota
	VTBool
	VTInt
	VTFloat
	VTStr
	VTSymbol
	VTKeyword
	VTList
	VTVector
	VTHashMap
	VTFn
	VTMacro
	VTNative
	VTAtom
)

var tagNames = [...]string{
	VTNil:     "nil",
	VTBool:    "boolean",
	VTInt:     "integer",
	VTFloat:   "float",
	VTStr:     "string",
	VTSymbol:  "symbol",
	VTKeyword: "keyword",
	VTList:    "list",
	VTVector:  "vector",
	VTHashMap: "hash-map",
	VTFn:      "function",
	VTMacro:   "macro",
	VTNative:  "native function",
	VTAtom:    "atom",
}

func (t ValueTag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Value is the universal runtime carrier. See the file comment for the
// payload type of each tag.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// String renders the readable form; it is what %v shows in test failures.
func (v Value) String() string { return PrStr(v, true) }

// Singletons.
var (
	Nil   = Value{Tag: VTNil}
	True  = Value{Tag: VTBool, Data: true}
	False = Value{Tag: VTBool, Data: false}
)

func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

func Int(n int64) Value { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value { return Value{Tag: VTStr, Data: s} }
func Symbol(s string) Value { return Value{Tag: VTSymbol, Data: s} }
func Keyword(s string) Value { return Value{Tag: VTKeyword, Data: s} }
func List(xs ...Value) Value { return Value{Tag: VTList, Data: nonNil(xs)} }
func Vector(xs ...Value) Value { return Value{Tag: VTVector, Data: nonNil(xs)} }

func nonNil(xs []Value) []Value {
	if xs == nil {
		return []Value{}
	}
	return xs
}

// Fn is a user-defined closure. Env is shared with every other closure that
// captured the same frame; it is never copied.
type Fn struct {
	Params []string // may contain "&" followed by the rest parameter
	Body   Value
	Env    *Env
}

// FnVal wraps a closure as a callable function.
func FnVal(f *Fn) Value { return Value{Tag: VTFn, Data: f} }

// MacroVal wraps a closure as a macro. The closure itself is not modified, so
// the same *Fn may be bound elsewhere as an ordinary function.
func MacroVal(f *Fn) Value { return Value{Tag: VTMacro, Data: f} }

// fixedArity returns the number of positional parameters and whether the
// closure takes a rest parameter.
func (f *Fn) fixedArity() (n int, variadic bool) {
	for i, p := range f.Params {
		if p == "&" {
			return i, true
		}
	}
	return len(f.Params), false
}

// NativeImpl is the signature of builtin functions. Natives receive already
// evaluated arguments and validate their own arity and types.
type NativeImpl func(ip *Interpreter, args []Value) (Value, error)

// NativeFn is a named host function.
type NativeFn struct {
	Name string
	Impl NativeImpl
}

func NativeVal(name string, impl NativeImpl) Value {
	return Value{Tag: VTNative, Data: &NativeFn{Name: name, Impl: impl}}
}

// Atom is a mutable single-slot reference shared by all holders.
type Atom struct {
	Val Value
}

func AtomVal(v Value) Value { return Value{Tag: VTAtom, Data: &Atom{Val: v}} }

// HashMap maps Values to Values with keys unique under Equal. Iteration
// (Keys/Vals order) is insertion order; equality ignores order.
type HashMap struct {
	keys []Value
	vals []Value
}

// NewHashMap builds a map from an alternating key/value sequence. An odd
// length or a repeated key is a SyntaxError.
func NewHashMap(kvs []Value) (*HashMap, error) {
	if len(kvs)%2 != 0 {
		return nil, newError(SyntaxError, "map literal must contain an even number of forms")
	}
	m := &HashMap{
		keys: make([]Value, 0, len(kvs)/2),
		vals: make([]Value, 0, len(kvs)/2),
	}
	for i := 0; i < len(kvs); i += 2 {
		if m.index(kvs[i]) >= 0 {
			return nil, newError(SyntaxError, "duplicate key: %s", PrStr(kvs[i], true))
		}
		m.keys = append(m.keys, kvs[i])
		m.vals = append(m.vals, kvs[i+1])
	}
	return m, nil
}

// HashMapVal wraps m.
func HashMapVal(m *HashMap) Value { return Value{Tag: VTHashMap, Data: m} }

func (m *HashMap) index(k Value) int {
	for i, x := range m.keys {
		if Equal(x, k) {
			return i
		}
	}
	return -1
}

func (m *HashMap) Len() int { return len(m.keys) }

// Get returns the value bound to k.
func (m *HashMap) Get(k Value) (Value, bool) {
	if i := m.index(k); i >= 0 {
		return m.vals[i], true
	}
	return Nil, false
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *HashMap) Keys() []Value { return append([]Value(nil), m.keys...) }

// Vals returns the values in key insertion order. The slice is a copy.
func (m *HashMap) Vals() []Value { return append([]Value(nil), m.vals...) }

// Assoc returns a new map with the given pairs added or replaced.
func (m *HashMap) Assoc(kvs []Value) *HashMap {
	out := &HashMap{keys: m.Keys(), vals: m.Vals()}
	for i := 0; i+1 < len(kvs); i += 2 {
		if j := out.index(kvs[i]); j >= 0 {
			out.vals[j] = kvs[i+1]
			continue
		}
		out.keys = append(out.keys, kvs[i])
		out.vals = append(out.vals, kvs[i+1])
	}
	return out
}

// Dissoc returns a new map without the given keys.
func (m *HashMap) Dissoc(ks []Value) *HashMap {
	out := &HashMap{}
outer:
	for i, k := range m.keys {
		for _, drop := range ks {
			if Equal(k, drop) {
				continue outer
			}
		}
		out.keys = append(out.keys, k)
		out.vals = append(out.vals, m.vals[i])
	}
	return out
}

// Truthy reports whether v counts as true in a condition: everything except
// nil and false.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// IsSeq reports whether v is a List or a Vector.
func IsSeq(v Value) bool { return v.Tag == VTList || v.Tag == VTVector }

// Seq returns the elements of a List or Vector.
func Seq(v Value) ([]Value, bool) {
	if IsSeq(v) {
		return v.Data.([]Value), true
	}
	return nil, false
}

// IsSymbol reports whether v is the symbol name.
func IsSymbol(v Value, name string) bool {
	return v.Tag == VTSymbol && v.Data.(string) == name
}

func isNumber(v Value) bool { return v.Tag == VTInt || v.Tag == VTFloat }

func isNaN(v Value) bool { return v.Tag == VTFloat && math.IsNaN(v.Data.(float64)) }

// Equal is structural equality. Numbers compare by value across Integer and
// Float (NaN equals nothing, itself included); Lists and Vectors with equal elements are equal; HashMaps are equal
// when they hold the same pairs in any order. Functions, natives and atoms
// compare by identity.
func Equal(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		if isNaN(a) || isNaN(b) {
			return false
		}
		return goarith.AsNumber(a.Data).Cmp(goarith.AsNumber(b.Data)) == 0
	}
	if IsSeq(a) && IsSeq(b) {
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr, VTSymbol, VTKeyword:
		return a.Data.(string) == b.Data.(string)
	case VTHashMap:
		am, bm := a.Data.(*HashMap), b.Data.(*HashMap)
		if am.Len() != bm.Len() {
			return false
		}
		for i, k := range am.keys {
			bv, ok := bm.Get(k)
			if !ok || !Equal(am.vals[i], bv) {
				return false
			}
		}
		return true
	default:
		return a.Data == b.Data
	}
}
