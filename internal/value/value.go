// Package value implements the Lyps tagged value model (spec.md §3.1): a
// closed set of concrete Go types all satisfying the Value interface, the
// way the teacher's runtime package represents DWScript values as an
// interface implemented by many concrete kinds rather than a single tagged
// struct.
package value

import (
	"math/big"
)

// Value is the universal type of every Lyps datum.
type Value interface {
	// Kind names the concrete variant, used by type predicates and by the
	// evaluator's dispatch-on-kind contract (spec.md §4.3).
	Kind() string
	// String renders the pretty-printed form (spec.md §6).
	String() string
}

// Kind name constants, used both by Value.Kind() and by the predicate
// primitives in internal/builtins.
const (
	KindInteger   = "INTEGER"
	KindRational  = "RATIONAL"
	KindFloat     = "FLOAT"
	KindString    = "STRING"
	KindSymbol    = "SYMBOL"
	KindList      = "LIST"
	KindMap       = "MAP"
	KindFunction  = "FUNCTION"
	KindMacro     = "MACRO"
	KindPrimitive = "PRIMITIVE"
)

// Null is the one canonical empty list: the language's false/nil value.
// It is a process-wide singleton so identity comparisons (is?) observe it
// correctly, per spec.md §3.1's invariant.
var Null = &List{Elements: nil}

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	V *big.Int
}

func NewInteger(i int64) *Integer { return &Integer{V: big.NewInt(i)} }

func (*Integer) Kind() string      { return KindInteger }
func (i *Integer) String() string  { return i.V.String() }

// Rational is an exact ratio of two integers, always stored normalized:
// gcd(Num, Den) = 1 and Den > 0 (spec.md §3.1).
type Rational struct {
	Num *big.Int
	Den *big.Int
}

// NewRational builds a normalized Rational from num/den. den must be
// non-zero; callers (the reader, and the `/` primitive) are responsible for
// rejecting den = 0 before calling this.
func NewRational(num, den *big.Int) Value {
	if den.Sign() == 0 {
		panic("value: rational with zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Div(n, g)
		d.Div(d, g)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return &Integer{V: n}
	}
	return &Rational{Num: n, Den: d}
}

func (*Rational) Kind() string { return KindRational }
func (r *Rational) String() string {
	return r.Num.String() + "/" + r.Den.String()
}

// Float is an IEEE-754 double.
type Float struct {
	V float64
}

func NewFloat(f float64) *Float { return &Float{V: f} }

func (*Float) Kind() string { return KindFloat }

// String is implemented in print.go (float formatting shares logic with the
// pretty-printer's atom rendering).

// String is an immutable sequence of code points. The Go string already is
// one; this wrapper just tags it as a Lyps value.
type String struct {
	V string
}

func NewString(s string) *String { return &String{V: s} }

func (*String) Kind() string { return KindString }

// String renders s surrounded by double quotes (spec.md §6): the
// pretty-printer's contract for strings, and the form §8's round-trip
// property depends on (an unquoted rendering would re-read as a SYMBOL).
// The contents are written as-is, without escapes, since the reader does no
// escape processing either.
// The I/O primitives that want the raw text instead (`write!`, `writeLn!`)
// read s.V directly rather than calling this method.
func (s *String) String() string { return `"` + s.V + `"` }

// Symbol is an interned-by-name identifier, case-folded to upper at read
// time (spec.md §3.1, §4.2). Two symbols are Value-equal exactly when their
// Names are equal; Symbol does not carry any other payload.
type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (*Symbol) Kind() string     { return KindSymbol }
func (s *Symbol) String() string { return s.Name }

// List is a finite ordered sequence of values. The empty list is
// represented by Null; non-empty lists carry their elements directly.
type List struct {
	Elements []Value
}

// NewList builds a List value from elements. An empty or nil slice yields
// Null itself, preserving the NULL singleton invariant.
func NewList(elements ...Value) Value {
	if len(elements) == 0 {
		return Null
	}
	return &List{Elements: elements}
}

func (*List) Kind() string { return KindList }

// IsNull reports whether v is the distinguished empty list.
func IsNull(v Value) bool {
	l, ok := v.(*List)
	return ok && len(l.Elements) == 0
}

// Map is an unordered mapping from string keys to values. Symbol keys are
// coerced to their name at insert/lookup (spec.md §3.1).
type Map struct {
	Entries map[string]Value
}

func NewMap() *Map { return &Map{Entries: make(map[string]Value)} }

func (*Map) Kind() string { return KindMap }

// Function is a user-defined callable: (name, params, body, closure-env).
// Env is an interface{} to avoid an import cycle with internal/runtime;
// the evaluator type-asserts it back to *runtime.Environment.
type Function struct {
	Name   string
	Params []string
	Body   []Value
	Env    interface{}
}

func (*Function) Kind() string     { return KindFunction }
func (f *Function) String() string { return "#<function " + f.Name + ">" }

// Macro is a syntactic form: (name, params, body). Its argument forms are
// passed unevaluated; the result of evaluating its body is itself evaluated
// once more by the caller (spec.md §4.3).
type Macro struct {
	Name   string
	Params []string
	Body   []Value
}

func (*Macro) Kind() string     { return KindMacro }
func (m *Macro) String() string { return "#<macro " + m.Name + ">" }

// PrimitiveFunc is the signature of a built-in implementation. ctx and env
// are interface{} to avoid a dependency cycle between internal/value,
// internal/runtime, internal/builtins and internal/evaluator: builtins
// wraps each of its typed BuiltinFunc implementations in an adapter that
// performs the two type assertions, and the evaluator is the only caller
// that constructs the real ctx/env values. args are the raw argument forms
// when StdEvalOrd is false, or already-evaluated values when true
// (spec.md §4.3).
type PrimitiveFunc func(ctx interface{}, env interface{}, args []Value) (Value, error)

// Primitive is a built-in callable. StdEvalOrd mirrors the evaluator's
// dispatch contract (spec.md §4.3): true means ordinary left-to-right
// argument evaluation before the call; false marks a special form, which
// receives argument forms unevaluated.
type Primitive struct {
	Name       string
	Usage      string
	Fn         PrimitiveFunc
	StdEvalOrd bool
}

func (*Primitive) Kind() string     { return KindPrimitive }
func (p *Primitive) String() string { return "#<primitive " + p.Name + ">" }
