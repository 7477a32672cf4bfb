package value

import "math/big"

// Equal implements value equality (the `=` / `<>` primitives and case
// literal matching, spec.md §4.3 "case"). Numbers compare across kind by
// numeric value; everything else compares structurally within its own kind.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Integer, *Rational, *Float:
		return numEqual(a, b)
	case *String:
		bv, ok := b.(*String)
		return ok && av.V == bv.V
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Name == bv.Name
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for k, v := range av.Entries {
			ov, ok := bv.Entries[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Is implements `is?`: identity-or-value-equality for atoms, but reference
// identity for the NULL singleton and other mutable containers (list/map),
// matching the original interpreter's `is`-then-`==` fallback (SPEC_FULL.md
// §C).
func Is(a, b Value) bool {
	switch a.(type) {
	case *List, *Map:
		return a == b
	default:
		return Equal(a, b)
	}
}

// IsAtom reports whether v belongs to the Atom category (spec.md §3.1):
// integer, rational, float or string.
func IsAtom(v Value) bool {
	switch v.(type) {
	case *Integer, *Rational, *Float, *String:
		return true
	default:
		return false
	}
}

// IsNumber reports whether v belongs to the Number category: integer,
// rational or float.
func IsNumber(v Value) bool {
	switch v.(type) {
	case *Integer, *Rational, *Float:
		return true
	default:
		return false
	}
}

// Truthy implements the language's single truthiness rule (spec.md §4.3,
// Glossary "Truthiness"): false iff v is NULL or integer 0.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if IsNull(v) {
		return false
	}
	if i, ok := v.(*Integer); ok {
		return i.V.Sign() != 0
	}
	return true
}

// BoolValue renders a Go bool as the language's 1/0 integer convention used
// by predicates, relationals and logicals.
func BoolValue(b bool) Value {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}

func numEqual(a, b Value) bool {
	if !IsNumber(a) || !IsNumber(b) {
		return false
	}
	c, err := Compare(a, b)
	return err == nil && c == 0
}

// Compare orders two numbers, widening across the integer < rational <
// float tower (spec.md §4.3). It returns an error if either operand is not
// a number.
func Compare(a, b Value) (int, error) {
	if !IsNumber(a) || !IsNumber(b) {
		return 0, &TypeError{Op: "compare", Detail: "operands must be numbers"}
	}
	if isFloatKind(a) || isFloatKind(b) {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	an, ad := asRatioParts(a)
	bn, bd := asRatioParts(b)
	left := new(big.Int).Mul(an, bd)
	right := new(big.Int).Mul(bn, ad)
	return left.Cmp(right), nil
}

func isFloatKind(v Value) bool {
	_, ok := v.(*Float)
	return ok
}

func asRatioParts(v Value) (num, den *big.Int) {
	switch t := v.(type) {
	case *Integer:
		return new(big.Int).Set(t.V), big.NewInt(1)
	case *Rational:
		return new(big.Int).Set(t.Num), new(big.Int).Set(t.Den)
	default:
		return big.NewInt(0), big.NewInt(1)
	}
}

// AsFloat widens any Number to a float64.
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case *Integer:
		f := new(big.Float).SetInt(t.V)
		r, _ := f.Float64()
		return r, true
	case *Rational:
		f := new(big.Rat).SetFrac(t.Num, t.Den)
		r, _ := f.Float64()
		return r, true
	case *Float:
		return t.V, true
	default:
		return 0, false
	}
}

// TypeError reports a kind mismatch encountered inside the value package's
// own numeric helpers (widening, comparison). Primitive-level arity/kind
// errors are reported as runtime.RuntimeFuncError by internal/builtins.
type TypeError struct {
	Op     string
	Detail string
}

func (e *TypeError) Error() string {
	return e.Op + ": " + e.Detail
}
