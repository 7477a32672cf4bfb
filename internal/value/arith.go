package value

import "math/big"

// rank orders the numeric tower: integer < rational < float (spec.md §4.3).
func rank(v Value) int {
	switch v.(type) {
	case *Integer:
		return 0
	case *Rational:
		return 1
	case *Float:
		return 2
	default:
		return -1
	}
}

func widestRank(vs ...Value) int {
	r := 0
	for _, v := range vs {
		if k := rank(v); k > r {
			r = k
		}
	}
	return r
}

// Add, Sub, Mul propagate to the widest operand kind, never silently
// truncating an integer-only computation to float (spec.md §3.1 invariant).
func Add(a, b Value) (Value, error) { return binOp(a, b, addInt, addRat, addFloat) }
func Sub(a, b Value) (Value, error) { return binOp(a, b, subInt, subRat, subFloat) }
func Mul(a, b Value) (Value, error) { return binOp(a, b, mulInt, mulRat, mulFloat) }

type intOp func(a, b *big.Int) *big.Int
type ratOp func(an, ad, bn, bd *big.Int) Value
type floatOp func(a, b float64) float64

func binOp(a, b Value, fi intOp, fr ratOp, ff floatOp) (Value, error) {
	if !IsNumber(a) || !IsNumber(b) {
		return nil, &TypeError{Op: "arith", Detail: "operands must be numbers"}
	}
	switch widestRank(a, b) {
	case 0:
		ai := a.(*Integer)
		bi := b.(*Integer)
		return &Integer{V: fi(ai.V, bi.V)}, nil
	case 1:
		an, ad := asRatioParts(a)
		bn, bd := asRatioParts(b)
		return fr(an, ad, bn, bd), nil
	default:
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		return &Float{V: ff(af, bf)}, nil
	}
}

func addInt(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func subInt(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func mulInt(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func addRat(an, ad, bn, bd *big.Int) Value {
	num := new(big.Int).Add(new(big.Int).Mul(an, bd), new(big.Int).Mul(bn, ad))
	den := new(big.Int).Mul(ad, bd)
	return NewRational(num, den)
}

func subRat(an, ad, bn, bd *big.Int) Value {
	num := new(big.Int).Sub(new(big.Int).Mul(an, bd), new(big.Int).Mul(bn, ad))
	den := new(big.Int).Mul(ad, bd)
	return NewRational(num, den)
}

func mulRat(an, ad, bn, bd *big.Int) Value {
	num := new(big.Int).Mul(an, bn)
	den := new(big.Int).Mul(ad, bd)
	return NewRational(num, den)
}

func addFloat(a, b float64) float64 { return a + b }
func subFloat(a, b float64) float64 { return a - b }
func mulFloat(a, b float64) float64 { return a * b }

// Div implements `/`. Division of two integers yields a rational when the
// quotient is not exact (spec.md §4.3); a float operand forces float
// division.
func Div(a, b Value) (Value, error) {
	if !IsNumber(a) || !IsNumber(b) {
		return nil, &TypeError{Op: "/", Detail: "operands must be numbers"}
	}
	if widestRank(a, b) == 2 {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		if bf == 0 {
			return nil, &TypeError{Op: "/", Detail: "division by zero"}
		}
		return &Float{V: af / bf}, nil
	}
	an, ad := asRatioParts(a)
	bn, bd := asRatioParts(b)
	if bn.Sign() == 0 {
		return nil, &TypeError{Op: "/", Detail: "division by zero"}
	}
	num := new(big.Int).Mul(an, bd)
	den := new(big.Int).Mul(ad, bn)
	return NewRational(num, den), nil
}

// IntDivMod implements the `//`/`mod` pair, defined only when both
// arguments are integer-valued (spec.md §4.3). It uses truncated division
// (quotient rounded toward zero) for // and the corresponding remainder,
// which takes the sign of the dividend, for mod, so that
// `(+ (* (// a b) b) (mod a b)) = a` (spec.md §8).
func IntDivMod(a, b Value) (quot, rem *big.Int, err error) {
	ai, aok := a.(*Integer)
	bi, bok := b.(*Integer)
	if !aok || !bok {
		return nil, nil, &TypeError{Op: "//", Detail: "both operands must be integers"}
	}
	if bi.V.Sign() == 0 {
		return nil, nil, &TypeError{Op: "//", Detail: "division by zero"}
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(ai.V, bi.V, r)
	return q, r, nil
}

// Neg negates a number, preserving its kind.
func Neg(a Value) (Value, error) {
	switch t := a.(type) {
	case *Integer:
		return &Integer{V: new(big.Int).Neg(t.V)}, nil
	case *Rational:
		return NewRational(new(big.Int).Neg(t.Num), t.Den), nil
	case *Float:
		return &Float{V: -t.V}, nil
	default:
		return nil, &TypeError{Op: "-", Detail: "operand must be a number"}
	}
}

// Abs returns the absolute value, preserving kind.
func Abs(a Value) (Value, error) {
	switch t := a.(type) {
	case *Integer:
		return &Integer{V: new(big.Int).Abs(t.V)}, nil
	case *Rational:
		return NewRational(new(big.Int).Abs(t.Num), t.Den), nil
	case *Float:
		v := t.V
		if v < 0 {
			v = -v
		}
		return &Float{V: v}, nil
	default:
		return nil, &TypeError{Op: "abs", Detail: "operand must be a number"}
	}
}
