package builtins

import (
	"math"
	"math/big"

	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerArithmeticFunctions(r *Registry) {
	r.Register(Entry{Name: "+", Usage: "(+ n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinAdd})
	r.Register(Entry{Name: "-", Usage: "(- n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinSub})
	r.Register(Entry{Name: "*", Usage: "(* n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinMul})
	r.Register(Entry{Name: "/", Usage: "(/ n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinDiv})
	r.Register(Entry{Name: "//", Usage: "(// n1 n2)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinIntDiv})
	r.Register(Entry{Name: "mod", Usage: "(mod n1 n2)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinMod})
	r.Register(Entry{Name: "neg", Usage: "(neg n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinNeg})
	r.Register(Entry{Name: "abs", Usage: "(abs n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinAbs})
	r.Register(Entry{Name: "min", Usage: "(min n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinMin})
	r.Register(Entry{Name: "max", Usage: "(max n1 n2 ...)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinMax})
	r.Register(Entry{Name: "trunc", Usage: "(trunc n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinTrunc})
	r.Register(Entry{Name: "log", Usage: "(log n [base])", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinLog})
	r.Register(Entry{Name: "pow", Usage: "(pow base exp)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: builtinPow})
	r.Register(Entry{Name: "sin", Usage: "(sin n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: mathUnary("sin", math.Sin)})
	r.Register(Entry{Name: "cos", Usage: "(cos n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: mathUnary("cos", math.Cos)})
	r.Register(Entry{Name: "tan", Usage: "(tan n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: mathUnary("tan", math.Tan)})
	r.Register(Entry{Name: "exp", Usage: "(exp n)", Category: CategoryArithmetic, StdEvalOrd: true, Fn: mathUnary("exp", math.Exp)})
}

// toFloat64 coerces a number value to a float64 for the transcendental
// primitives, which operate purely in IEEE-754 space regardless of the
// input's exact tag (spec.md §4.4 Arithmetic).
func toFloat64(name, usage string, v value.Value) (float64, error) {
	switch n := v.(type) {
	case *value.Integer:
		f, _ := new(big.Float).SetInt(n.V).Float64()
		return f, nil
	case *value.Rational:
		num, _ := new(big.Float).SetInt(n.Num).Float64()
		den, _ := new(big.Float).SetInt(n.Den).Float64()
		return num / den, nil
	case *value.Float:
		return n.V, nil
	default:
		return 0, runtime.NewRuntimeFuncError(name, usage, "expected a number, got %s", v.Kind())
	}
}

// mathUnary adapts a math.* single-argument float function into a
// primitive, the way the teacher wraps math/big helpers for its numeric
// built-ins.
func mathUnary(name string, fn func(float64) float64) BuiltinFunc {
	usage := "(" + name + " n)"
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, runtime.NewRuntimeFuncError(name, usage, "requires exactly 1 argument")
		}
		f, err := toFloat64(name, usage, args[0])
		if err != nil {
			return nil, err
		}
		return value.NewFloat(fn(f)), nil
	}
}

// builtinLog implements `log` with a default base of 10 (spec.md §4.4):
// (log n) is log base 10, (log n base) is log base `base`.
func builtinLog(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(log n [base])"
	if len(args) != 1 && len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("log", usage, "requires 1 or 2 arguments")
	}
	x, err := toFloat64("log", usage, args[0])
	if err != nil {
		return nil, err
	}
	base := 10.0
	if len(args) == 2 {
		base, err = toFloat64("log", usage, args[1])
		if err != nil {
			return nil, err
		}
	}
	return value.NewFloat(math.Log(x) / math.Log(base)), nil
}

func builtinPow(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(pow base exp)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("pow", usage, "requires exactly 2 arguments")
	}
	base, err := toFloat64("pow", usage, args[0])
	if err != nil {
		return nil, err
	}
	exp, err := toFloat64("pow", usage, args[1])
	if err != nil {
		return nil, err
	}
	return value.NewFloat(math.Pow(base, exp)), nil
}

func wantNumber(name, usage string, v value.Value) error {
	if !value.IsNumber(v) {
		return runtime.NewRuntimeFuncError(name, usage, "expected a number, got %s", v.Kind())
	}
	return nil
}

func builtinAdd(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, runtime.NewRuntimeFuncError("+", "(+ n1 n2 ...)", "requires at least 1 argument")
	}
	acc := args[0]
	if err := wantNumber("+", "(+ n1 n2 ...)", acc); err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		if err := wantNumber("+", "(+ n1 n2 ...)", a); err != nil {
			return nil, err
		}
		var err error
		acc, err = value.Add(acc, a)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinSub(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, runtime.NewRuntimeFuncError("-", "(- n1 n2 ...)", "requires at least 1 argument")
	}
	if err := wantNumber("-", "(- n1 n2 ...)", args[0]); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return value.Neg(args[0])
	}
	acc := args[0]
	for _, a := range args[1:] {
		if err := wantNumber("-", "(- n1 n2 ...)", a); err != nil {
			return nil, err
		}
		var err error
		acc, err = value.Sub(acc, a)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinMul(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, runtime.NewRuntimeFuncError("*", "(* n1 n2 ...)", "requires at least 1 argument")
	}
	acc := args[0]
	if err := wantNumber("*", "(* n1 n2 ...)", acc); err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		if err := wantNumber("*", "(* n1 n2 ...)", a); err != nil {
			return nil, err
		}
		var err error
		acc, err = value.Mul(acc, a)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinDiv(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, runtime.NewRuntimeFuncError("/", "(/ n1 n2 ...)", "requires at least 1 argument")
	}
	if err := wantNumber("/", "(/ n1 n2 ...)", args[0]); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		v, err := value.Div(value.NewInteger(1), args[0])
		if err != nil {
			return nil, runtime.NewRuntimeFuncError("/", "(/ n1 n2 ...)", "%v", err)
		}
		return v, nil
	}
	acc := args[0]
	for _, a := range args[1:] {
		if err := wantNumber("/", "(/ n1 n2 ...)", a); err != nil {
			return nil, err
		}
		var err error
		acc, err = value.Div(acc, a)
		if err != nil {
			return nil, runtime.NewRuntimeFuncError("/", "(/ n1 n2 ...)", "%v", err)
		}
	}
	return acc, nil
}

func builtinIntDiv(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(// n1 n2)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("//", usage, "requires exactly 2 arguments")
	}
	q, _, err := value.IntDivMod(args[0], args[1])
	if err != nil {
		return nil, runtime.NewRuntimeFuncError("//", usage, err.Error())
	}
	return &value.Integer{V: q}, nil
}

func builtinMod(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(mod n1 n2)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("mod", usage, "requires exactly 2 arguments")
	}
	_, rem, err := value.IntDivMod(args[0], args[1])
	if err != nil {
		return nil, runtime.NewRuntimeFuncError("mod", usage, err.Error())
	}
	return &value.Integer{V: rem}, nil
}

func builtinNeg(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(neg n)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("neg", usage, "requires exactly 1 argument")
	}
	if err := wantNumber("neg", usage, args[0]); err != nil {
		return nil, err
	}
	return value.Neg(args[0])
}

func builtinAbs(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(abs n)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("abs", usage, "requires exactly 1 argument")
	}
	if err := wantNumber("abs", usage, args[0]); err != nil {
		return nil, err
	}
	return value.Abs(args[0])
}

func builtinMin(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	return minMax("min", args, -1)
}

func builtinMax(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	return minMax("max", args, 1)
}

func minMax(name string, args []value.Value, want int) (value.Value, error) {
	usage := "(" + name + " n1 n2 ...)"
	if len(args) < 1 {
		return nil, runtime.NewRuntimeFuncError(name, usage, "requires at least 1 argument")
	}
	best := args[0]
	if err := wantNumber(name, usage, best); err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		if err := wantNumber(name, usage, a); err != nil {
			return nil, err
		}
		c, err := value.Compare(a, best)
		if err != nil {
			return nil, err
		}
		if c == want {
			best = a
		}
	}
	return best, nil
}

func builtinTrunc(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(trunc n)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("trunc", usage, "requires exactly 1 argument")
	}
	switch v := args[0].(type) {
	case *value.Integer:
		return v, nil
	case *value.Rational:
		q := new(big.Int).Quo(v.Num, v.Den)
		return &value.Integer{V: q}, nil
	case *value.Float:
		return &value.Integer{V: big.NewInt(int64(v.V))}, nil
	default:
		return nil, runtime.NewRuntimeFuncError("trunc", usage, "expected a number, got %s", args[0].Kind())
	}
}
