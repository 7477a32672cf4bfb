package builtins

import (
	"math/big"
	"strings"

	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerConversionFunctions(r *Registry) {
	r.Register(Entry{Name: "float", Usage: "(float v)", Category: CategoryConversion, StdEvalOrd: true, Fn: builtinFloat})
	r.Register(Entry{Name: "integer", Usage: "(integer v)", Category: CategoryConversion, StdEvalOrd: true, Fn: builtinInteger})
	r.Register(Entry{Name: "string", Usage: "(string v1 v2 ...)", Category: CategoryConversion, StdEvalOrd: true, Fn: builtinString})
}

func builtinFloat(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(float v)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("float", usage, "requires exactly 1 argument")
	}
	f, ok := value.AsFloat(args[0])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("float", usage, "expected a number, got %s", args[0].Kind())
	}
	return value.NewFloat(f), nil
}

func builtinInteger(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(integer v)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("integer", usage, "requires exactly 1 argument")
	}
	switch v := args[0].(type) {
	case *value.Integer:
		return v, nil
	case *value.Rational:
		q := new(big.Int).Quo(v.Num, v.Den)
		return &value.Integer{V: q}, nil
	case *value.Float:
		return &value.Integer{V: big.NewInt(int64(v.V))}, nil
	case *value.String:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v.V), 10)
		if !ok {
			return nil, runtime.NewRuntimeFuncError("integer", usage, "cannot parse %q as an integer", v.V)
		}
		return &value.Integer{V: n}, nil
	default:
		return nil, runtime.NewRuntimeFuncError("integer", usage, "expected a number or string, got %s", args[0].Kind())
	}
}

// builtinString concatenates the printed form of its arguments. Per the
// Open Questions resolution in SPEC_FULL.md §D, STRING operands keep their
// surrounding quotes in the concatenation (the original's behavior,
// deliberately kept rather than fixed).
func builtinString(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return value.NewString(b.String()), nil
}
