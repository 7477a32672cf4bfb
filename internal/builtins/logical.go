package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerLogicalFunctions(r *Registry) {
	r.Register(Entry{Name: "and", Usage: "(and b1 b2 ...)", Category: CategoryLogical, StdEvalOrd: true, Fn: builtinAnd})
	r.Register(Entry{Name: "or", Usage: "(or b1 b2 ...)", Category: CategoryLogical, StdEvalOrd: true, Fn: builtinOr})
	r.Register(Entry{Name: "not", Usage: "(not b)", Category: CategoryLogical, StdEvalOrd: true, Fn: builtinNot})
}

func builtinAnd(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, runtime.NewRuntimeFuncError("and", "(and b1 b2 ...)", "requires at least 2 arguments")
	}
	for _, a := range args {
		if !value.Truthy(a) {
			return value.BoolValue(false), nil
		}
	}
	return value.BoolValue(true), nil
}

func builtinOr(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, runtime.NewRuntimeFuncError("or", "(or b1 b2 ...)", "requires at least 2 arguments")
	}
	for _, a := range args {
		if value.Truthy(a) {
			return value.BoolValue(true), nil
		}
	}
	return value.BoolValue(false), nil
}

func builtinNot(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(not b)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("not", usage, "requires exactly 1 argument")
	}
	return value.BoolValue(!value.Truthy(args[0])), nil
}
