package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerRelationalFunctions(r *Registry) {
	r.Register(Entry{Name: "=", Usage: "(= a1 a2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: eqChain("=", func(eq bool) bool { return eq })})
	r.Register(Entry{Name: "<>", Usage: "(<> a1 a2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: eqChain("<>", func(eq bool) bool { return !eq })})
	r.Register(Entry{Name: "<", Usage: "(< n1 n2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: relChain("<", func(c int) bool { return c < 0 })})
	r.Register(Entry{Name: ">", Usage: "(> n1 n2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: relChain(">", func(c int) bool { return c > 0 })})
	r.Register(Entry{Name: "<=", Usage: "(<= n1 n2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: relChain("<=", func(c int) bool { return c <= 0 })})
	r.Register(Entry{Name: ">=", Usage: "(>= n1 n2 ...)", Category: CategoryRelational, StdEvalOrd: true, Fn: relChain(">=", func(c int) bool { return c >= 0 })})
}

// eqChain implements `=`/`<>` (spec.md §4.4): unlike the ordering
// relationals, equality is defined over every value kind, not just numbers
// (spec.md §8's "`= a a` returns 1 for every value `a`" invariant), so it
// compares with value.Equal's structural rule rather than value.Compare's
// numeric-only one.
func eqChain(name string, ok func(eq bool) bool) BuiltinFunc {
	usage := "(" + name + " a1 a2 ...)"
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, runtime.NewRuntimeFuncError(name, usage, "requires at least 2 arguments")
		}
		for i := 0; i+1 < len(args); i++ {
			if !ok(value.Equal(args[i], args[i+1])) {
				return value.BoolValue(false), nil
			}
		}
		return value.BoolValue(true), nil
	}
}

// relChain implements the spec.md §4.4 ordering relationals: <, >, <=, >=
// require at least 2 numeric arguments and hold pairwise across the whole
// argument list, not just the first pair.
func relChain(name string, ok func(cmp int) bool) BuiltinFunc {
	usage := "(" + name + " n1 n2 ...)"
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, runtime.NewRuntimeFuncError(name, usage, "requires at least 2 arguments")
		}
		for i := 0; i+1 < len(args); i++ {
			c, err := value.Compare(args[i], args[i+1])
			if err != nil {
				return nil, runtime.NewRuntimeFuncError(name, usage, "%v", err)
			}
			if !ok(c) {
				return value.BoolValue(false), nil
			}
		}
		return value.BoolValue(true), nil
	}
}
