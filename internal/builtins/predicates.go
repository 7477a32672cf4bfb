package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerPredicateFunctions(r *Registry) {
	r.Register(Entry{Name: "isAtom?", Usage: "(isAtom? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isAtom?", func(v value.Value) bool { return value.IsAtom(v) })})
	r.Register(Entry{Name: "isNull?", Usage: "(isNull? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isNull?", value.IsNull)})
	r.Register(Entry{Name: "isNumber?", Usage: "(isNumber? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isNumber?", value.IsNumber)})
	r.Register(Entry{Name: "integer?", Usage: "(integer? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("integer?", func(v value.Value) bool { _, ok := v.(*value.Integer); return ok })})
	r.Register(Entry{Name: "rational?", Usage: "(rational? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("rational?", func(v value.Value) bool { _, ok := v.(*value.Rational); return ok })})
	r.Register(Entry{Name: "float?", Usage: "(float? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("float?", func(v value.Value) bool { _, ok := v.(*value.Float); return ok })})
	r.Register(Entry{Name: "isString?", Usage: "(isString? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isString?", func(v value.Value) bool { _, ok := v.(*value.String); return ok })})
	r.Register(Entry{Name: "isSymbol?", Usage: "(isSymbol? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isSymbol?", func(v value.Value) bool { _, ok := v.(*value.Symbol); return ok })})
	r.Register(Entry{Name: "isList?", Usage: "(isList? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isList?", func(v value.Value) bool { _, ok := v.(*value.List); return ok })})
	r.Register(Entry{Name: "isMap?", Usage: "(isMap? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isMap?", func(v value.Value) bool { _, ok := v.(*value.Map); return ok })})
	r.Register(Entry{Name: "isFunction?", Usage: "(isFunction? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("isFunction?", func(v value.Value) bool { _, ok := v.(*value.Function); return ok })})
	r.Register(Entry{Name: "macro?", Usage: "(macro? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("macro?", func(v value.Value) bool { _, ok := v.(*value.Macro); return ok })})
	r.Register(Entry{Name: "primitive?", Usage: "(primitive? v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: kindPredicate("primitive?", func(v value.Value) bool { _, ok := v.(*value.Primitive); return ok })})

	r.Register(Entry{Name: "is?", Usage: "(is? a b)", Category: CategoryPredicate, StdEvalOrd: true, Fn: builtinIs})
	r.Register(Entry{Name: "equal?", Usage: "(equal? a b)", Category: CategoryPredicate, StdEvalOrd: true, Fn: builtinEqual})
	r.Register(Entry{Name: "hasValue?", Usage: "(hasValue? lst v)", Category: CategoryPredicate, StdEvalOrd: true, Fn: builtinHasValue})
}

func kindPredicate(name string, pred func(value.Value) bool) BuiltinFunc {
	usage := "(" + name + " v)"
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, runtime.NewRuntimeFuncError(name, usage, "requires exactly 1 argument")
		}
		return value.BoolValue(pred(args[0])), nil
	}
}

func builtinIs(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(is? a b)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("is?", usage, "requires exactly 2 arguments")
	}
	return value.BoolValue(value.Is(args[0], args[1])), nil
}

func builtinEqual(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(equal? a b)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("equal?", usage, "requires exactly 2 arguments")
	}
	return value.BoolValue(value.Equal(args[0], args[1])), nil
}

// builtinHasValue reports structural (equal?) list membership, per the
// Open Questions resolution in SPEC_FULL.md §D.
func builtinHasValue(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(hasValue? lst v)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("hasValue?", usage, "requires exactly 2 arguments")
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		if value.IsNull(args[0]) {
			return value.BoolValue(false), nil
		}
		return nil, runtime.NewRuntimeFuncError("hasValue?", usage, "expected a list, got %s", args[0].Kind())
	}
	for _, e := range lst.Elements {
		if value.Equal(e, args[1]) {
			return value.BoolValue(true), nil
		}
	}
	return value.BoolValue(false), nil
}
