package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/reader"
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerControlFunctions(r *Registry) {
	r.Register(Entry{Name: "lam", Usage: "(lam (params...) body...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinLam})
	r.Register(Entry{Name: "block", Usage: "(block expr...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinBlock})
	r.Register(Entry{Name: "if", Usage: "(if test then else)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinIf})
	r.Register(Entry{Name: "cond", Usage: "(cond (test expr...) ...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinCond})
	r.Register(Entry{Name: "case", Usage: "(case key (match expr...) ...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinCase})
	r.Register(Entry{Name: "while", Usage: "(while test expr...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinWhile})
	r.Register(Entry{Name: "quote", Usage: "(quote expr)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinQuote})
	r.Register(Entry{Name: "backquote", Usage: "(backquote expr)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinBackquote})
	r.Register(Entry{Name: "comma", Usage: "(comma expr)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinCommaError("COMMA")})
	r.Register(Entry{Name: "comma-at", Usage: "(comma-at expr)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinCommaError("COMMA-AT")})
	r.Register(Entry{Name: "eval", Usage: "(eval expr)", Category: CategoryControl, StdEvalOrd: true, Fn: builtinEval})
	r.Register(Entry{Name: "parse", Usage: "(parse str)", Category: CategoryControl, StdEvalOrd: true, Fn: builtinParse})
	r.Register(Entry{Name: "pprint", Usage: "(pprint v)", Category: CategoryControl, StdEvalOrd: true, Fn: builtinPprint})
	r.Register(Entry{Name: "map", Usage: "(map (key expr) ...)", Category: CategoryControl, StdEvalOrd: false, Fn: builtinMapConstructor})
}

func builtinLam(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(lam (params...) body...)"
	if len(args) < 1 {
		return nil, runtime.NewRuntimeFuncError("lam", usage, "requires a parameter list and a body")
	}
	params, err := paramNames(args[0], "lam", usage)
	if err != nil {
		return nil, err
	}
	return &value.Function{Name: "", Params: params, Body: args[1:], Env: env}, nil
}

func builtinBlock(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	inner := env.NewEnclosed()
	var result value.Value = value.Null
	for _, form := range args {
		v, err := ctx.Eval(inner, form)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func builtinIf(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(if test then else)"
	if len(args) != 2 && len(args) != 3 {
		return nil, runtime.NewRuntimeFuncError("if", usage, "requires 2 or 3 arguments")
	}
	test, err := ctx.Eval(env, args[0])
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return ctx.Eval(env, args[1])
	}
	if len(args) == 3 {
		return ctx.Eval(env, args[2])
	}
	return value.Null, nil
}

func builtinCond(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(cond (test expr...) ...)"
	for _, clauseV := range args {
		clause, ok := clauseV.(*value.List)
		if !ok || len(clause.Elements) == 0 {
			return nil, runtime.NewRuntimeFuncError("cond", usage, "each clause must be a non-empty list")
		}
		isElse := false
		if sym, ok := clause.Elements[0].(*value.Symbol); ok && sym.Name == "ELSE" {
			isElse = true
		}
		var test value.Value = value.BoolValue(true)
		if !isElse {
			var err error
			test, err = ctx.Eval(env, clause.Elements[0])
			if err != nil {
				return nil, err
			}
		}
		if value.Truthy(test) {
			var result value.Value = value.Null
			for _, form := range clause.Elements[1:] {
				v, err := ctx.Eval(env, form)
				if err != nil {
					return nil, err
				}
				result = v
			}
			return result, nil
		}
	}
	return value.Null, nil
}

func builtinCase(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(case key (match expr...) ... (else expr...))"
	if len(args) < 1 {
		return nil, runtime.NewRuntimeFuncError("case", usage, "requires a key expression")
	}
	key, err := ctx.Eval(env, args[0])
	if err != nil {
		return nil, err
	}
	for _, clauseV := range args[1:] {
		clause, ok := clauseV.(*value.List)
		if !ok || len(clause.Elements) == 0 {
			return nil, runtime.NewRuntimeFuncError("case", usage, "each clause must be a non-empty list")
		}
		matched := false
		if sym, ok := clause.Elements[0].(*value.Symbol); ok && sym.Name == "ELSE" {
			matched = true
		} else {
			matchVal, err := ctx.Eval(env, clause.Elements[0])
			if err != nil {
				return nil, err
			}
			matched = value.Equal(matchVal, key)
		}
		if matched {
			var result value.Value = value.Null
			for _, form := range clause.Elements[1:] {
				result, err = ctx.Eval(env, form)
				if err != nil {
					return nil, err
				}
			}
			return result, nil
		}
	}
	return value.Null, nil
}

func builtinWhile(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(while test expr...)"
	if len(args) < 1 {
		return nil, runtime.NewRuntimeFuncError("while", usage, "requires a test expression")
	}
	var result value.Value = value.Null
	for {
		test, err := ctx.Eval(env, args[0])
		if err != nil {
			return nil, err
		}
		if !value.Truthy(test) {
			return result, nil
		}
		for _, form := range args[1:] {
			result, err = ctx.Eval(env, form)
			if err != nil {
				return nil, err
			}
		}
	}
}

func builtinQuote(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(quote expr)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("quote", usage, "requires exactly 1 argument")
	}
	return args[0], nil
}

func builtinBackquote(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(backquote expr)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("backquote", usage, "requires exactly 1 argument")
	}
	if err := ctx.EnterQuasiquote(); err != nil {
		return nil, err
	}
	defer ctx.LeaveQuasiquote()
	return expandQuasiquote(ctx, env, args[0])
}

// expandQuasiquote walks form, evaluating COMMA/COMMA-AT subforms directly
// rather than dispatching them through the evaluator's ordinary Eval path
// (spec.md's Backquote design note): a (COMMA x) form is only ever reached
// by the ordinary evaluator when used outside an active backquote, which is
// the error case builtinCommaError reports.
func expandQuasiquote(ctx Context, env *runtime.Environment, form value.Value) (value.Value, error) {
	lst, ok := form.(*value.List)
	if !ok || len(lst.Elements) == 0 {
		return form, nil
	}
	if head, ok := lst.Elements[0].(*value.Symbol); ok && len(lst.Elements) == 2 {
		switch head.Name {
		case "COMMA":
			return ctx.Eval(env, lst.Elements[1])
		case "COMMA-AT":
			return nil, runtime.NewRuntimeFuncError("COMMA-AT", "(comma-at expr)", "`,@` is only valid splicing directly into an enclosing list")
		}
	}
	var out []value.Value
	for _, el := range lst.Elements {
		if sub, ok := el.(*value.List); ok && len(sub.Elements) == 2 {
			if head, ok := sub.Elements[0].(*value.Symbol); ok && head.Name == "COMMA-AT" {
				spliced, err := ctx.Eval(env, sub.Elements[1])
				if err != nil {
					return nil, err
				}
				elems, ok := asList(spliced)
				if !ok {
					return nil, runtime.NewRuntimeFuncError("COMMA-AT", "(comma-at expr)", "splice target must evaluate to a list, got %s", spliced.Kind())
				}
				out = append(out, elems...)
				continue
			}
		}
		expanded, err := expandQuasiquote(ctx, env, el)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return value.NewList(out...), nil
}

func builtinCommaError(name string) BuiltinFunc {
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		return nil, runtime.NewRuntimeFuncError(name, "(comma expr)", "%s used outside of BACKQUOTE", name)
	}
}

func builtinEval(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(eval expr)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("eval", usage, "requires exactly 1 argument")
	}
	return ctx.Eval(env, args[0])
}

func builtinParse(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(parse str)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("parse", usage, "requires exactly 1 argument")
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("parse", usage, "expected a string, got %s", args[0].Kind())
	}
	v, err := reader.ReadOne(s.V, "")
	if err != nil {
		return nil, runtime.NewRuntimeFuncError("parse", usage, err.Error())
	}
	return v, nil
}

func builtinPprint(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(pprint v)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("pprint", usage, "requires exactly 1 argument")
	}
	ctx.WriteLine(args[0].String())
	return args[0], nil
}

// builtinMapConstructor implements spec.md §4.4's `map` special form: key
// forms are taken literally (symbol, string, integer or float, never
// evaluated, coerced to a string key) while value
// forms are evaluated, because a MAP literal's keys name slots rather than
// referring to bindings.
func builtinMapConstructor(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(map (key expr) ...)"
	m := value.NewMap()
	for _, pairV := range args {
		pair, ok := pairV.(*value.List)
		if !ok || len(pair.Elements) != 2 {
			return nil, runtime.NewRuntimeFuncError("map", usage, "each entry must be a (key expr) pair")
		}
		key, ok := keyName(pair.Elements[0])
		if !ok {
			return nil, runtime.NewRuntimeFuncError("map", usage, "key must be an int/float/string/symbol, got %s", pair.Elements[0].Kind())
		}
		v, err := ctx.Eval(env, pair.Elements[1])
		if err != nil {
			return nil, err
		}
		m.Entries[key] = v
	}
	return m, nil
}
