package builtins

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerDefinitionFunctions(r *Registry) {
	r.Register(Entry{Name: "def!", Usage: "(def! name expr)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinDef})
	r.Register(Entry{Name: "def!!", Usage: "(def!! name expr)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinDefGlobal})
	r.Register(Entry{Name: "defun!", Usage: "(defun! name (params...) body...)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinDefun(false)})
	r.Register(Entry{Name: "defun!!", Usage: "(defun!! name (params...) body...)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinDefun(true)})
	r.Register(Entry{Name: "defmacro!!", Usage: "(defmacro!! name (params...) body...)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinDefmacro})
	r.Register(Entry{Name: "set!", Usage: "(set! name expr)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinSet})
	r.Register(Entry{Name: "undef!", Usage: "(undef! name)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinUndef})
	r.Register(Entry{Name: "symtab!", Usage: "(symtab!)", Category: CategoryDefinition, StdEvalOrd: false, Fn: builtinSymtab})
}

func symbolName(v value.Value, op, usage string) (string, error) {
	sym, ok := v.(*value.Symbol)
	if !ok {
		return "", runtime.NewRuntimeFuncError(op, usage, "expected a symbol name, got %s", v.Kind())
	}
	return sym.Name, nil
}

func builtinDef(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(def! name expr)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("def!", usage, "requires exactly 2 arguments")
	}
	name, err := symbolName(args[0], "def!", usage)
	if err != nil {
		return nil, err
	}
	v, err := ctx.Eval(env, args[1])
	if err != nil {
		return nil, err
	}
	env.Define(name, v)
	return v, nil
}

func builtinDefGlobal(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(def!! name expr)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("def!!", usage, "requires exactly 2 arguments")
	}
	name, err := symbolName(args[0], "def!!", usage)
	if err != nil {
		return nil, err
	}
	v, err := ctx.Eval(env, args[1])
	if err != nil {
		return nil, err
	}
	env.DefineGlobal(name, v)
	return v, nil
}

// paramNames extracts a (params...) form's symbols as plain strings.
func paramNames(v value.Value, op, usage string) ([]string, error) {
	lst, ok := v.(*value.List)
	if !ok {
		if value.IsNull(v) {
			return nil, nil
		}
		return nil, runtime.NewRuntimeFuncError(op, usage, "parameter list must be a list, got %s", v.Kind())
	}
	names := make([]string, 0, len(lst.Elements))
	for _, p := range lst.Elements {
		n, err := symbolName(p, op, usage)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}

func builtinDefun(global bool) BuiltinFunc {
	name := "defun!"
	usage := "(defun! name (params...) body...)"
	if global {
		name = "defun!!"
		usage = "(defun!! name (params...) body...)"
	}
	return func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, runtime.NewRuntimeFuncError(name, usage, "requires a name, a parameter list, and a body")
		}
		fname, err := symbolName(args[0], name, usage)
		if err != nil {
			return nil, err
		}
		params, err := paramNames(args[1], name, usage)
		if err != nil {
			return nil, err
		}
		fn := &value.Function{Name: fname, Params: params, Body: args[2:], Env: env}
		if global {
			env.DefineGlobal(fname, fn)
		} else {
			env.Define(fname, fn)
		}
		return fn, nil
	}
}

func builtinDefmacro(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(defmacro!! name (params...) body...)"
	if len(args) < 2 {
		return nil, runtime.NewRuntimeFuncError("defmacro!!", usage, "requires a name, a parameter list, and a body")
	}
	mname, err := symbolName(args[0], "defmacro!!", usage)
	if err != nil {
		return nil, err
	}
	params, err := paramNames(args[1], "defmacro!!", usage)
	if err != nil {
		return nil, err
	}
	m := &value.Macro{Name: mname, Params: params, Body: args[2:]}
	env.DefineGlobal(mname, m)
	return m, nil
}

func builtinSet(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(set! name expr)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("set!", usage, "requires exactly 2 arguments")
	}
	name, err := symbolName(args[0], "set!", usage)
	if err != nil {
		return nil, err
	}
	v, err := ctx.Eval(env, args[1])
	if err != nil {
		return nil, err
	}
	env.Set(name, v)
	return v, nil
}

// builtinUndef removes the first occurrence of name walking outward from
// env; per the Open Questions resolution in SPEC_FULL.md §D, it considers
// only its first argument, correcting the original implementation's
// whole-tuple-as-key behavior.
func builtinUndef(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(undef! name)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("undef!", usage, "requires exactly 1 argument")
	}
	name, err := symbolName(args[0], "undef!", usage)
	if err != nil {
		return nil, err
	}
	removed := env.Undef(name)
	return value.BoolValue(removed), nil
}

// builtinSymtab dumps the active environment chain, innermost frame first,
// formatting each binding via kr/pretty.
func builtinSymtab(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	var lines []string
	frame := env
	depth := 0
	for frame != nil {
		names := make([]string, 0, frame.Size())
		frame.Range(func(name string, v value.Value) bool {
			names = append(names, fmt.Sprintf("%# v", pretty.Formatter(map[string]string{name: v.String()})))
			return true
		})
		for _, n := range names {
			lines = append(lines, fmt.Sprintf("[%d] %s", depth, n))
		}
		if frame.Outer() == nil {
			break
		}
		frame = frame.Outer()
		depth++
	}
	ctx.WriteLine(fmt.Sprintf("%d frame(s), %d binding(s) dumped", depth+1, len(lines)))
	for _, l := range lines {
		ctx.WriteLine(l)
	}
	return value.Null, nil
}
