package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerIOFunctions(r *Registry) {
	r.Register(Entry{Name: "write!", Usage: "(write! v1 v2 ...)", Category: CategoryIO, StdEvalOrd: true, Fn: builtinWrite})
	r.Register(Entry{Name: "writeLn!", Usage: "(writeLn! v1 v2 ...)", Category: CategoryIO, StdEvalOrd: true, Fn: builtinWriteLn})
	r.Register(Entry{Name: "readLn!", Usage: "(readLn!)", Category: CategoryIO, StdEvalOrd: true, Fn: builtinReadLn})
}

func printForm(args []value.Value) string {
	var s string
	for i, a := range args {
		if i > 0 {
			s += " "
		}
		if str, ok := a.(*value.String); ok {
			s += str.V
			continue
		}
		s += a.String()
	}
	return s
}

func builtinWrite(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	ctx.Write(printForm(args))
	return value.Null, nil
}

func builtinWriteLn(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	ctx.WriteLine(printForm(args))
	return value.Null, nil
}

func builtinReadLn(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(readLn!)"
	if len(args) != 0 {
		return nil, runtime.NewRuntimeFuncError("readLn!", usage, "takes no arguments")
	}
	line, ok := ctx.ReadLine()
	if !ok {
		return value.Null, nil
	}
	return value.NewString(line), nil
}
