package evaluator

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// applyFunction binds evaluated arguments positionally into a new scope
// enclosing the function's closure environment, then evaluates its body
// sequentially, returning the last form's value (spec.md §4.3 "Function
// application").
func (it *Interpreter) applyFunction(callerEnv *runtime.Environment, fn *value.Function, rawArgs []value.Value) (value.Value, error) {
	if len(rawArgs) != len(fn.Params) {
		return nil, runtime.NewRuntimeError("%s: expected %d argument(s), got %d", fnLabel(fn.Name), len(fn.Params), len(rawArgs))
	}
	closureEnv, ok := fn.Env.(*runtime.Environment)
	if !ok {
		return nil, runtime.NewRuntimeError("%s: corrupt closure environment", fnLabel(fn.Name))
	}
	callEnv := closureEnv.NewEnclosed()
	for i, p := range fn.Params {
		v, err := it.Eval(callerEnv, rawArgs[i])
		if err != nil {
			return nil, err
		}
		callEnv.Define(p, v)
	}
	return it.evalBody(callEnv, fn.Body)
}

// applyMacro binds the raw, unevaluated argument forms positionally into a
// scope enclosing the caller's environment, evaluates the macro body to
// produce an expansion, and then evaluates that expansion once more in the
// caller's own environment (spec.md §4.3 "Macro application").
func (it *Interpreter) applyMacro(callerEnv *runtime.Environment, m *value.Macro, rawArgs []value.Value) (value.Value, error) {
	if len(rawArgs) != len(m.Params) {
		return nil, runtime.NewRuntimeError("%s: expected %d argument(s), got %d", fnLabel(m.Name), len(m.Params), len(rawArgs))
	}
	expandEnv := callerEnv.NewEnclosed()
	for i, p := range m.Params {
		expandEnv.Define(p, rawArgs[i])
	}
	expansion, err := it.evalBody(expandEnv, m.Body)
	if err != nil {
		return nil, err
	}
	return it.Eval(callerEnv, expansion)
}

func (it *Interpreter) evalBody(env *runtime.Environment, body []value.Value) (value.Value, error) {
	var result value.Value = value.Null
	for _, form := range body {
		v, err := it.Eval(env, form)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func fnLabel(name string) string {
	if name == "" {
		return "#<anonymous function>"
	}
	return name
}
