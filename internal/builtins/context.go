// Package builtins implements the Lyps primitive library (spec.md §4.4): a
// static table of (name, usage, fn, stdEvalOrd) records, grounded on the
// teacher's internal/interp/builtins Registry/FunctionInfo design and its
// Context-interface trick for avoiding a builtins↔evaluator import cycle.
package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Context is the minimal interface a BuiltinFunc needs from the evaluator,
// the same role the teacher's builtins.Context interface plays for DWScript:
// it lets the Interpreter/Evaluator and this package share implementations
// without builtins importing evaluator.
type Context interface {
	// Eval evaluates form in env, the same dispatch the top-level evaluator
	// uses. Control-flow special forms (if, cond, case, while, block, eval,
	// defmacro!! expansion) call back into it.
	Eval(env *runtime.Environment, form value.Value) (value.Value, error)

	// EnterQuasiquote marks entry into a backquote's expansion; it returns
	// an error if one is already active, enforcing spec.md §4.3's "a second
	// backquote while one is active must raise" with a per-Interpreter
	// flag rather than a process-wide one (the Backquote nesting state
	// design note).
	EnterQuasiquote() error
	// LeaveQuasiquote ends the backquote expansion entered by a matching
	// EnterQuasiquote.
	LeaveQuasiquote()

	// Write and WriteLine implement the `write!`/`writeLn!` I/O primitives.
	Write(s string)
	WriteLine(s string)
	// ReadLine implements `readLn!`.
	ReadLine() (string, bool)
}

// BuiltinFunc is the signature every primitive implementation in this
// package has. args are raw (unevaluated) argument forms when the
// registered entry's StdEvalOrd is false, and evaluated values otherwise.
type BuiltinFunc func(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error)

// adapt wraps a typed BuiltinFunc as the interface{}-based value.PrimitiveFunc
// the evaluator actually calls through value.Primitive.Fn.
func adapt(fn BuiltinFunc) value.PrimitiveFunc {
	return func(ctxIface, envIface interface{}, args []value.Value) (value.Value, error) {
		ctx := ctxIface.(Context)
		env := envIface.(*runtime.Environment)
		return fn(ctx, env, args)
	}
}
