// Package evaluator implements the Lyps tree-walking evaluator (spec.md
// §4.3): a single recursive Eval function dispatching on the node's
// value.Value kind, grounded on the teacher's internal/interp Interpreter
// type and its Eval/Exec dispatch loop.
package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/rprovost11-sketch/Lyps/internal/builtins"
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Interpreter is the evaluator's top-level handle: it owns the global
// environment, the output/input streams, and the quasiquote nesting guard.
// It implements builtins.Context so primitives can call back into Eval.
type Interpreter struct {
	Global *runtime.Environment
	Out    io.Writer
	in     *bufio.Reader

	quasiActive bool
}

var _ builtins.Context = (*Interpreter)(nil)

// New builds an Interpreter with a fresh global environment populated from
// the default primitive registry (spec.md §9).
func New(out io.Writer, in io.Reader) *Interpreter {
	it := &Interpreter{
		Global: runtime.NewGlobal(),
		Out:    out,
	}
	if in != nil {
		it.in = bufio.NewReader(in)
	}
	it.installPrimitives()
	it.installConstants()
	return it
}

func (it *Interpreter) installPrimitives() {
	for name, prim := range builtins.DefaultRegistry.Primitives() {
		it.Global.DefineGlobal(name, prim)
	}
}

// installConstants binds the startup float constants and NULL (spec.md
// §3.1, §6): the numbers are bound once here rather than baked into the
// primitive registry, since they are plain values, not callables.
func (it *Interpreter) installConstants() {
	it.Global.DefineGlobal("PI", value.NewFloat(math.Pi))
	it.Global.DefineGlobal("E", value.NewFloat(math.E))
	it.Global.DefineGlobal("INF", value.NewFloat(math.Inf(1)))
	it.Global.DefineGlobal("-INF", value.NewFloat(math.Inf(-1)))
	it.Global.DefineGlobal("NAN", value.NewFloat(math.NaN()))
	it.Global.DefineGlobal("NULL", value.Null)
}

// Reboot restores the global environment to its pristine post-New state,
// reinstalling the default primitive table and re-binding the startup
// constants (spec.md §6 "reboot").
func (it *Interpreter) Reboot() {
	it.Global.Reboot()
	it.installPrimitives()
	it.installConstants()
}

// Eval implements builtins.Context and is the evaluator's sole entry point.
func (it *Interpreter) Eval(env *runtime.Environment, node value.Value) (value.Value, error) {
	switch n := node.(type) {
	case nil:
		return value.Null, nil

	case *value.List:
		if len(n.Elements) == 0 {
			return value.Null, nil
		}
		return it.evalCombination(env, n)

	case *value.Symbol:
		// An unbound symbol self-evaluates rather than raising: several
		// special forms (notably `case` literals and `cond` default
		// branches) rely on this to use bare symbols as self-quoting
		// constants (spec.md §4.3, scenario 3).
		if v, ok := env.Get(n.Name); ok {
			return v, nil
		}
		return n, nil

	default:
		// Integer, Rational, Float, String, Map, Function, Macro, Primitive
		// are all self-evaluating (spec.md §4.3).
		return node, nil
	}
}

func (it *Interpreter) evalCombination(env *runtime.Environment, form *value.List) (value.Value, error) {
	head := form.Elements[0]
	rawArgs := form.Elements[1:]

	switch head.(type) {
	case *value.Symbol, *value.List:
		// ok: the only two syntactic shapes a combination's head may take
		// (spec.md §4.3).
	default:
		return nil, runtime.NewRuntimeError("cannot call a %s as a function", head.Kind())
	}

	callee, err := it.Eval(env, head)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *value.Primitive:
		return it.applyPrimitive(env, fn, rawArgs)
	case *value.Function:
		return it.applyFunction(env, fn, rawArgs)
	case *value.Macro:
		return it.applyMacro(env, fn, rawArgs)
	default:
		return nil, runtime.NewRuntimeError("cannot call a %s as a function", callee.Kind())
	}
}

func (it *Interpreter) applyPrimitive(env *runtime.Environment, fn *value.Primitive, rawArgs []value.Value) (value.Value, error) {
	args := rawArgs
	if fn.StdEvalOrd {
		evaluated := make([]value.Value, len(rawArgs))
		for i, a := range rawArgs {
			v, err := it.Eval(env, a)
			if err != nil {
				return nil, err
			}
			evaluated[i] = v
		}
		args = evaluated
	}
	v, err := fn.Fn(builtins.Context(it), env, args)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// EnterQuasiquote implements builtins.Context. Lyps tracks the active
// backquote with a per-Interpreter flag rather than a process-wide global,
// so nested interpreters (embedders running several concurrently) don't
// interfere with one another (spec.md's Backquote nesting design note).
func (it *Interpreter) EnterQuasiquote() error {
	if it.quasiActive {
		return runtime.NewRuntimeError("nested BACKQUOTE is not supported")
	}
	it.quasiActive = true
	return nil
}

func (it *Interpreter) LeaveQuasiquote() {
	it.quasiActive = false
}

func (it *Interpreter) Write(s string) {
	if it.Out != nil {
		fmt.Fprint(it.Out, s)
	}
}

func (it *Interpreter) WriteLine(s string) {
	if it.Out != nil {
		fmt.Fprintln(it.Out, s)
	}
}

func (it *Interpreter) ReadLine() (string, bool) {
	if it.in == nil {
		return "", false
	}
	line, err := it.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, true
}
