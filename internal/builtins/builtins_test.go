package builtins

import (
	"math"
	"strings"
	"testing"

	"github.com/rprovost11-sketch/Lyps/internal/reader"
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// fakeContext is a minimal Context good enough to exercise this package's
// own primitives in isolation, without depending on internal/evaluator
// (which itself depends on this package — a real evaluator can't be
// imported here without a cycle). It only dispatches to Primitive values,
// which is everything these tests need.
type fakeContext struct {
	out         strings.Builder
	quasiActive bool
}

func newFakeContext() *fakeContext { return &fakeContext{} }

func (c *fakeContext) Eval(env *runtime.Environment, form value.Value) (value.Value, error) {
	switch n := form.(type) {
	case *value.Symbol:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, runtime.NewRuntimeError("unbound symbol: %s", n.Name)
		}
		return v, nil
	case *value.List:
		if len(n.Elements) == 0 {
			return value.Null, nil
		}
		headSym, ok := n.Elements[0].(*value.Symbol)
		if !ok {
			return nil, runtime.NewRuntimeError("fakeContext only supports symbol heads")
		}
		callee, ok := env.Get(headSym.Name)
		if !ok {
			return nil, runtime.NewRuntimeError("unbound symbol: %s", headSym.Name)
		}
		prim, ok := callee.(*value.Primitive)
		if !ok {
			return nil, runtime.NewRuntimeError("fakeContext only supports primitive application")
		}
		rawArgs := n.Elements[1:]
		args := rawArgs
		if prim.StdEvalOrd {
			evaluated := make([]value.Value, len(rawArgs))
			for i, a := range rawArgs {
				v, err := c.Eval(env, a)
				if err != nil {
					return nil, err
				}
				evaluated[i] = v
			}
			args = evaluated
		}
		return prim.Fn(c, env, args)
	default:
		return form, nil
	}
}

func (c *fakeContext) EnterQuasiquote() error {
	if c.quasiActive {
		return runtime.NewRuntimeError("nested BACKQUOTE is not supported")
	}
	c.quasiActive = true
	return nil
}

func (c *fakeContext) LeaveQuasiquote() { c.quasiActive = false }

func (c *fakeContext) Write(s string)     { c.out.WriteString(s) }
func (c *fakeContext) WriteLine(s string) { c.out.WriteString(s); c.out.WriteString("\n") }
func (c *fakeContext) ReadLine() (string, bool) { return "", false }

// newTestEnv builds a global environment with every default primitive
// installed, the same way evaluator.New does.
func newTestEnv() *runtime.Environment {
	env := runtime.NewGlobal()
	for name, prim := range DefaultRegistry.Primitives() {
		env.DefineGlobal(name, prim)
	}
	return env
}

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := reader.ReadOne(src, "")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return v
}

func evalString(t *testing.T, ctx *fakeContext, env *runtime.Environment, src string) value.Value {
	t.Helper()
	v, err := ctx.Eval(env, mustRead(t, src))
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestArithmeticWidensAndChains(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	if got := evalString(t, ctx, env, "(+ 1 2/3 0.5)"); got.String() != "2.1666666666666665" {
		t.Fatalf("want 2.1666666666666665, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(/ 5 2)"); got.String() != "5/2" {
		t.Fatalf("want 5/2, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(- 7)"); got.String() != "-7" {
		t.Fatalf("unary - must negate, want -7 got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(// 7 2)"); got.String() != "3" {
		t.Fatalf("want 3, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(mod 7 2)"); got.String() != "1" {
		t.Fatalf("want 1, got %s", got.String())
	}
}

func TestTranscendentalFunctions(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	logResult, ok := value.AsFloat(evalString(t, ctx, env, "(log 100)"))
	if !ok || math.Abs(logResult-2) > 1e-9 {
		t.Fatalf("want ~2 (default base 10), got %v", logResult)
	}
	if got := evalString(t, ctx, env, "(pow 2 10)"); got.String() != "1024" {
		t.Fatalf("want 1024, got %s", got.String())
	}
}

func TestRelationalChainsAcrossAllPairs(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	if got := evalString(t, ctx, env, "(< 1 2 3)"); got.String() != "1" {
		t.Fatalf("want 1, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(< 1 3 2)"); got.String() != "0" {
		t.Fatalf("want 0 (not strictly increasing), got %s", got.String())
	}
}

func TestListMutationPrimitives(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	env.DefineGlobal("XS", evalString(t, ctx, env, "(list 1 2 3)"))
	evalString(t, ctx, env, "(push! XS 4)")
	got := evalString(t, ctx, env, "XS")
	if got.String() != "(1 2 3 4)" {
		t.Fatalf("push! must mutate in place, got %s", got.String())
	}
	popped := evalString(t, ctx, env, "(pop! XS)")
	if popped.String() != "4" {
		t.Fatalf("pop! must return the last element, got %s", popped.String())
	}
	evalString(t, ctx, env, "(atSet! XS 0 99)")
	if got := evalString(t, ctx, env, "(at XS 0)"); got.String() != "99" {
		t.Fatalf("atSet!/at must round-trip, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(hasValue? XS 2)"); got.String() != "1" {
		t.Fatalf("want 1, got %s", got.String())
	}
}

func TestMapUpdateAndHasKey(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	m := evalString(t, ctx, env, "(map (a 1) (b 2))")
	env.DefineGlobal("M", m)
	evalString(t, ctx, env, "(update! M (quote c) 3)")
	if got := evalString(t, ctx, env, "(at M (quote c))"); got.String() != "3" {
		t.Fatalf("want 3, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(hasKey? M (quote a))"); got.String() != "1" {
		t.Fatalf("want 1, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(hasKey? M (quote z))"); got.String() != "0" {
		t.Fatalf("want 0, got %s", got.String())
	}
}

func TestPredicatesDistinguishKinds(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	cases := map[string]string{
		`(isNumber? 1)`:     "1",
		`(isNumber? "x")`:   "0",
		`(isList? (list))`:  "1",
		`(isNull? (list))`:  "1",
		`(isString? "hi")`:  "1",
		`(isSymbol? (quote FOO))`: "1",
	}
	for src, want := range cases {
		if got := evalString(t, ctx, env, src); got.String() != want {
			t.Errorf("%s: want %s, got %s", src, want, got.String())
		}
	}
}

func TestLogicalOperators(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	if got := evalString(t, ctx, env, "(and 1 1 0)"); got.String() != "0" {
		t.Fatalf("want 0, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(or 0 0 1)"); got.String() != "1" {
		t.Fatalf("want 1, got %s", got.String())
	}
	if got := evalString(t, ctx, env, "(not (list))"); got.String() != "1" {
		t.Fatalf("NULL is false so (not NULL) must be 1, got %s", got.String())
	}
}

func TestStringConcatenationQuotesStringOperands(t *testing.T) {
	ctx, env := newFakeContext(), newTestEnv()
	got := evalString(t, ctx, env, `(string "a" 1 "b")`)
	if got.(*value.String).V != `"a"1"b"` {
		t.Fatalf(`want "a"1"b", got %s`, got.(*value.String).V)
	}
}
