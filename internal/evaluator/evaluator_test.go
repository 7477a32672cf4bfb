package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rprovost11-sketch/Lyps/internal/reader"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func evalSource(t *testing.T, it *Interpreter, src string) value.Value {
	t.Helper()
	form, err := reader.ReadOne(src, "")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	v, err := it.Eval(it.Global, form)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestLiteralsSelfEvaluate(t *testing.T) {
	it := New(nil, nil)
	tests := map[string]string{
		"42":    "42",
		"5/2":   "5/2",
		"1.5":   "1.5",
		`"hi"`:  `"hi"`,
		"'foo":  "FOO",
		"(list 1 2 3)": "(1 2 3)",
	}
	for src, want := range tests {
		v := evalSource(t, it, src)
		if v.String() != want {
			t.Errorf("%q: want %q, got %q", src, want, v.String())
		}
	}
}

func TestExactRationalArithmetic(t *testing.T) {
	it := New(nil, nil)
	v := evalSource(t, it, "(+ 1/3 1/6)")
	if v.String() != "1/2" {
		t.Fatalf("want 1/2, got %s", v.String())
	}
}

func TestLexicalScopeViaBlock(t *testing.T) {
	it := New(nil, nil)
	v := evalSource(t, it, "(block (def! x 1) (block (def! x 2) x) x)")
	if v.String() != "1" {
		t.Fatalf("want 1 (inner def! must not leak out), got %s", v.String())
	}
}

func TestRecursionViaFactorial(t *testing.T) {
	it := New(nil, nil)
	evalSource(t, it, "(defun!! fact (n) (if (= n 0) 1 (* n (fact (- n 1)))))")
	v := evalSource(t, it, "(fact 5)")
	if v.String() != "120" {
		t.Fatalf("want 120, got %s", v.String())
	}
}

func TestMacroExpansionWithQuasiquote(t *testing.T) {
	it := New(nil, nil)
	evalSource(t, it, "(defmacro!! when (test body) `(if ,test ,body NULL))")
	v := evalSource(t, it, "(when (= 1 1) 99)")
	if v.String() != "99" {
		t.Fatalf("want 99, got %s", v.String())
	}
	v2 := evalSource(t, it, "(when (= 1 2) 99)")
	if !value.IsNull(v2) {
		t.Fatalf("want NULL, got %s", v2.String())
	}
}

func TestQuoteSuppressesEvaluation(t *testing.T) {
	it := New(nil, nil)
	v := evalSource(t, it, "'(+ 1 2)")
	if v.String() != "(+ 1 2)" {
		t.Fatalf("want unevaluated form, got %s", v.String())
	}
}

func TestDivisionByZeroSurfacesAsError(t *testing.T) {
	it := New(nil, nil)
	form, err := reader.ReadOne("(/ 1 0)", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := it.Eval(it.Global, form); err == nil {
		t.Fatal("expected division by zero to error")
	}
}

func TestWriteLnGoesToOut(t *testing.T) {
	var buf bytes.Buffer
	it := New(&buf, nil)
	evalSource(t, it, `(writeLn! "hello")`)
	if got := strings.TrimSpace(buf.String()); got != "hello" {
		t.Fatalf("want %q, got %q", "hello", got)
	}
}

func TestRebootClearsUserDefinitionsButKeepsPrimitives(t *testing.T) {
	it := New(nil, nil)
	evalSource(t, it, "(def!! x 42)")
	it.Reboot()
	form, _ := reader.ReadOne("x", "")
	// An unbound symbol self-evaluates (spec.md §4.3), so after reboot `x`
	// reads back as the bare symbol X, not its old binding of 42.
	got, err := it.Eval(it.Global, form)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "X" {
		t.Fatalf("want X (unbound symbol self-evaluates), got %s", got.String())
	}
	v := evalSource(t, it, "(+ 1 2)")
	if v.String() != "3" {
		t.Fatalf("primitives must survive reboot, got %s", v.String())
	}
}

func TestStartupConstantsAreBound(t *testing.T) {
	it := New(nil, nil)
	if v := evalSource(t, it, "(isNull? NULL)"); v.String() != "1" {
		t.Fatalf("want 1, got %s", v.String())
	}
	if v := evalSource(t, it, "(not NULL)"); v.String() != "1" {
		t.Fatalf("want 1, got %s", v.String())
	}
	if v := evalSource(t, it, "(if NULL 'a 'b)"); v.String() != "B" {
		t.Fatalf("want B, got %s", v.String())
	}
	if v := evalSource(t, it, "(> PI 3)"); v.String() != "1" {
		t.Fatalf("PI must be bound and greater than 3, got %s", v.String())
	}
	it.Reboot()
	if v := evalSource(t, it, "(isNull? NULL)"); v.String() != "1" {
		t.Fatalf("NULL must survive reboot, got %s", v.String())
	}
}

func TestCommaOutsideBackquoteErrors(t *testing.T) {
	it := New(nil, nil)
	form, err := reader.ReadOne(",x", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := it.Eval(it.Global, form); err == nil {
		t.Fatal("expected COMMA used outside BACKQUOTE to error")
	}
}
