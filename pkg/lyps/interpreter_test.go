package lyps

import "testing"

func TestEvalArithmetic(t *testing.T) {
	it := NewInterpreter(nil, nil)
	got, err := it.Eval("(+ 1 2 3)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "6" {
		t.Fatalf("want 6, got %s", got)
	}
}

func TestEvalPersistsGlobalDefinitions(t *testing.T) {
	it := NewInterpreter(nil, nil)
	if _, err := it.Eval("(def!! square (lam (x) (* x x)))"); err != nil {
		t.Fatal(err)
	}
	got, err := it.Eval("(square 7)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "49" {
		t.Fatalf("want 49, got %s", got)
	}
}

func TestRebootClearsUserState(t *testing.T) {
	it := NewInterpreter(nil, nil)
	if _, err := it.Eval("(def!! x 1)"); err != nil {
		t.Fatal(err)
	}
	it.Reboot()
	// An unbound symbol self-evaluates (spec.md §4.3) rather than raising,
	// so after reboot `x` reads back as the bare symbol X, not 1.
	got, err := it.Eval("x")
	if err != nil {
		t.Fatal(err)
	}
	if got != "X" {
		t.Fatalf("want X (unbound symbol self-evaluates), got %s", got)
	}
}

func TestRuntimeLibrariesDefaultsToLibraryLyps(t *testing.T) {
	it := NewInterpreter(nil, nil)
	libs := it.RuntimeLibraries()
	if len(libs) != 1 || libs[0] != "Library.lyps" {
		t.Fatalf("unexpected default runtime libraries: %v", libs)
	}
}

func TestLoadConfigOverridesRuntimeLibraries(t *testing.T) {
	it := NewInterpreter(nil, nil)
	cfg, err := LoadConfig([]byte("runtimeLibraries:\n  - Custom.lyps\n"))
	if err != nil {
		t.Fatal(err)
	}
	it.LoadConfig(cfg)
	libs := it.RuntimeLibraries()
	if len(libs) != 1 || libs[0] != "Custom.lyps" {
		t.Fatalf("want [Custom.lyps], got %v", libs)
	}
}

func TestEvalToStringCapturesOutput(t *testing.T) {
	result, output, err := EvalToString(`(writeLn! "hi")`)
	if err != nil {
		t.Fatal(err)
	}
	if result != "NULL" {
		t.Fatalf("want NULL, got %s", result)
	}
	if output != "hi\n" {
		t.Fatalf("want %q, got %q", "hi\n", output)
	}
}

func TestEvalSurfacesParseErrors(t *testing.T) {
	it := NewInterpreter(nil, nil)
	if _, err := it.Eval("(+ 1 2"); err == nil {
		t.Fatal("expected a parse error for unclosed input")
	}
}

func TestDumpLastErrorTracksMostRecentFailure(t *testing.T) {
	it := NewInterpreter(nil, nil)
	if _, ok := it.DumpLastError(); ok {
		t.Fatal("want no last error before any failing Eval")
	}
	if _, err := it.Eval("(/ 1 0)"); err == nil {
		t.Fatal("expected division by zero to error")
	}
	msg, ok := it.DumpLastError()
	if !ok || msg == "" {
		t.Fatal("want a non-empty last-error message after a failing Eval")
	}
}
