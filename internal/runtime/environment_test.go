package runtime

import (
	"testing"

	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func TestLexicalScopeShadowing(t *testing.T) {
	global := NewGlobal()
	outer := global.NewEnclosed()
	outer.Define("X", value.NewInteger(10))

	inner := outer.NewEnclosed()
	inner.Define("X", value.NewInteger(20))

	got, ok := inner.Get("X")
	if !ok || got.String() != "20" {
		t.Fatalf("inner scope should see its own X=20, got %v ok=%v", got, ok)
	}

	got, ok = outer.Get("X")
	if !ok || got.String() != "10" {
		t.Fatalf("outer scope must be unaffected by inner shadow, got %v ok=%v", got, ok)
	}
}

func TestSetRebindsExistingInChain(t *testing.T) {
	global := NewGlobal()
	global.Define("X", value.NewInteger(1))
	inner := global.NewEnclosed()

	inner.Set("X", value.NewInteger(2))

	if _, ok := inner.GetLocal("X"); ok {
		t.Fatal("Set must rebind in the frame where X already exists, not define locally")
	}
	got, _ := global.Get("X")
	if got.String() != "2" {
		t.Fatalf("want X=2 in global frame, got %v", got)
	}
}

func TestSetDefinesLocallyWhenNowhereBound(t *testing.T) {
	global := NewGlobal()
	inner := global.NewEnclosed()
	inner.Set("Y", value.NewInteger(5))

	if _, ok := inner.GetLocal("Y"); !ok {
		t.Fatal("Set with no existing binding must define locally")
	}
}

func TestUndefRemovesFirstOccurrence(t *testing.T) {
	global := NewGlobal()
	global.Define("Z", value.NewInteger(1))
	inner := global.NewEnclosed()
	inner.Define("Z", value.NewInteger(2))

	if !inner.Undef("Z") {
		t.Fatal("Undef should report success")
	}
	if _, ok := inner.GetLocal("Z"); ok {
		t.Fatal("inner Z should be gone")
	}
	got, ok := inner.Get("Z")
	if !ok || got.String() != "1" {
		t.Fatalf("outer Z must remain, got %v ok=%v", got, ok)
	}
}

func TestDefineGlobalBypassesChain(t *testing.T) {
	global := NewGlobal()
	deep := global.NewEnclosed().NewEnclosed()
	deep.DefineGlobal("G", value.NewInteger(42))

	if _, ok := deep.GetLocal("G"); ok {
		t.Fatal("DefineGlobal must not touch the local frame")
	}
	got, ok := global.Get("G")
	if !ok || got.String() != "42" {
		t.Fatalf("want G=42 in global frame, got %v ok=%v", got, ok)
	}
}

func TestRebootClearsGlobalInPlace(t *testing.T) {
	global := NewGlobal()
	global.Define("X", value.NewInteger(1))
	child := global.NewEnclosed()

	global.Reboot()

	if _, ok := global.Get("X"); ok {
		t.Fatal("reboot must clear the global frame")
	}
	if child.Global() != global {
		t.Fatal("reboot must preserve the global frame's identity for existing closures")
	}
}
