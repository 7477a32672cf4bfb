package reader

import "testing"

func TestReadOneAtoms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"5/2", "5/2"},
		{"1.5", "1.5"},
		{`"hi"`, `"hi"`},
		{"foo", "FOO"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"()", "NULL"},
		{"'x", "(QUOTE X)"},
		{"`x", "(BACKQUOTE X)"},
		{",x", "(COMMA X)"},
		{",@x", "(COMMA-AT X)"},
	}
	for _, tt := range tests {
		v, err := ReadOne(tt.input, "")
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if v.String() != tt.want {
			t.Errorf("input %q: want %q, got %q", tt.input, tt.want, v.String())
		}
	}
}

func TestReadOneRejectsTrailingInput(t *testing.T) {
	_, err := ReadOne("1 2", "")
	if err == nil {
		t.Fatal("expected a parse error for trailing input")
	}
}

func TestReadOneRejectsUnclosedList(t *testing.T) {
	_, err := ReadOne("(+ 1 2", "")
	if err == nil {
		t.Fatal("expected a parse error for an unclosed list")
	}
}

func TestReadOneRejectsZeroDenominator(t *testing.T) {
	_, err := ReadOne("5/0", "")
	if err == nil {
		t.Fatal("expected a parse error for a zero denominator")
	}
}

func TestSymbolsAreCaseFolded(t *testing.T) {
	v, err := ReadOne("Foo", "")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "FOO" {
		t.Fatalf("want FOO, got %s", v.String())
	}
}
