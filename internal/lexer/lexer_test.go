package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `(+ 1 2) ;; trailing comment
'sym ` + "`" + `x ,y ,@z`

	tests := []struct {
		wantType    TokenType
		wantLiteral string
	}{
		{OPEN_PAREN, "("},
		{SYMBOL, "+"},
		{INTEGER, "1"},
		{INTEGER, "2"},
		{CLOSE_PAREN, ")"},
		{SINGLE_QUOTE, "'"},
		{SYMBOL, "sym"},
		{BACK_QUOTE, "`"},
		{SYMBOL, "x"},
		{COMMA, ","},
		{SYMBOL, "y"},
		{COMMA_AT, ",@"},
		{SYMBOL, "z"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("tests[%d]: wrong type. want=%s got=%s (literal=%q)", i, tt.wantType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("tests[%d]: wrong literal. want=%q got=%q", i, tt.wantLiteral, tok.Literal)
		}
	}
}

func TestSingleSemiIsNotAComment(t *testing.T) {
	l := New("; x")
	tok := l.NextToken()
	if tok.Type != SEMI {
		t.Fatalf("want SEMI, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != SYMBOL || tok.Literal != "x" {
		t.Fatalf("want SYMBOL x, got %s %q", tok.Type, tok.Literal)
	}
}

func TestDoubleSemiIsAComment(t *testing.T) {
	l := New(";; ignored\n42")
	tok := l.NextToken()
	if tok.Type != INTEGER || tok.Literal != "42" {
		t.Fatalf("want INTEGER 42, got %s %q", tok.Type, tok.Literal)
	}
}

func TestNumberVsSymbolDisambiguation(t *testing.T) {
	tests := []struct {
		input       string
		wantType    TokenType
		wantLiteral string
	}{
		{"-", SYMBOL, "-"},
		{"+", SYMBOL, "+"},
		{"-5", INTEGER, "-5"},
		{"+5", INTEGER, "+5"},
		{"-foo", SYMBOL, "-foo"},
		{"5/2", FRAC, "5/2"},
		{"/", SYMBOL, "/"},
		{"5/", INTEGER, "5"}, // "/" left for the next token
		{"1.5", FLOAT, "1.5"},
		{"1.", INTEGER, "1"}, // "." left dangling, no digit after
		{"1e10", FLOAT, "1e10"},
		{"1e", INTEGER, "1"},
		{"1.5e-3", FLOAT, "1.5e-3"},
		{"2.5e", FLOAT, "2.5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.wantType || tok.Literal != tt.wantLiteral {
			t.Errorf("input %q: want (%s, %q) got (%s, %q)", tt.input, tt.wantType, tt.wantLiteral, tok.Type, tok.Literal)
		}
	}
}

func TestStringNoEscapes(t *testing.T) {
	l := New(`"hello
world" rest`)
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "hello\nworld" {
		t.Fatalf("want STRING with literal newline, got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != SYMBOL || tok.Literal != "rest" {
		t.Fatalf("want SYMBOL rest, got %s %q", tok.Type, tok.Literal)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("abc def")
	mark := l.SaveState()
	first := l.NextToken()
	l.RestoreState(mark)
	again := l.NextToken()
	if first.Literal != again.Literal {
		t.Fatalf("restore did not replay the same token: %q vs %q", first.Literal, again.Literal)
	}
}
