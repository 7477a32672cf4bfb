package errors

import (
	"strings"
	"testing"

	"github.com/rprovost11-sketch/Lyps/internal/lexer"
)

func TestFormatIncludesCaret(t *testing.T) {
	src := "(+ 1 @)"
	err := NewParseError(lexer.Position{Line: 1, Column: 6}, "unexpected character", src, "")
	out := err.Format(false)
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret in diagnostic, got:\n%s", out)
	}
	if !strings.Contains(out, "unexpected character") {
		t.Fatalf("expected message in diagnostic, got:\n%s", out)
	}
}
