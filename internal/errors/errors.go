// Package errors formats Lyps parse errors with source context, modeled
// directly on the teacher's internal/errors.CompilerError: a file name (if
// any), a line/column position, the offending source line, and a `^`
// caret pointing at the exact column.
package errors

import (
	"fmt"
	"strings"

	"github.com/rprovost11-sketch/Lyps/internal/lexer"
)

// ParseError is raised by the scanner/reader (spec.md §7).
type ParseError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewParseError builds a ParseError carrying enough context to render a
// multi-line diagnostic.
func NewParseError(pos lexer.Position, message, source, file string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the uncolored diagnostic.
func (e *ParseError) Error() string {
	return e.Format(false)
}

// Format renders the error with its source line and a caret indicator.
// When color is true, ANSI codes highlight the caret and message, the way
// a terminal-attached driver would request.
func (e *ParseError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Parse error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Parse error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *ParseError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
