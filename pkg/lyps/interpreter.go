// Package lyps is the embeddable entry point for the Lyps interpreter,
// grounded on the teacher's cmd/dwscript/cmd wiring (lexer → parser →
// interpreter pipeline) but packaged as a reusable library rather than a
// CLI-only driver, the way the teacher's own pkg/dwscript does for DWScript.
package lyps

import (
	"bytes"
	"fmt"
	"io"

	lyperrors "github.com/rprovost11-sketch/Lyps/internal/errors"
	"github.com/rprovost11-sketch/Lyps/internal/evaluator"
	"github.com/rprovost11-sketch/Lyps/internal/reader"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Interpreter is a reusable handle onto one Lyps global environment. It is
// not safe for concurrent use from multiple goroutines (spec.md's
// Non-goals exclude concurrency support).
type Interpreter struct {
	it        *evaluator.Interpreter
	config    *Config
	lastError error
}

// NewInterpreter creates an Interpreter writing its `write!`/`writeLn!`
// output to out and reading `readLn!` input from in. Either may be nil.
func NewInterpreter(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{it: evaluator.New(out, in), config: defaultConfig()}
}

// Eval parses source as a single expression and evaluates it against the
// interpreter's persistent global environment, returning the printed form
// of the result (spec.md §6).
func (i *Interpreter) Eval(source string) (string, error) {
	form, err := reader.ReadOne(source, "<eval>")
	if err != nil {
		if pe, ok := err.(*lyperrors.ParseError); ok {
			wrapped := fmt.Errorf("%s", pe.Format(false))
			i.lastError = wrapped
			return "", wrapped
		}
		i.lastError = err
		return "", err
	}
	v, err := i.it.Eval(i.it.Global, form)
	if err != nil {
		i.lastError = err
		return "", err
	}
	return v.String(), nil
}

// DumpLastError returns the formatted text of the most recent error Eval
// raised, for a driver's `]dump` command (spec.md §7 "a separate ]dump
// command dumps the last stack trace"). Lyps has no call-stack capture
// beyond the error message itself, since the evaluator unwinds through
// plain Go error returns rather than an explicit frame stack.
func (i *Interpreter) DumpLastError() (string, bool) {
	if i.lastError == nil {
		return "", false
	}
	return i.lastError.Error(), true
}

// EvalValue is like Eval but returns the value.Value directly instead of
// its printed form, for embedders that want to inspect the result.
func (i *Interpreter) EvalValue(source string) (value.Value, error) {
	form, err := reader.ReadOne(source, "<eval>")
	if err != nil {
		return nil, err
	}
	return i.it.Eval(i.it.Global, form)
}

// Reboot restores the global environment to its pristine state: the
// default primitive library plus the startup constants PI, E, INF, -INF,
// NAN and NULL (spec.md §9).
func (i *Interpreter) Reboot() {
	i.it.Reboot()
}

// RuntimeLibraries lists the advisory .lyps source files this interpreter
// expects to find alongside a program, honoring any override supplied via
// LoadConfig (SPEC_FULL.md §A "configuration").
func (i *Interpreter) RuntimeLibraries() []string {
	if i.config != nil && len(i.config.RuntimeLibraries) > 0 {
		return i.config.RuntimeLibraries
	}
	return []string{"Library.lyps"}
}

// TestFileList lists the advisory test files a driver may replay, honoring
// any override supplied via LoadConfig. The default names are not files
// shipped in this module; the snapshot tests in this package use inline
// sources and do not read them.
func (i *Interpreter) TestFileList() []string {
	if i.config != nil && len(i.config.TestFiles) > 0 {
		return i.config.TestFiles
	}
	return []string{"fixtures/arithmetic.lyps", "fixtures/control.lyps"}
}

// LoadConfig replaces the interpreter's advisory configuration, typically
// read from a YAML manifest via LoadConfigFile.
func (i *Interpreter) LoadConfig(cfg *Config) {
	i.config = cfg
}

// EvalToString is a convenience wrapper that captures write!/writeLn!
// output produced while evaluating source, returning it alongside the
// result's printed form.
func EvalToString(source string) (result string, output string, err error) {
	var buf bytes.Buffer
	it := NewInterpreter(&buf, nil)
	result, err = it.Eval(source)
	return result, buf.String(), err
}
