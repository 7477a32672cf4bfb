package runtime

import "fmt"

// RuntimeError is raised by the evaluator for structural problems: a
// malformed combination, a non-callable head, or an unrecognized expression
// kind (spec.md §7). It is distinct from RuntimeFuncError, which carries
// per-primitive context.
type RuntimeError struct {
	Message string
}

func NewRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string { return e.Message }

// RuntimeFuncError specializes RuntimeError for primitive-invocation
// failures: it names the offending primitive and its usage string, the way
// the teacher's internal/interp/runtime error family (ConversionError,
// ArithmeticError, …) attaches structured context to each failure kind
// instead of a single flat error string.
type RuntimeFuncError struct {
	Name    string
	Usage   string
	Message string
}

func NewRuntimeFuncError(name, usage, format string, args ...any) *RuntimeFuncError {
	return &RuntimeFuncError{
		Name:    name,
		Usage:   usage,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *RuntimeFuncError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("%s: %s (usage: %s)", e.Name, e.Message, e.Usage)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}
