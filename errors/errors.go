// Package errors defines the structured fault types used throughout the
// interpreter. All faults are returned as values; the engine never
// panics on a hostile program.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the fault occurred
type Phase string

const (
	PhaseLoad Phase = "load" // program loading
	PhaseExec Phase = "exec" // instruction execution
	PhaseIO   Phase = "io"   // port reads and writes
)

// Kind categorizes the fault
type Kind string

const (
	KindEmptyProgram      Kind = "empty_program"
	KindDivisionByZero    Kind = "division_by_zero"
	KindInputExhausted    Kind = "input_exhausted"
	KindAlreadyTerminated Kind = "already_terminated"
	KindOutputFailed      Kind = "output_failed"
	KindInvalidConfig     Kind = "invalid_config"
)

// Error is the structured fault type used throughout the interpreter
type Error struct {
	Phase  Phase
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common fault patterns

// EmptyProgram creates the load fault for blank or unusable program text
func EmptyProgram() *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindEmptyProgram,
		Detail: "program text has no instructions",
	}
}

// AlreadyTerminated creates the fault reported by Step after the engine
// has halted
func AlreadyTerminated() *Error {
	return &Error{
		Phase:  PhaseExec,
		Kind:   KindAlreadyTerminated,
		Detail: "program has terminated; Load to run again",
	}
}

// OutputFailed wraps a port write error
func OutputFailed(op string, cause error) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindOutputFailed,
		Detail: fmt.Sprintf("write for %s instruction", op),
		Cause:  cause,
	}
}

// InvalidConfig creates a configuration fault
func InvalidConfig(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidConfig,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
