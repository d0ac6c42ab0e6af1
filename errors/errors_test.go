package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "empty program",
			err:      EmptyProgram(),
			contains: []string{"[load]", "empty_program", "no instructions"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseExec,
				Kind:  KindDivisionByZero,
			},
			contains: []string{"[exec]", "division_by_zero"},
		},
		{
			name: "error with detail",
			err: &Error{
				Phase:  PhaseIO,
				Kind:   KindInputExhausted,
				Detail: "& at end of input",
			},
			contains: []string{"[io]", "input_exhausted", "& at end of input"},
		},
		{
			name:     "error with cause",
			err:      OutputFailed(".", errors.New("pipe closed")),
			contains: []string{"[io]", "output_failed", ".", "caused by", "pipe closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseIO, KindOutputFailed, cause, "write")
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := EmptyProgram()
	b := EmptyProgram()
	if !errors.Is(a, b) {
		t.Error("two empty_program errors should match")
	}
	if errors.Is(a, AlreadyTerminated()) {
		t.Error("empty_program should not match already_terminated")
	}
}

func TestInvalidConfig(t *testing.T) {
	err := InvalidConfig("step-limit must be >= 0, got %d", -1)
	if err.Kind != KindInvalidConfig {
		t.Errorf("Kind = %q", err.Kind)
	}
	if !strings.Contains(err.Error(), "got -1") {
		t.Errorf("detail not formatted: %q", err.Error())
	}
}
