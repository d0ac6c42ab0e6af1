package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Dzonas/befunge93"
	"github.com/Dzonas/befunge93/errors"
	"github.com/Dzonas/befunge93/grid"
	"github.com/Dzonas/befunge93/stack"
)

// OutputTail is the maximum number of output bytes the engine retains
// for Inspect. The I/O port still receives everything; the snapshot
// keeps only the most recent bytes so a long-running loop cannot grow
// the engine without bound.
const OutputTail = 4096

// Direction is the instruction pointer's travel direction.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Status reports the result of a single Step.
type Status uint8

const (
	// Continued means the instruction executed and the pointer advanced.
	Continued Status = iota
	// Terminated means this step executed @ and halted the program.
	Terminated
	// AlreadyTerminated means the engine had halted before this call;
	// the step was a no-op.
	AlreadyTerminated
	// Faulted means the step hit an unrecoverable fault; the error from
	// Step carries the detail and the engine is halted.
	Faulted
)

func (s Status) String() string {
	switch s {
	case Continued:
		return "continued"
	case Terminated:
		return "terminated"
	case AlreadyTerminated:
		return "already terminated"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// RunStatus reports why Run stopped.
type RunStatus uint8

const (
	RunCompleted RunStatus = iota
	RunLimitReached
	RunCanceled
	RunFaulted
)

func (s RunStatus) String() string {
	switch s {
	case RunCompleted:
		return "completed"
	case RunLimitReached:
		return "limit reached"
	case RunCanceled:
		return "canceled"
	case RunFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// RunOutcome is the result of Run: why it stopped, how many steps it
// executed, and the fault or cancellation cause when relevant.
type RunOutcome struct {
	Status RunStatus
	Steps  int
	Err    error
}

// Snapshot is a read-only view of the engine state for front ends.
// Every field is a copy; mutating it does not affect the engine.
// Output holds at most the last OutputTail bytes emitted since Load.
type Snapshot struct {
	Grid       []string
	Stack      []int64
	X, Y       int64
	Direction  Direction
	StringMode bool
	Terminated bool
	Output     string
}

// Engine is the Befunge93 interpreter core. It exclusively owns its
// grid, stack and instruction pointer; the I/O port is supplied by the
// caller and only invoked, never owned.
//
// An Engine must be driven by a single goroutine. Load while a Run is in
// progress is the caller's responsibility to prevent.
type Engine struct {
	grid  *grid.Grid
	stack *stack.Stack
	port  befunge93.IOPort

	x, y       int64
	dir        Direction
	stringMode bool
	terminated bool

	output []byte // tail of recent emissions, at most OutputTail bytes
}

// New returns an engine bound to the given I/O port. The engine starts
// unloaded; Load must succeed before Step makes progress.
func New(port befunge93.IOPort) *Engine {
	return &Engine{
		grid:       grid.New(),
		stack:      stack.New(),
		port:       port,
		terminated: true,
	}
}

// Load resets the engine with the given program text: grid contents
// replaced, pointer at (0,0) moving right, string mode off, stack and
// output cleared. This is the only way to re-run a program.
//
// Blank text is an empty_program fault; the previous engine state is
// left intact.
func (e *Engine) Load(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.EmptyProgram()
	}

	e.grid.Load(text)
	e.stack.Reset()
	e.x, e.y = 0, 0
	e.dir = Right
	e.stringMode = false
	e.terminated = false
	e.output = e.output[:0]

	Logger().Debug("program loaded", zap.Int("bytes", len(text)))
	return nil
}

// Step executes the instruction under the pointer and advances it by the
// current direction with wraparound. After termination, Step is a no-op
// reporting AlreadyTerminated.
func (e *Engine) Step() (Status, error) {
	if e.terminated {
		return AlreadyTerminated, errors.AlreadyTerminated()
	}

	ch := e.grid.Get(e.x, e.y)
	if e.stringMode && ch != '"' {
		e.stack.Push(int64(ch))
	} else if err := e.exec(ch); err != nil {
		e.terminated = true
		return Faulted, err
	}

	if e.terminated {
		return Terminated, nil
	}
	e.advance()
	return Continued, nil
}

// Run steps until termination, a fault, cancellation, or limit steps
// have executed. limit 0 means unbounded; callers running untrusted
// programs should pass a limit or a cancelable context, since Befunge93
// programs are free to loop forever.
func (e *Engine) Run(ctx context.Context, limit int) RunOutcome {
	for steps := 0; ; steps++ {
		if e.terminated {
			return RunOutcome{Status: RunCompleted, Steps: steps}
		}
		if err := ctx.Err(); err != nil {
			return RunOutcome{Status: RunCanceled, Steps: steps, Err: err}
		}
		if limit > 0 && steps >= limit {
			return RunOutcome{Status: RunLimitReached, Steps: steps}
		}

		status, err := e.Step()
		if status == Faulted {
			return RunOutcome{Status: RunFaulted, Steps: steps + 1, Err: err}
		}
	}
}

// Inspect returns a copy of the observable engine state. It never
// mutates the engine.
func (e *Engine) Inspect() Snapshot {
	return Snapshot{
		Grid:       e.grid.Snapshot(),
		Stack:      e.stack.Snapshot(),
		X:          e.x,
		Y:          e.y,
		Direction:  e.dir,
		StringMode: e.stringMode,
		Terminated: e.terminated,
		Output:     string(e.output),
	}
}

// advance moves the pointer one cell in the current direction, wrapping
// at the grid edges.
func (e *Engine) advance() {
	switch e.dir {
	case Right:
		e.x = (e.x + 1) % grid.Width
	case Left:
		e.x--
		if e.x < 0 {
			e.x = grid.Width - 1
		}
	case Down:
		e.y = (e.y + 1) % grid.Height
	case Up:
		e.y--
		if e.y < 0 {
			e.y = grid.Height - 1
		}
	}
}
