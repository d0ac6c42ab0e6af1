package engine

import (
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"github.com/Dzonas/befunge93/errors"
)

// exec performs the effect of one instruction. String mode is handled by
// the caller; exec only ever sees characters to be executed.
//
// Policy choices, applied uniformly: division and modulo by zero push 0,
// reads past end-of-input push 0, unknown instructions are no-ops. Only
// a failed port write is an unrecoverable fault.
func (e *Engine) exec(ch byte) error {
	if ch >= '0' && ch <= '9' {
		e.stack.Push(int64(ch - '0'))
		return nil
	}

	switch ch {
	case '+':
		a, b := e.pop2()
		e.stack.Push(a + b)
	case '-':
		a, b := e.pop2()
		e.stack.Push(a - b)
	case '*':
		a, b := e.pop2()
		e.stack.Push(a * b)
	case '/':
		a, b := e.pop2()
		e.stack.Push(safeDiv(a, b))
	case '%':
		a, b := e.pop2()
		e.stack.Push(safeMod(a, b))
	case '!':
		if e.stack.Pop() == 0 {
			e.stack.Push(1)
		} else {
			e.stack.Push(0)
		}
	case '`':
		a, b := e.pop2()
		if a > b {
			e.stack.Push(1)
		} else {
			e.stack.Push(0)
		}
	case '>':
		e.dir = Right
	case '<':
		e.dir = Left
	case '^':
		e.dir = Up
	case 'v':
		e.dir = Down
	case '?':
		e.dir = Direction(rand.Intn(4))
	case '_':
		if e.stack.Pop() != 0 {
			e.dir = Left
		} else {
			e.dir = Right
		}
	case '|':
		if e.stack.Pop() != 0 {
			e.dir = Up
		} else {
			e.dir = Down
		}
	case '"':
		e.stringMode = !e.stringMode
	case ':':
		// duplicating an empty stack leaves a single 0
		if e.stack.Len() == 0 {
			e.stack.Push(0)
		} else {
			e.stack.Push(e.stack.Peek())
		}
	case '\\':
		a, b := e.pop2()
		e.stack.Push(b)
		e.stack.Push(a)
	case '$':
		e.stack.Pop()
	case '.':
		v := e.stack.Pop()
		if err := e.emitText(strconv.FormatInt(v, 10) + " "); err != nil {
			return errors.OutputFailed(".", err)
		}
	case ',':
		v := e.stack.Pop()
		if err := e.emitChar(byte(v)); err != nil {
			return errors.OutputFailed(",", err)
		}
	case '#':
		e.advance()
	case 'g':
		y := e.stack.Pop()
		x := e.stack.Pop()
		e.stack.Push(int64(e.grid.Get(x, y)))
	case 'p':
		y := e.stack.Pop()
		x := e.stack.Pop()
		v := e.stack.Pop()
		e.grid.Set(x, y, byte(v))
	case '&':
		e.stack.Push(e.readInteger())
	case '~':
		e.stack.Push(e.readChar())
	case '@':
		e.terminated = true
	case ' ':
		// no-op
	default:
		Logger().Debug("unknown instruction treated as no-op",
			zap.String("char", string(ch)),
			zap.Int64("x", e.x), zap.Int64("y", e.y))
	}
	return nil
}

// pop2 pops the top two values: b was on top, a below it.
func (e *Engine) pop2() (a, b int64) {
	b = e.stack.Pop()
	a = e.stack.Pop()
	return a, b
}

func safeDiv(a, b int64) int64 {
	if b == 0 {
		Logger().Debug("division by zero pushes 0")
		return 0
	}
	return a / b
}

func safeMod(a, b int64) int64 {
	if b == 0 {
		Logger().Debug("modulo by zero pushes 0")
		return 0
	}
	return a % b
}

func (e *Engine) readInteger() int64 {
	if e.port == nil {
		return 0
	}
	v, ok := e.port.ReadInteger()
	if !ok {
		Logger().Debug("integer input exhausted, pushing 0")
		return 0
	}
	return v
}

func (e *Engine) readChar() int64 {
	if e.port == nil {
		return 0
	}
	v, ok := e.port.ReadChar()
	if !ok {
		Logger().Debug("character input exhausted, pushing 0")
		return 0
	}
	return v
}

func (e *Engine) emitText(s string) error {
	e.output = append(e.output, s...)
	e.trimOutput()
	if e.port == nil {
		return nil
	}
	return e.port.WriteText(s)
}

func (e *Engine) emitChar(c byte) error {
	e.output = append(e.output, c)
	e.trimOutput()
	if e.port == nil {
		return nil
	}
	return e.port.WriteChar(c)
}

// trimOutput drops all but the most recent OutputTail bytes.
func (e *Engine) trimOutput() {
	if len(e.output) > OutputTail {
		e.output = e.output[len(e.output)-OutputTail:]
	}
}
