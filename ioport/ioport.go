// Package ioport provides the concrete I/O port implementations the
// engine is bound to: StreamPort for a process's standard streams and
// BufferPort for in-memory front ends and tests.
package ioport

import (
	"bufio"
	"io"
	"strconv"
)

// StreamPort adapts an io.Reader/io.Writer pair, typically stdin and
// stdout. Reads block until the underlying reader delivers data; writes
// go straight through so output is never held back.
type StreamPort struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreamPort returns a port reading from r and writing to w.
func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	return &StreamPort{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// ReadInteger reads the next optionally signed decimal token, skipping
// leading whitespace. The boolean result is false at end-of-input or
// when no digits are found.
func (p *StreamPort) ReadInteger() (int64, bool) {
	return readToken(p.in)
}

// ReadChar reads a single byte and returns its code.
func (p *StreamPort) ReadChar() (int64, bool) {
	b, err := p.in.ReadByte()
	if err != nil {
		return 0, false
	}
	return int64(b), true
}

func (p *StreamPort) WriteText(s string) error {
	_, err := io.WriteString(p.out, s)
	return err
}

func (p *StreamPort) WriteChar(c byte) error {
	_, err := p.out.Write([]byte{c})
	return err
}

// byteScanner is the subset of bufio.Reader that token parsing needs.
type byteScanner interface {
	ReadByte() (byte, error)
	UnreadByte() error
}

// readToken parses an optionally signed run of digits, consuming any
// leading whitespace. It leaves the first byte after the number unread.
func readToken(r byteScanner) (int64, bool) {
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, false
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			break
		}
	}

	var digits []byte
	if b == '-' || b == '+' {
		digits = append(digits, b)
		b, err = r.ReadByte()
		if err != nil {
			return 0, false
		}
	}
	for b >= '0' && b <= '9' {
		digits = append(digits, b)
		b, err = r.ReadByte()
		if err != nil {
			break
		}
	}
	if err == nil {
		// leave the delimiter for the next read
		_ = r.UnreadByte()
	}

	v, perr := strconv.ParseInt(string(digits), 10, 64)
	if perr != nil {
		return 0, false
	}
	return v, true
}
