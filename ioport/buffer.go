package ioport

import "bytes"

// BufferPort is an in-memory port. Input is a byte queue the front end
// feeds; output accumulates in a buffer the front end drains. Reads past
// the queued input report exhaustion instead of blocking, which keeps
// Step non-blocking for interactive drivers.
type BufferPort struct {
	in  bytes.Reader
	out bytes.Buffer
}

// NewBufferPort returns a port with the given initial input.
func NewBufferPort(input string) *BufferPort {
	p := &BufferPort{}
	p.in.Reset([]byte(input))
	return p
}

// Feed appends more input after what is already queued.
func (p *BufferPort) Feed(s string) {
	rest := make([]byte, p.in.Len())
	_, _ = p.in.Read(rest)
	p.in.Reset(append(rest, s...))
}

// Pending returns the number of unread input bytes.
func (p *BufferPort) Pending() int {
	return p.in.Len()
}

func (p *BufferPort) ReadInteger() (int64, bool) {
	return readToken(&p.in)
}

func (p *BufferPort) ReadChar() (int64, bool) {
	b, err := p.in.ReadByte()
	if err != nil {
		return 0, false
	}
	return int64(b), true
}

func (p *BufferPort) WriteText(s string) error {
	p.out.WriteString(s)
	return nil
}

func (p *BufferPort) WriteChar(c byte) error {
	p.out.WriteByte(c)
	return nil
}

// Output returns everything written so far.
func (p *BufferPort) Output() string {
	return p.out.String()
}

// TakeOutput returns everything written since the last call and clears
// the buffer; front ends use it for incremental scrollback.
func (p *BufferPort) TakeOutput() string {
	s := p.out.String()
	p.out.Reset()
	return s
}
