package ioport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Dzonas/befunge93/ioport"
)

func TestStreamPortReadInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{"plain", "42", 42, true},
		{"leading whitespace", "  \n\t 7", 7, true},
		{"negative", "-13", -13, true},
		{"explicit plus", "+5", 5, true},
		{"trailing newline", "65\n", 65, true},
		{"empty", "", 0, false},
		{"whitespace only", " \n ", 0, false},
		{"not a number", "abc", 0, false},
		{"bare sign", "-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ioport.NewStreamPort(strings.NewReader(tt.input), &bytes.Buffer{})
			got, ok := p.ReadInteger()
			if got != tt.want || ok != tt.ok {
				t.Errorf("ReadInteger() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestStreamPortReadIntegerSequence(t *testing.T) {
	p := ioport.NewStreamPort(strings.NewReader("1 2\n3"), &bytes.Buffer{})
	for _, want := range []int64{1, 2, 3} {
		got, ok := p.ReadInteger()
		if !ok || got != want {
			t.Fatalf("ReadInteger() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := p.ReadInteger(); ok {
		t.Error("expected exhaustion after last token")
	}
}

func TestStreamPortReadChar(t *testing.T) {
	p := ioport.NewStreamPort(strings.NewReader("A\n"), &bytes.Buffer{})
	if got, ok := p.ReadChar(); !ok || got != 'A' {
		t.Errorf("ReadChar() = (%d, %v), want (65, true)", got, ok)
	}
	if got, ok := p.ReadChar(); !ok || got != '\n' {
		t.Errorf("ReadChar() = (%d, %v), want (10, true)", got, ok)
	}
	if _, ok := p.ReadChar(); ok {
		t.Error("expected exhaustion at end of input")
	}
}

func TestStreamPortWrites(t *testing.T) {
	var out bytes.Buffer
	p := ioport.NewStreamPort(strings.NewReader(""), &out)
	if err := p.WriteText("12 "); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteChar('x'); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "12 x" {
		t.Errorf("output = %q, want %q", got, "12 x")
	}
}

func TestBufferPortFeedAndPending(t *testing.T) {
	p := ioport.NewBufferPort("")
	if p.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", p.Pending())
	}
	if _, ok := p.ReadChar(); ok {
		t.Fatal("expected exhaustion on empty buffer")
	}

	p.Feed("ab")
	if p.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", p.Pending())
	}
	if got, ok := p.ReadChar(); !ok || got != 'a' {
		t.Fatalf("ReadChar() = (%d, %v), want (97, true)", got, ok)
	}

	p.Feed("c")
	// remaining 'b' is read before the newly fed 'c'
	if got, _ := p.ReadChar(); got != 'b' {
		t.Errorf("ReadChar() = %d, want 'b'", got)
	}
	if got, _ := p.ReadChar(); got != 'c' {
		t.Errorf("ReadChar() = %d, want 'c'", got)
	}
}

func TestBufferPortOutput(t *testing.T) {
	p := ioport.NewBufferPort("")
	_ = p.WriteText("3 ")
	_ = p.WriteChar('!')
	if got := p.Output(); got != "3 !" {
		t.Errorf("Output() = %q, want %q", got, "3 !")
	}
	if got := p.TakeOutput(); got != "3 !" {
		t.Errorf("TakeOutput() = %q, want %q", got, "3 !")
	}
	if got := p.TakeOutput(); got != "" {
		t.Errorf("TakeOutput() after drain = %q, want empty", got)
	}
}

func TestBufferPortReadInteger(t *testing.T) {
	p := ioport.NewBufferPort("65\n-4")
	if got, ok := p.ReadInteger(); !ok || got != 65 {
		t.Errorf("ReadInteger() = (%d, %v), want (65, true)", got, ok)
	}
	if got, ok := p.ReadInteger(); !ok || got != -4 {
		t.Errorf("ReadInteger() = (%d, %v), want (-4, true)", got, ok)
	}
	if _, ok := p.ReadInteger(); ok {
		t.Error("expected exhaustion")
	}
}
