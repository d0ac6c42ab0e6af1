package befunge93

// InputPort supplies values for the & (read integer) and ~ (read
// character) instructions. The boolean result is false once input is
// exhausted; the engine then pushes 0 and continues.
type InputPort interface {
	ReadInteger() (int64, bool)
	ReadChar() (int64, bool)
}

// OutputPort receives values emitted by the . and , instructions.
type OutputPort interface {
	WriteText(s string) error
	WriteChar(c byte) error
}

// IOPort binds both sides of the engine's I/O boundary. The caller owns
// the port; the engine only invokes it. A CLI binds it to the process's
// standard streams, an interactive front end to in-memory buffers.
type IOPort interface {
	InputPort
	OutputPort
}
