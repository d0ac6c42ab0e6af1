// Package engine implements the Befunge93 instruction pointer state
// machine. An Engine owns a program grid, a value stack and the
// instruction pointer, and exposes Load, Step, Run and Inspect.
//
// Step executes exactly one instruction and advances the pointer; Run is
// a convenience loop over Step with cancellation and an optional step
// limit, so batch and interactive front ends observe identical
// semantics. Inspect returns a read-only snapshot for visual front ends.
package engine
