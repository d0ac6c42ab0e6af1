// Package befunge93 provides a Go implementation of the Befunge93
// esoteric programming language.
//
// Befunge93 programs live on a fixed 80×25 grid of characters. A single
// instruction pointer walks the grid in one of four directions, executing
// the character under it against an integer stack. Programs may rewrite
// their own grid while running, and the grid wraps around at every edge.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	befunge93/           Root package with the I/O port boundary interfaces
//	├── engine/          Instruction pointer state machine: Load, Step, Run, Inspect
//	├── grid/            Torus program space with wraparound addressing
//	├── stack/           Underflow-safe signed integer stack
//	├── ioport/          Stream- and buffer-backed I/O port implementations
//	├── errors/          Structured fault types
//	├── manifest/        Optional befunge.toml runner configuration
//	└── cmd/run/         Batch CLI and interactive stepper
//
// # Quick Start
//
// Load and run a program:
//
//	port := ioport.NewStreamPort(os.Stdin, os.Stdout)
//	eng := engine.New(port)
//
//	if err := eng.Load(program); err != nil {
//	    log.Fatal(err)
//	}
//
//	outcome := eng.Run(ctx, 0)
//	fmt.Println(outcome.Status) // completed
//
// # Single Stepping
//
// Run is a convenience loop over Step; interactive front ends drive Step
// directly and observe identical semantics:
//
//	for {
//	    status, _ := eng.Step()
//	    if status != engine.Continued {
//	        break
//	    }
//	    render(eng.Inspect())
//	}
//
// # Thread Safety
//
// Engine is NOT safe for concurrent use. A single goroutine must own it,
// or access must be synchronized. Befunge93 has exactly one instruction
// pointer, so the engine itself needs no internal locking.
package befunge93
