// Package grid implements the Befunge93 program space: a fixed 80×25
// character grid with torus topology. Any integer coordinate, including
// negative ones, maps to an in-bounds cell by modular wraparound, so
// there is no out-of-bounds state to handle.
package grid

import "strings"

// Canonical Befunge93 playfield dimensions. Fixed after construction.
const (
	Width  = 80
	Height = 25
)

// Grid is the mutable program space. Cells default to space and are
// rewritten by Load and by the p instruction.
type Grid struct {
	cells [Height][Width]byte
}

// New returns a grid with every cell set to space.
func New() *Grid {
	g := &Grid{}
	g.clear()
	return g
}

func (g *Grid) clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

// Load replaces the grid contents with the given program text. Rows are
// split on line breaks; short rows are space-padded, and characters
// beyond Width or rows beyond Height are silently ignored, matching the
// reference semantics of the language.
func (g *Grid) Load(text string) {
	g.clear()
	lines := strings.Split(text, "\n")
	for y, line := range lines {
		if y >= Height {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		for x := 0; x < len(line) && x < Width; x++ {
			g.cells[y][x] = line[x]
		}
	}
}

// Get returns the cell at the wrapped coordinate.
func (g *Grid) Get(x, y int64) byte {
	return g.cells[wrap(y, Height)][wrap(x, Width)]
}

// Set overwrites the cell at the wrapped coordinate. Used by the p
// instruction; self-modification is immediately visible to Get and to
// the instruction pointer.
func (g *Grid) Set(x, y int64, ch byte) {
	g.cells[wrap(y, Height)][wrap(x, Width)] = ch
}

// Snapshot returns the rows as strings. The result is a copy; mutating
// it does not affect the grid.
func (g *Grid) Snapshot() []string {
	rows := make([]string, Height)
	for y := range g.cells {
		rows[y] = string(g.cells[y][:])
	}
	return rows
}

// wrap maps v into [0, n) with the sign of n, so negative coordinates
// reenter from the opposite edge.
func wrap(v, n int64) int64 {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
