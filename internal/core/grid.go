package core

import "fmt"

// Grid stores a dense cubic arena of cell states in flat slice order.
type Grid struct {
	n    int
	data []Cell
}

// NewGrid allocates an all-dead arena with edge length n.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]Cell, n*n*n)}
}

// N returns the arena edge length.
func (g *Grid) N() int { return g.n }

// Cells exposes the backing slice so callers can scan values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y, z).
func (g *Grid) Index(x, y, z int) int { return (z*g.n+y)*g.n + x }

// At returns the cell at (x, y, z). Coordinates must lie in [0, n);
// anything else is a caller defect and panics rather than aliasing
// another cell.
func (g *Grid) At(x, y, z int) Cell {
	g.check(x, y, z)
	return g.data[g.Index(x, y, z)]
}

// Set writes the cell at (x, y, z), with the same coordinate contract
// as At.
func (g *Grid) Set(x, y, z int, c Cell) {
	g.check(x, y, z)
	g.data[g.Index(x, y, z)] = c
}

func (g *Grid) check(x, y, z int) {
	if x < 0 || x >= g.n || y < 0 || y >= g.n || z < 0 || z >= g.n {
		panic(fmt.Sprintf("core: coordinate (%d,%d,%d) outside arena of size %d", x, y, z, g.n))
	}
}

// Reflect folds c+offset back into [0, n) when it lands just past an
// edge: one below the low edge maps to n-1, one above the high edge
// maps to 0. Offsets are restricted to -1, 0 and 1; larger offsets are
// undefined.
func (g *Grid) Reflect(c, offset int) int {
	v := c + offset
	switch {
	case v < 0:
		return g.n + v
	case v > g.n-1:
		return v - g.n
	default:
		return v
	}
}

// Population counts the living cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.data {
		if c.IsAlive() {
			count++
		}
	}
	return count
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = CellDead
	}
}
