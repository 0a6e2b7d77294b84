package life

import "life3d/internal/core"

// NextState applies the generational update rule for a cell with the
// given number of living neighbours (out of the 26-cell neighbourhood).
//
// A living cell survives with exactly 3 or 5 living neighbours; a dead
// cell is born with exactly 5. Every other count, including a living
// cell with 4 neighbours, yields a dead cell. The 3/5-survive, 5-birth
// thresholds shift Conway's rule to the larger 3D neighbourhood.
func NextState(c core.Cell, neighbours int) core.Cell {
	if c.IsAlive() {
		if neighbours == 3 || neighbours == 5 {
			return core.CellAlive
		}
		return core.CellDead
	}
	if neighbours == 5 {
		return core.CellAlive
	}
	return core.CellDead
}

// LiveNeighbours counts the living cells among the 26 neighbours of
// (x, y, z). Out-of-range neighbour coordinates are folded back into the
// arena with the grid's reflect-at-edge policy.
func LiveNeighbours(g *core.Grid, x, y, z int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx := g.Reflect(x, dx)
				ny := g.Reflect(y, dy)
				nz := g.Reflect(z, dz)
				if g.At(nx, ny, nz).IsAlive() {
					count++
				}
			}
		}
	}
	return count
}
