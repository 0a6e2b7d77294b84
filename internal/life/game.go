// Package life implements a three-dimensional Game of Life: a dense cubic
// arena of binary cells advanced by a synchronous generational rule, with a
// movable cursor for manual edits and a tick scheduler pacing steps against
// wall-clock time.
package life

import "life3d/internal/core"

// Game owns the simulation state: the current and next cell grids, the
// edit cursor and the tick scheduler.
type Game struct {
	cur *core.Grid
	nxt *core.Grid

	cursor     Cursor
	ticker     *core.Ticker
	generation int
}

// New constructs a game with an all-dead arena of edge length n, stepping
// every interval seconds at speed 1.
func New(n int, interval float64) *Game {
	return &Game{
		cur:    core.NewGrid(n),
		nxt:    core.NewGrid(n),
		ticker: core.NewTicker(interval),
	}
}

// Grid returns the current generation's grid.
func (g *Game) Grid() *core.Grid { return g.cur }

// Ticker returns the scheduler pacing generation steps.
func (g *Game) Ticker() *core.Ticker { return g.ticker }

// Cursor returns the current cursor position.
func (g *Game) Cursor() Cursor { return g.cursor }

// Generation returns the number of steps taken since the last reset.
func (g *Game) Generation() int { return g.generation }

// Population returns the number of living cells.
func (g *Game) Population() int { return g.cur.Population() }

// MoveCursor shifts the cursor one step along the given axis.
func (g *Game) MoveCursor(axis core.Axis, delta int) {
	g.cursor.Move(axis, delta, g.cur.N())
}

// FlipAtCursor toggles the cell under the cursor, bypassing the rule.
func (g *Game) FlipAtCursor() {
	g.cursor.Flip(g.cur)
}

// Advance feeds one frame's elapsed seconds to the scheduler and steps
// the simulation when a generation is due. It reports whether a step ran.
func (g *Game) Advance(dt float64) bool {
	if !g.ticker.Advance(dt) {
		return false
	}
	g.Step()
	return true
}

// Step advances the arena by one generation. Every cell of the next grid
// is computed from the current grid only, then the buffers swap, so no
// cell ever sees a partially updated neighbourhood.
func (g *Game) Step() {
	n := g.cur.N()
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				g.nxt.Set(x, y, z, NextState(g.cur.At(x, y, z), LiveNeighbours(g.cur, x, y, z)))
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Reset clears the arena and reseeds it with a random soup at the given
// density, deterministically for a fixed seed.
func (g *Game) Reset(seed int64, density float64) {
	rng := core.NewRNG(seed).Source()
	core.FillSoup(rng, g.cur.Cells(), density)
	g.nxt.Clear()
	g.generation = 0
}
