package life

import "life3d/internal/core"

// Cursor addresses a single editable cell within the arena. It moves one
// step per command along a chosen axis and stays clamped to the arena so
// it is always a valid grid index.
type Cursor struct {
	X, Y, Z int
}

// Move shifts the cursor by delta along the given axis, clamping the
// result into [0, n).
func (c *Cursor) Move(axis core.Axis, delta, n int) {
	switch axis {
	case core.AxisX:
		c.X = clamp(c.X+delta, n)
	case core.AxisY:
		c.Y = clamp(c.Y+delta, n)
	case core.AxisZ:
		c.Z = clamp(c.Z+delta, n)
	}
}

// Flip toggles the grid cell under the cursor. This is an immediate edit
// that bypasses the generational rule.
func (c *Cursor) Flip(g *core.Grid) {
	g.Set(c.X, c.Y, c.Z, g.At(c.X, c.Y, c.Z).Flipped())
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
