package core

// Cell is the binary state of a single arena position.
type Cell uint8

const (
	// CellDead marks an empty position.
	CellDead Cell = 0
	// CellAlive marks a living position.
	CellAlive Cell = 1
)

// IsAlive reports whether the cell is living.
func (c Cell) IsAlive() bool { return c == CellAlive }

// IsDead reports whether the cell is empty.
func (c Cell) IsDead() bool { return !c.IsAlive() }

// Flipped returns the opposite state.
func (c Cell) Flipped() Cell {
	if c.IsAlive() {
		return CellDead
	}
	return CellAlive
}

// Axis identifies one of the three arena axes.
type Axis int

const (
	// AxisX addresses the first coordinate.
	AxisX Axis = iota
	// AxisY addresses the second coordinate.
	AxisY
	// AxisZ addresses the third coordinate.
	AxisZ
)
