// Package render turns the simulation's cell grid into per-frame draw data:
// a flat list of world-space cube positions for instanced drawing, plus the
// CPU-side projection and slice views used by the built-in frontends.
package render

import (
	"life3d/internal/core"
	"life3d/internal/life"
)

// Vec3 is a world-space position handed to the renderer.
type Vec3 struct {
	X, Y, Z float32
}

// Renderer consumes one frame's worth of cell instances.
type Renderer interface {
	ClearInstances()
	AddInstance(Vec3)
	Draw(count int)
}

// Emitter converts living cells into world-space instance positions. The
// arena is centred on the origin: grid index i maps to i*cellSize minus
// half the arena extent, per axis. The list is rebuilt from scratch every
// frame into a reused buffer.
type Emitter struct {
	cellSize float64
	buf      []Vec3
}

// NewEmitter constructs an emitter with the given cell edge length in
// world units.
func NewEmitter(cellSize float64) *Emitter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Emitter{cellSize: cellSize}
}

// CellSize returns the cell edge length in world units.
func (e *Emitter) CellSize() float64 { return e.cellSize }

// WorldPos maps the grid index (x, y, z) of an arena with edge length n
// to its world-space position.
func (e *Emitter) WorldPos(n, x, y, z int) Vec3 {
	half := float64(n/2) * e.cellSize
	return Vec3{
		X: float32(float64(x)*e.cellSize - half),
		Y: float32(float64(y)*e.cellSize - half),
		Z: float32(float64(z)*e.cellSize - half),
	}
}

// Emit rebuilds and returns the instance list for every living cell,
// skipping the cell under the cursor: that one is drawn separately so it
// can be highlighted whether it is alive or dead. The returned slice is
// valid until the next call.
func (e *Emitter) Emit(g *core.Grid, cursor life.Cursor) []Vec3 {
	e.buf = e.buf[:0]
	n := g.N()
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if !g.At(x, y, z).IsAlive() {
					continue
				}
				if x == cursor.X && y == cursor.Y && z == cursor.Z {
					continue
				}
				e.buf = append(e.buf, e.WorldPos(n, x, y, z))
			}
		}
	}
	return e.buf
}

// EmitTo feeds one frame of instances to the renderer and issues the
// draw call. It returns the instance count.
func (e *Emitter) EmitTo(r Renderer, g *core.Grid, cursor life.Cursor) int {
	instances := e.Emit(g, cursor)
	r.ClearInstances()
	for _, pos := range instances {
		r.AddInstance(pos)
	}
	r.Draw(len(instances))
	return len(instances)
}
