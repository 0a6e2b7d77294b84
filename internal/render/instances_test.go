package render

import (
	"math"
	"testing"

	"life3d/internal/core"
	"life3d/internal/life"
)

func TestEmitCentresArena(t *testing.T) {
	e := NewEmitter(2.0)
	g := core.NewGrid(8)
	g.Set(0, 0, 0, core.CellAlive)
	g.Set(4, 4, 4, core.CellAlive)

	instances := e.Emit(g, life.Cursor{X: 7, Y: 7, Z: 7})
	if len(instances) != 2 {
		t.Fatalf("emitted %d instances, expected 2", len(instances))
	}

	// index*cellSize - (n/2)*cellSize with n=8, cellSize=2: index 0 maps
	// to -8, index 4 maps to 0.
	if got := instances[0]; got != (Vec3{-8, -8, -8}) {
		t.Fatalf("instance for (0,0,0) = %v, expected (-8,-8,-8)", got)
	}
	if got := instances[1]; got != (Vec3{0, 0, 0}) {
		t.Fatalf("instance for (4,4,4) = %v, expected origin", got)
	}
}

func TestEmitSkipsCursorCell(t *testing.T) {
	e := NewEmitter(1.0)
	g := core.NewGrid(4)
	g.Set(1, 1, 1, core.CellAlive)
	g.Set(2, 2, 2, core.CellAlive)

	instances := e.Emit(g, life.Cursor{X: 1, Y: 1, Z: 1})
	if len(instances) != 1 {
		t.Fatalf("emitted %d instances, expected 1 (cursor cell excluded)", len(instances))
	}
	want := e.WorldPos(4, 2, 2, 2)
	if instances[0] != want {
		t.Fatalf("remaining instance = %v, expected %v", instances[0], want)
	}

	// A dead cursor cell excludes nothing extra.
	instances = e.Emit(g, life.Cursor{X: 0, Y: 0, Z: 0})
	if len(instances) != 2 {
		t.Fatalf("emitted %d instances with cursor on a dead cell, expected 2", len(instances))
	}
}

func TestEmitDeadArenaIsEmpty(t *testing.T) {
	e := NewEmitter(1.0)
	g := core.NewGrid(4)
	if instances := e.Emit(g, life.Cursor{}); len(instances) != 0 {
		t.Fatalf("emitted %d instances for a dead arena, expected 0", len(instances))
	}
}

type recordingRenderer struct {
	cleared   int
	instances []Vec3
	drawn     int
}

func (r *recordingRenderer) ClearInstances() {
	r.cleared++
	r.instances = r.instances[:0]
}

func (r *recordingRenderer) AddInstance(v Vec3) {
	r.instances = append(r.instances, v)
}

func (r *recordingRenderer) Draw(count int) {
	r.drawn = count
}

func TestEmitToDrivesRenderer(t *testing.T) {
	e := NewEmitter(1.0)
	g := core.NewGrid(4)
	g.Set(0, 1, 2, core.CellAlive)
	g.Set(3, 3, 3, core.CellAlive)

	rec := &recordingRenderer{}
	count := e.EmitTo(rec, g, life.Cursor{X: 3, Y: 3, Z: 3})

	if count != 1 || rec.drawn != 1 {
		t.Fatalf("EmitTo drew %d/%d instances, expected 1", count, rec.drawn)
	}
	if rec.cleared != 1 {
		t.Fatalf("renderer cleared %d times, expected once per frame", rec.cleared)
	}
	if len(rec.instances) != 1 {
		t.Fatalf("renderer received %d instances, expected 1", len(rec.instances))
	}
}

func TestCameraIdentityProjection(t *testing.T) {
	c := &Camera{Scale: 10, CX: 100, CY: 100}

	sx, sy, depth := c.Project(Vec3{X: 1, Y: 2, Z: 3})
	if math.Abs(sx-110) > 1e-9 || math.Abs(sy-80) > 1e-9 {
		t.Fatalf("projected to (%v,%v), expected (110,80)", sx, sy)
	}
	if math.Abs(depth-3) > 1e-9 {
		t.Fatalf("depth = %v, expected 3", depth)
	}
}

func TestCameraPitchClamps(t *testing.T) {
	c := NewCamera(0, 0, 1)
	c.Rotate(0, 10)
	if c.Pitch >= math.Pi/2 {
		t.Fatalf("pitch %v reached the pole", c.Pitch)
	}
	c.Rotate(0, -20)
	if c.Pitch <= -math.Pi/2 {
		t.Fatalf("pitch %v reached the lower pole", c.Pitch)
	}
}
