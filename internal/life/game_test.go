package life

import (
	"testing"

	"life3d/internal/core"
)

func TestStepDeadArenaStaysDead(t *testing.T) {
	g := New(6, 0.25)
	g.Step()
	if pop := g.Population(); pop != 0 {
		t.Fatalf("population after stepping a dead arena = %d, expected 0", pop)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a := New(8, 0.25)
	b := New(8, 0.25)
	a.Reset(42, 0.3)
	b.Reset(42, 0.3)

	for i := 0; i < 4; i++ {
		a.Step()
		b.Step()
	}

	ca, cb := a.Grid().Cells(), b.Grid().Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("grids diverged at linear index %d after identical steps", i)
		}
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	// A lone birth site: exactly 5 living neighbours around (2,2,2). If
	// the stepper leaked freshly written cells into the same scan, the
	// neighbour counts of nearby cells would shift and this result would
	// depend on scan order.
	g := New(6, 0.25)
	grid := g.Grid()
	grid.Set(1, 2, 2, core.CellAlive)
	grid.Set(3, 2, 2, core.CellAlive)
	grid.Set(2, 1, 2, core.CellAlive)
	grid.Set(2, 3, 2, core.CellAlive)
	grid.Set(2, 2, 1, core.CellAlive)

	g.Step()

	if !g.Grid().At(2, 2, 2).IsAlive() {
		t.Fatal("cell with exactly 5 living neighbours should be born")
	}
}

func TestAdvanceStepsOncePerThreshold(t *testing.T) {
	g := New(4, 0.25)
	g.Grid().Set(1, 1, 1, core.CellAlive)

	if g.Advance(0.3) {
		t.Fatal("no step should fire on the accumulating frame")
	}
	if !g.Advance(0.0) {
		t.Fatal("a step should fire once progress crossed the threshold")
	}
	if got := g.Generation(); got != 1 {
		t.Fatalf("generation = %d, expected 1", got)
	}

	// The spike's excess was discarded; nothing further is due.
	if g.Advance(0.0) {
		t.Fatal("second step fired without re-accumulating progress")
	}
}

func TestAdvanceWhilePaused(t *testing.T) {
	g := New(4, 0.25)
	g.Ticker().TogglePause()

	for i := 0; i < 10; i++ {
		if g.Advance(0.1) {
			t.Fatal("paused game advanced a generation")
		}
	}
	if got := g.Generation(); got != 0 {
		t.Fatalf("generation = %d while paused, expected 0", got)
	}
}

func TestFlipAtCursorIsSelfInverse(t *testing.T) {
	g := New(4, 0.25)
	g.MoveCursor(core.AxisX, 1)
	g.MoveCursor(core.AxisY, 1)

	before := g.Grid().At(1, 1, 0)
	g.FlipAtCursor()
	if g.Grid().At(1, 1, 0) == before {
		t.Fatal("flip did not change the cell state")
	}
	g.FlipAtCursor()
	if got := g.Grid().At(1, 1, 0); got != before {
		t.Fatalf("double flip left state %v, expected original %v", got, before)
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	g := New(4, 0.25)

	for i := 0; i < 10; i++ {
		g.MoveCursor(core.AxisX, -1)
	}
	if got := g.Cursor().X; got != 0 {
		t.Fatalf("cursor X = %d after moving past the low edge, expected 0", got)
	}

	for i := 0; i < 10; i++ {
		g.MoveCursor(core.AxisX, 1)
	}
	if got := g.Cursor().X; got != 3 {
		t.Fatalf("cursor X = %d after moving past the high edge, expected 3", got)
	}

	// The clamped cursor must always address a valid cell.
	g.FlipAtCursor()
	if !g.Grid().At(3, 0, 0).IsAlive() {
		t.Fatal("flip at the clamped cursor did not hit (3,0,0)")
	}
}

func TestResetIsDeterministicPerSeed(t *testing.T) {
	a := New(6, 0.25)
	b := New(6, 0.25)
	a.Reset(99, 0.4)
	b.Reset(99, 0.4)

	if a.Population() == 0 {
		t.Fatal("reset with density 0.4 produced an empty arena")
	}
	ca, cb := a.Grid().Cells(), b.Grid().Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("identical seeds produced different soups at index %d", i)
		}
	}

	a.Reset(100, 0.4)
	diff := false
	for i := range ca {
		if ca[i] != cb[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatal("different seeds produced identical soups")
	}
}
