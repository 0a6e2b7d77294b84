//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/life"
	"life3d/internal/render"
	"life3d/internal/ui"
)

const orbitSpeed = 0.035 // radians per frame while a rotate key is held

// Game adapts the simulation to the ebiten.Game interface: it maps input
// to cursor and scheduler commands, paces generations against wall-clock
// time and draws the emitted instances with a depth-sorted orthographic
// projection.
type Game struct {
	sim     *life.Game
	emitter *render.Emitter
	camera  *render.Camera
	slice   *render.SlicePainter
	hud     *ui.HUD

	cfg       *config.Config
	pixel     *ebiten.Image
	lastFrame time.Time
	showSlice bool
	drawn     int

	scratch []projected
}

type projected struct {
	x, y  float64
	depth float64
	shade float64
}

// New constructs the GUI for the provided simulation.
func New(sim *life.Game, cfg *config.Config) *Game {
	extent := float64(cfg.ArenaSize) * cfg.CellSize
	scale := 0.55 * float64(minInt(cfg.WindowWidth, cfg.WindowHeight)) / extent

	g := &Game{
		sim:     sim,
		emitter: render.NewEmitter(cfg.CellSize),
		camera:  render.NewCamera(float64(cfg.WindowWidth)/2, float64(cfg.WindowHeight)/2, scale),
		slice:   render.NewSlicePainter(cfg.ArenaSize),
		hud:     ui.NewHUD(),
		cfg:     cfg,
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Ticker().TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.sim.Ticker().SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sim.Ticker().SlowDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sim.MoveCursor(core.AxisX, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sim.MoveCursor(core.AxisX, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.MoveCursor(core.AxisY, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.MoveCursor(core.AxisY, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.sim.MoveCursor(core.AxisZ, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.sim.MoveCursor(core.AxisZ, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.sim.FlipAtCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showSlice = !g.showSlice
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.cfg.Seed, g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Reset(time.Now().UnixNano(), g.cfg.Density)
	}

	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		g.camera.Rotate(-orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		g.camera.Rotate(orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyI) {
		g.camera.Rotate(0, orbitSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		g.camera.Rotate(0, -orbitSpeed)
	}

	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	g.sim.Advance(dt)
	return nil
}

// Draw renders the arena, the cursor highlight, the optional slice inset
// and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 16, A: 255})

	instances := g.emitter.Emit(g.sim.Grid(), g.sim.Cursor())
	g.drawn = len(instances)

	extent := float64(g.cfg.ArenaSize) * g.cfg.CellSize
	g.scratch = g.scratch[:0]
	for _, pos := range instances {
		sx, sy, depth := g.camera.Project(pos)
		shade := 0.35 + 0.65*clamp01(0.5-depth/(1.5*extent))
		g.scratch = append(g.scratch, projected{x: sx, y: sy, depth: depth, shade: shade})
	}
	sort.Slice(g.scratch, func(i, j int) bool { return g.scratch[i].depth > g.scratch[j].depth })

	side := g.camera.Scale * g.cfg.CellSize * 0.85
	for _, p := range g.scratch {
		g.drawQuad(screen, p.x, p.y, side, color.RGBA{
			R: uint8(90 + 150*p.shade),
			G: uint8(200 * p.shade),
			B: uint8(120 + 130*p.shade),
			A: 255,
		})
	}

	// The cursor cell draws on top, highlighted whether alive or dead.
	cur := g.sim.Cursor()
	cx, cy, _ := g.camera.Project(g.emitter.WorldPos(g.cfg.ArenaSize, cur.X, cur.Y, cur.Z))
	g.drawQuad(screen, cx, cy, side*1.15, color.RGBA{R: 255, G: 80, B: 80, A: 255})

	if g.showSlice {
		g.slice.Blit(screen, g.sim.Grid(), cur,
			color.RGBA{R: 120, G: 220, B: 150, A: 255},
			color.RGBA{R: 26, G: 28, B: 38, A: 255},
			color.RGBA{R: 255, G: 80, B: 80, A: 255},
			float64(g.cfg.WindowWidth-g.cfg.ArenaSize*4-12), 12, 4)
	}

	g.hud.Draw(screen, ui.Status{
		Generation: g.sim.Generation(),
		Population: g.sim.Population(),
		Instances:  g.drawn,
		Speed:      g.sim.Ticker().Speed(),
		Paused:     g.sim.Ticker().Paused(),
		CursorX:    cur.X,
		CursorY:    cur.Y,
		CursorZ:    cur.Z,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

func (g *Game) drawQuad(dst *ebiten.Image, x, y, side float64, col color.RGBA) {
	if side < 1 {
		side = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(side, side)
	op.GeoM.Translate(x-side/2, y-side/2)
	op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	dst.DrawImage(g.pixel, op)
}

// Run starts the windowed frontend and blocks until it exits.
func Run(cfg *config.Config) error {
	sim := life.New(cfg.ArenaSize, cfg.TickInterval)
	sim.Reset(cfg.Seed, cfg.Density)

	game := New(sim, cfg)
	ebiten.SetWindowTitle("life3d")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
