//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"life3d/internal/core"
	"life3d/internal/life"
)

// SlicePainter draws one Z-layer of the arena as a flat cell map. The GUI
// uses it as an inset so the layer under the cursor can be read and edited
// at a glance.
type SlicePainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewSlicePainter allocates a painter for an arena of edge length n.
func NewSlicePainter(n int) *SlicePainter {
	sp := &SlicePainter{n: n, buf: make([]byte, 4*n*n)}
	sp.img = ebiten.NewImage(n, n)
	return sp
}

// Blit uploads the layer at the cursor's Z coordinate and draws it at
// (ox, oy) with the given pixel scale. The cursor cell is tinted with the
// highlight colour regardless of its state.
func (sp *SlicePainter) Blit(dst *ebiten.Image, g *core.Grid, cursor life.Cursor, on, off, highlight color.RGBA, ox, oy float64, scale int) {
	if g.N() != sp.n {
		return
	}
	for y := 0; y < sp.n; y++ {
		for x := 0; x < sp.n; x++ {
			col := off
			if g.At(x, y, cursor.Z).IsAlive() {
				col = on
			}
			if x == cursor.X && y == cursor.Y {
				col = highlight
			}
			base := (y*sp.n + x) * 4
			sp.buf[base+0] = col.R
			sp.buf[base+1] = col.G
			sp.buf[base+2] = col.B
			sp.buf[base+3] = col.A
		}
	}
	sp.img.ReplacePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(sp.img, op)
}
