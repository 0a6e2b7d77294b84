//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the per-frame state summary shown by the HUD.
type Status struct {
	Generation int
	Population int
	Instances  int
	Speed      int
	Paused     bool
	CursorX    int
	CursorY    int
	CursorZ    int
}

// HUD renders the status lines in the top-left corner of the screen.
type HUD struct {
	showHelp bool
}

// NewHUD constructs a HUD with the help panel visible.
func NewHUD() *HUD {
	return &HUD{showHelp: true}
}

// ToggleHelp shows or hides the key reference.
func (h *HUD) ToggleHelp() { h.showHelp = !h.showHelp }

// Draw renders the HUD on top of the scene.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d  drawn %d", st.Generation, st.Population, st.Instances),
		fmt.Sprintf("speed %dx  %s", st.Speed, state),
		fmt.Sprintf("cursor (%d, %d, %d)", st.CursorX, st.CursorY, st.CursorZ),
	}
	if h.showHelp {
		lines = append(lines,
			"",
			"arrows/pgup/pgdn: cursor   f: flip cell",
			"space: pause   -/=: speed   i/j/k/l: orbit",
			"tab: slice   r: reset   s: reseed   h: help   q: quit",
		)
	}

	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, color.White)
	}
}
