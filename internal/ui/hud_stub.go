//go:build !ebiten

package ui

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

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// ToggleHelp is a no-op in headless builds.
func (h *HUD) ToggleHelp() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Status) {}
