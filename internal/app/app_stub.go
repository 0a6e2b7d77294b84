//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"life3d/internal/config"
)

// Run reports that the windowed frontend needs the ebiten build tag. The
// headless TUI remains available in every build.
func Run(*config.Config) error {
	return errors.New("the windowed frontend requires building with the 'ebiten' tag; use --headless or rebuild with -tags ebiten")
}
