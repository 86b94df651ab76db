//go:build !ebiten

package app

import (
	"errors"

	"mapgen/internal/core"
)

// ErrNoGUI is returned by the headless build's viewer entry points.
var ErrNoGUI = errors.New("app: the viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(core.Layout, *Config) (*Game, error) { return nil, ErrNoGUI }

// Run reports that the ebiten build tag is required for GUI support.
func Run(core.Layout, *Config) error { return ErrNoGUI }
