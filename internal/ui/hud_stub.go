//go:build !ebiten

package ui

import "mapgen/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Layout, int) *HUD { return nil }

// Update never reports a change in the headless build.
func (h *HUD) Update(int, uint64) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
