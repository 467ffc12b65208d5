//go:build !ebiten

package ui

import "gol/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
