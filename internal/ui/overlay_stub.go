//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay([]string) *Overlay { return &Overlay{} }

// Update never reports a click in headless builds.
func (o *Overlay) Update(MenuState, int, int) int { return -1 }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, MenuState) {}
