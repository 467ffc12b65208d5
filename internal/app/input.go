package app

import "gol/internal/core"

// CellAt maps a screen position to board coordinates. ok is false when the
// position lies outside the board, e.g. over the HUD panel.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if !size.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
