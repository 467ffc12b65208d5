package ui

import "image"

const (
	menuButtonWidth  = 160
	menuButtonHeight = 32
	menuButtonGap    = 12
)

// MenuState carries what the overlay shows on a given frame.
type MenuState struct {
	Open      bool
	Prompting bool
	Prompt    string
	Status    string
}

// layoutMenu stacks n buttons centered in a w by h area.
func layoutMenu(n, w, h int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	total := n*menuButtonHeight + (n-1)*menuButtonGap
	x := (w - menuButtonWidth) / 2
	y := (h - total) / 2
	rects := make([]image.Rectangle, n)
	for i := range rects {
		top := y + i*(menuButtonHeight+menuButtonGap)
		rects[i] = image.Rect(x, top, x+menuButtonWidth, top+menuButtonHeight)
	}
	return rects
}

// hitButton returns the index of the button containing (x, y), or -1.
func hitButton(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
