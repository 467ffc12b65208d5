package life

import "image/color"

// Age thresholds for coloring: newborns, young cells (ages 2-4) and old
// cells (5 and above).
const (
	ageNewborn = 1
	ageOld     = 5
)

var (
	colorBackground = color.RGBA{R: 233, G: 232, B: 232, A: 255}
	colorNewborn    = color.RGBA{R: 205, G: 88, B: 136, A: 255}
	colorYoung      = color.RGBA{R: 145, G: 49, B: 117, A: 255}
	colorOld        = color.RGBA{R: 32, G: 38, B: 46, A: 255}
)

var lifePalette = buildLifePalette()

// Palette maps display values (cell ages) to colors. Ages beyond the last
// entry use the last color.
func (w *World) Palette() []color.RGBA {
	return lifePalette
}

func buildLifePalette() []color.RGBA {
	palette := make([]color.RGBA, ageOld+1)
	for age := range palette {
		palette[age] = ageColor(age)
	}
	return palette
}

func ageColor(age int) color.RGBA {
	switch {
	case age <= 0:
		return colorBackground
	case age == ageNewborn:
		return colorNewborn
	case age < ageOld:
		return colorYoung
	default:
		return colorOld
	}
}
