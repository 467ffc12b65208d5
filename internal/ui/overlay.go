//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	shadeColor   = color.RGBA{R: 32, G: 38, B: 46, A: 200}
	buttonColor  = color.RGBA{R: 205, G: 88, B: 136, A: 255}
	hoverColor   = color.RGBA{R: 145, G: 49, B: 117, A: 255}
	labelColor   = color.RGBA{R: 233, G: 232, B: 232, A: 255}
	promptBox    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	statusColour = color.RGBA{R: 233, G: 232, B: 232, A: 255}
)

// Overlay draws the main menu and the rule prompt over the board.
type Overlay struct {
	labels  []string
	buttons []image.Rectangle
	w, h    int
	hover   int

	shade *ebiten.Image
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay whose menu shows the given labels.
func NewOverlay(labels []string) *Overlay {
	o := &Overlay{labels: labels, hover: -1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update lays the menu out over a w by h board and returns the index of
// the clicked menu button, or -1.
func (o *Overlay) Update(state MenuState, w, h int) int {
	if o.w != w || o.h != h || len(o.buttons) != len(o.labels) {
		o.w, o.h = w, h
		o.buttons = layoutMenu(len(o.labels), w, h)
	}
	o.hover = -1
	if !state.Open || state.Prompting {
		return -1
	}
	mx, my := ebiten.CursorPosition()
	o.hover = hitButton(o.buttons, mx, my)
	if o.hover >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return o.hover
	}
	return -1
}

// Draw paints the menu, the prompt or just the status line.
func (o *Overlay) Draw(screen *ebiten.Image, state MenuState) {
	switch {
	case state.Prompting:
		o.drawShade(screen)
		o.drawPrompt(screen, state.Prompt)
	case state.Open:
		o.drawShade(screen)
		for i, r := range o.buttons {
			bg := buttonColor
			if i == o.hover {
				bg = hoverColor
			}
			o.fillRect(screen, r, bg)
			drawCentered(screen, o.labels[i], r, labelColor)
		}
	}
	if state.Status != "" {
		text.Draw(screen, state.Status, basicfont.Face7x13, 8, o.h-8, statusColour)
	}
}

func (o *Overlay) drawShade(screen *ebiten.Image) {
	if o.w <= 0 || o.h <= 0 {
		return
	}
	if o.shade == nil || o.shade.Bounds().Dx() != o.w || o.shade.Bounds().Dy() != o.h {
		o.shade = ebiten.NewImage(o.w, o.h)
	}
	o.shade.Fill(shadeColor)
	screen.DrawImage(o.shade, nil)
}

func (o *Overlay) drawPrompt(screen *ebiten.Image, prompt string) {
	face := basicfont.Face7x13
	box := image.Rect(o.w/2-menuButtonWidth, o.h/2-menuButtonHeight/2, o.w/2+menuButtonWidth, o.h/2+menuButtonHeight/2)
	text.Draw(screen, "Rule (e.g. B36/S23), Enter to apply, Esc to cancel", face, box.Min.X, box.Min.Y-menuButtonGap, labelColor)
	o.fillRect(screen, box, promptBox)
	bounds := text.BoundString(face, "Ag")
	y := box.Min.Y + (box.Dy()+bounds.Dy())/2
	text.Draw(screen, prompt+"_", face, box.Min.X+8, y, labelColor)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}

func drawCentered(screen *ebiten.Image, label string, r image.Rectangle, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, c)
}
