//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 233, G: 232, B: 232, A: 255}
	boxFill         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	boxBorder       = color.RGBA{R: 32, G: 38, B: 46, A: 255}
	knobColor       = color.RGBA{R: 205, G: 88, B: 136, A: 255}
	dimText         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
)

const (
	panelPadding  = 10
	boxBorderPx   = 3
	textLine      = 16
	sliderBoxH    = 56
	sliderTrackPx = 4
)

// HUD renders the side panel: a slider box per adjustable parameter, the
// statistics box, the remaining values and a status line.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	status string

	snapshot    core.ParameterSnapshot
	sliders     []slider
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := panelPadding + i*(sliderBoxH+panelPadding)
			trackY := top + sliderBoxH - 18
			inner := panelPadding + boxBorderPx + knobRadius + 4
			h.sliders = append(h.sliders, slider{
				control: ctrl,
				track:   image.Rect(inner, trackY, h.width-inner, trackY+sliderTrackPx),
			})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// SetStatus sets the line shown at the bottom of the panel.
func (h *HUD) SetStatus(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// Update refreshes the snapshot and drags sliders. panelOffsetX is the
// screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.sliders {
		s := &h.sliders[i]
		if !s.dragging {
			s.load(h.snapshot.Lookup(s.control.Key))
		}
	}

	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i := range h.sliders {
			if h.sliders[i].hasValue && h.sliders[i].grabs(px, my) {
				h.sliders[i].dragging = true
			}
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		for i := range h.sliders {
			h.sliders[i].dragging = false
		}
		return
	}
	for i := range h.sliders {
		if s := &h.sliders[i]; s.dragging {
			h.apply(s, s.valueAt(px))
		}
	}
}

func (h *HUD) apply(s *slider, v float64) {
	if v == s.value {
		return
	}
	ok := false
	switch s.control.Type {
	case core.ParamTypeInt:
		ok = h.intSetter != nil && h.intSetter.SetIntParameter(s.control.Key, int(v))
	case core.ParamTypeFloat:
		ok = h.floatSetter != nil && h.floatSetter.SetFloatParameter(s.control.Key, v)
	}
	if ok {
		s.value = v
	}
}

// Draw paints the panel to the right of the board at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	for i := range h.sliders {
		s := &h.sliders[i]
		top := panelPadding + i*(sliderBoxH+panelPadding)
		h.drawBox(top, sliderBoxH)
		text.Draw(h.panel, s.label(), face, s.track.Min.X-knobRadius, top+boxBorderPx+textLine, boxBorder)
		midY := float32(s.track.Min.Y + s.track.Dy()/2)
		vector.StrokeLine(h.panel, float32(s.track.Min.X), midY, float32(s.track.Max.X), midY, sliderTrackPx, boxBorder, false)
		if s.hasValue {
			vector.DrawFilledCircle(h.panel, float32(s.knobX()), midY, knobRadius, knobColor, true)
		}
	}

	stats, info := panelLines(h.snapshot, h.sliderKeys())
	y := panelPadding + len(h.sliders)*(sliderBoxH+panelPadding)
	if len(stats) > 0 {
		boxH := len(stats)*textLine + 2*panelPadding
		h.drawBox(y, boxH)
		for i, line := range stats {
			text.Draw(h.panel, line, face, 2*panelPadding, y+panelPadding+(i+1)*textLine-3, boxBorder)
		}
		y += boxH + panelPadding
	}
	for _, line := range info {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, dimText)
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, height-panelPadding, knobColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawBox draws a white box with a dark border across the panel width.
func (h *HUD) drawBox(top, height int) {
	x := float32(panelPadding)
	w := float32(h.width - 2*panelPadding)
	vector.DrawFilledRect(h.panel, x, float32(top), w, float32(height), boxFill, false)
	vector.StrokeRect(h.panel, x, float32(top), w, float32(height), boxBorderPx, boxBorder, false)
}

func (h *HUD) sliderKeys() map[string]bool {
	keys := make(map[string]bool, len(h.sliders))
	for _, s := range h.sliders {
		keys[s.control.Key] = true
	}
	return keys
}
