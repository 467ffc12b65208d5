package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"gol/internal/core"
)

const knobRadius = 8

// slider maps a horizontal track onto a numeric parameter. The knob travels
// from track.Min.X (the minimum) to track.Max.X (the maximum).
type slider struct {
	control  core.ParameterControl
	track    image.Rectangle
	value    float64
	hasValue bool
	dragging bool
}

func (s *slider) bounds() (lo, hi float64) {
	if s.control.HasMin {
		lo = s.control.Min
	}
	hi = lo + 1
	if s.control.HasMax && s.control.Max > lo {
		hi = s.control.Max
	}
	return lo, hi
}

func (s *slider) knobX() int {
	lo, hi := s.bounds()
	f := min(max((s.value-lo)/(hi-lo), 0), 1)
	return s.track.Min.X + int(math.Round(f*float64(s.track.Dx())))
}

// valueAt converts a cursor x position into a parameter value snapped to
// the control's step.
func (s *slider) valueAt(x int) float64 {
	lo, hi := s.bounds()
	f := 0.0
	if s.track.Dx() > 0 {
		f = float64(x-s.track.Min.X) / float64(s.track.Dx())
	}
	v := lo + min(max(f, 0), 1)*(hi-lo)
	if step := s.control.Step; step > 0 {
		v = lo + math.Round((v-lo)/step)*step
	}
	if s.control.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return min(max(v, lo), hi)
}

// grabs reports whether a press at (x, y) lands on the track or the knob.
func (s *slider) grabs(x, y int) bool {
	area := s.track.Inset(-knobRadius)
	return pointInRect(x, y, area)
}

func (s *slider) label() string {
	if !s.hasValue {
		return s.control.Label + ": --"
	}
	if s.control.Type == core.ParamTypeInt {
		return fmt.Sprintf("%s: %d", s.control.Label, int(s.value))
	}
	return fmt.Sprintf("%s: %.2f", s.control.Label, s.value)
}

// load refreshes the slider from a snapshot value.
func (s *slider) load(p core.Parameter, ok bool) {
	s.hasValue = false
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	s.value, s.hasValue = v, true
}
