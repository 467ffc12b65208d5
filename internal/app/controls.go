package app

import "gol/internal/core"

const tpsKey = "tps"

// hudSource presents the controller's playback settings next to the sim's
// own parameters so a single HUD can show and adjust both.
type hudSource struct {
	core.Sim
	ctrl *Controller
}

func newHUDSource(ctrl *Controller) *hudSource {
	return &hudSource{Sim: ctrl.Sim(), ctrl: ctrl}
}

// Parameters implements core.ParameterProvider.
func (h *hudSource) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if p, ok := h.Sim.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	state := "Running"
	switch {
	case h.ctrl.Prompting():
		state = "Editing rule"
	case h.ctrl.MenuOpen():
		state = "Menu"
	case h.ctrl.Paused():
		state = "Paused"
	}
	playback := core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			core.IntParam(tpsKey, "Speed (tps)", h.ctrl.TPS()),
			core.StringParam("state", "State", state),
		},
	}
	snap.Groups = append([]core.ParameterGroup{playback}, snap.Groups...)
	return snap
}

// ParameterControls implements core.ParameterControlsProvider.
func (h *hudSource) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{{
		Key:    tpsKey,
		Label:  "Speed (tps)",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    float64(h.ctrl.minTPS),
		Max:    float64(h.ctrl.maxTPS),
		HasMin: true,
		HasMax: true,
	}}
	if p, ok := h.Sim.(core.ParameterControlsProvider); ok {
		controls = append(controls, p.ParameterControls()...)
	}
	return controls
}

// SetIntParameter implements core.IntParameterSetter.
func (h *hudSource) SetIntParameter(key string, value int) bool {
	if key == tpsKey {
		h.ctrl.SetTPS(value)
		return true
	}
	if s, ok := h.Sim.(core.IntParameterSetter); ok {
		return s.SetIntParameter(key, value)
	}
	return false
}

// SetFloatParameter implements core.FloatParameterSetter.
func (h *hudSource) SetFloatParameter(key string, value float64) bool {
	if s, ok := h.Sim.(core.FloatParameterSetter); ok {
		return s.SetFloatParameter(key, value)
	}
	return false
}
