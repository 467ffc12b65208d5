package life

import (
	"gol/internal/core"
)

// Parameters reports the world's configuration and population counters.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.StringParam("boundary", "Boundary", w.topo.Boundary.String()),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", w.Rule()),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", w.generation),
				core.IntParam("live", "Live cells", w.grid.Len()),
				core.StringParam("status", "Status", w.Status()),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("density", "Seed density", w.cfg.Density),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "density",
			Label:  "Seed density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a floating point parameter. Density takes
// effect on the next reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		w.cfg.Density = min(max(value, 0), 1)
		return true
	default:
		return false
	}
}
