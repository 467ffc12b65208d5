package life

import (
	"gol/internal/core"
	"gol/pkg/lifelike"
)

func init() {
	for _, preset := range lifelike.Presets() {
		core.Register(preset.Name, factoryFor(preset))
	}
}

// factoryFor builds worlds that start with the preset's rule unless the
// configuration map names another one.
func factoryFor(preset lifelike.Preset) core.Factory {
	return func(cfg map[string]string) core.Sim {
		base := DefaultConfig()
		base.Rule = preset.Rule
		return newNamed(preset.Name, fromMap(base, cfg))
	}
}
