package ui

import "gol/internal/core"

// statKeys are the parameters shown in the statistics box, in order.
var statKeys = []string{"generation", "live", "rule", "status", "state"}

// panelLines splits a snapshot into the statistics box and the remaining
// read-only values. Keys in skip (the slider-backed ones) appear in neither.
func panelLines(snap core.ParameterSnapshot, skip map[string]bool) (stats, info []string) {
	shown := map[string]bool{}
	for _, key := range statKeys {
		if p, ok := snap.Lookup(key); ok && !skip[key] {
			stats = append(stats, p.Label+": "+p.Value)
			shown[key] = true
		}
	}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if shown[p.Key] || skip[p.Key] {
				continue
			}
			info = append(info, p.Label+": "+p.Value)
		}
	}
	return stats, info
}
