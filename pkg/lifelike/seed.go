package lifelike

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Random fills a bounded topology with live cells, each alive with
// probability density (clamped to [0, 1]).
func Random(t Topology, density float64, rng *rand.Rand) (*Grid, error) {
	if t.Boundary == Unbounded {
		return nil, errors.New("lifelike: random seeding needs a bounded topology")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	density = min(max(density, 0), 1)

	g := NewGrid()
	for y := range t.Height {
		for x := range t.Width {
			if rng.Float64() < density {
				g.cells[Cell{X: x, Y: y}] = 1
			}
		}
	}
	return g, nil
}

// Pattern is a set of live-cell offsets relative to an origin.
type Pattern []Cell

var (
	// Glider travels one cell diagonally (+1, +1) every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Blinker is a period-2 oscillator, horizontal phase.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Block is the 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Stamp sets every cell of p, offset by origin, alive in g.
func Stamp(g *Grid, p Pattern, origin Cell) {
	for _, c := range p {
		g.Set(origin.Add(c), true)
	}
}

// Translate returns p shifted by d.
func (p Pattern) Translate(d Cell) Pattern {
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = c.Add(d)
	}
	return out
}
