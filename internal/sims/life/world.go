package life

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"gol/internal/core"
	"gol/internal/patternio"
	pcore "gol/pkg/core"
	"gol/pkg/lifelike"
)

// World adapts the lifelike engine to the core.Sim contract. It owns the
// current generation, the active rule and a display buffer holding each
// visible cell's age.
type World struct {
	name string
	cfg  Config
	topo lifelike.Topology

	grid       *lifelike.Grid
	generation int
	history    *lifelike.History
	period     int

	display *core.ByteGrid
}

// New returns a Life world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
// Non-positive dimensions fall back to 1.
func NewWithConfig(cfg Config) *World {
	return newNamed("life", cfg)
}

func newNamed(name string, cfg Config) *World {
	cfg.Width = max(cfg.Width, 1)
	cfg.Height = max(cfg.Height, 1)
	cfg.Density = min(max(cfg.Density, 0), 1)
	return &World{
		name:    name,
		cfg:     cfg,
		topo:    lifelike.Topology{Boundary: cfg.Boundary, Width: cfg.Width, Height: cfg.Height},
		grid:    lifelike.NewGrid(),
		history: lifelike.NewHistory(lifelike.DefaultHistoryDepth),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the display buffer: 0 for dead cells, the age (capped at
// 255) for live ones.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Reset reseeds the board at random. A zero seed falls back to the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	area := lifelike.Topology{Boundary: lifelike.Clamped, Width: w.cfg.Width, Height: w.cfg.Height}
	g, err := lifelike.Random(area, w.cfg.Density, pcore.NewRNG(seed).Source())
	if err != nil {
		// Dimensions are forced positive at construction.
		panic(err)
	}
	w.cfg.Seed = seed
	w.replace(g)
}

// Clear kills every cell.
func (w *World) Clear() {
	w.replace(lifelike.NewGrid())
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.history.Record(w.grid)
	next, err := lifelike.Step(w.grid, w.cfg.Rule, w.topo)
	if err != nil {
		// The topology is validated by construction.
		panic(err)
	}
	w.grid = next
	w.generation++
	w.period = w.history.Period(next)
	w.rebuildDisplay()
}

// Toggle flips the cell at (x, y). It reports false, changing nothing, when
// the coordinates fall outside the board.
func (w *World) Toggle(x, y int) bool {
	if !w.display.InBounds(x, y) {
		return false
	}
	c := lifelike.Cell{X: x, Y: y}
	w.grid.Toggle(c)
	w.history.Reset()
	w.period = 0
	w.display.Set(x, y, displayAge(w.grid.Age(c)))
	return true
}

// Rule returns the active rule in canonical B/S form.
func (w *World) Rule() string { return w.cfg.Rule.String() }

// RuleSet returns the active rule.
func (w *World) RuleSet() lifelike.RuleSet { return w.cfg.Rule }

// SetRule parses and installs a new rule. On error the previous rule stays
// in effect and the *lifelike.ParseError is returned.
func (w *World) SetRule(rule string) error {
	parsed, err := lifelike.ParseRule(rule)
	if err != nil {
		return err
	}
	w.cfg.Rule = parsed
	w.history.Reset()
	w.period = 0
	return nil
}

// Boundary returns the active boundary mode.
func (w *World) Boundary() lifelike.Boundary { return w.topo.Boundary }

// SetBoundary switches the boundary mode. Live cells are fitted to the new
// topology right away: wrapped onto a torus, dropped outside a clamped board.
func (w *World) SetBoundary(b lifelike.Boundary) {
	w.cfg.Boundary = b
	w.topo.Boundary = b
	w.grid = lifelike.Fit(w.grid, w.topo)
	w.history.Reset()
	w.period = 0
	w.rebuildDisplay()
}

// Topology returns the topology used by Step.
func (w *World) Topology() lifelike.Topology { return w.topo }

// Generation returns the number of steps since the last reset or load.
func (w *World) Generation() int { return w.generation }

// Population returns the number of live cells.
func (w *World) Population() int { return w.grid.Len() }

// Seed returns the seed used by the most recent random reset.
func (w *World) Seed() int64 { return w.cfg.Seed }

// Grid returns a copy of the current generation.
func (w *World) Grid() *lifelike.Grid { return w.grid.Clone() }

// Status summarizes the world for display. Still and oscillating boards are
// recognized through the recent generation history.
func (w *World) Status() string {
	switch {
	case w.grid.Len() == 0:
		return "Extinct"
	case w.period == 1:
		return "Still"
	case w.period > 1:
		return fmt.Sprintf("Oscillating (period %d)", w.period)
	default:
		return "Active"
	}
}

// Save writes the live cells to path in Life 1.06 format.
func (w *World) Save(path string) error {
	comments := []string{
		"rule " + w.Rule(),
		fmt.Sprintf("generation %d", w.generation),
	}
	if err := patternio.SaveFile(path, w.grid.Cells(), comments...); err != nil {
		return errors.Wrapf(err, "[World.Save] failed to save %s", w.name)
	}
	return nil
}

// Load replaces the board with the cells stored at path. Under a toroidal
// boundary coordinates are wrapped; under a clamped boundary a cell outside
// the board rejects the whole file. The current board is untouched on error.
func (w *World) Load(path string) error {
	cells, err := patternio.LoadFile(path)
	if err != nil {
		return err
	}
	fitted := make([]lifelike.Cell, 0, len(cells))
	for _, c := range cells {
		nc, ok := w.topo.Normalize(c)
		if !ok {
			return &patternio.LoadError{
				Path: path,
				Err:  errors.Errorf("cell (%d, %d) lies outside the %dx%d board", c.X, c.Y, w.cfg.Width, w.cfg.Height),
			}
		}
		fitted = append(fitted, nc)
	}
	w.replace(lifelike.FromCells(fitted))
	return nil
}

func (w *World) replace(g *lifelike.Grid) {
	w.grid = g
	w.generation = 0
	w.history.Reset()
	w.period = 0
	w.rebuildDisplay()
}

func (w *World) rebuildDisplay() {
	w.display.Clear()
	w.grid.Each(func(c lifelike.Cell, age int) bool {
		w.display.Set(c.X, c.Y, displayAge(age))
		return true
	})
}

func displayAge(age int) uint8 {
	if age <= 0 {
		return 0
	}
	return uint8(min(age, math.MaxUint8))
}
