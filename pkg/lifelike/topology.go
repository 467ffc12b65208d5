package lifelike

import (
	"strings"

	"github.com/pkg/errors"
)

// Boundary selects how coordinates at the grid edge behave.
type Boundary uint8

const (
	// Clamped grids have hard edges; cells outside [0,W)x[0,H) do not exist.
	Clamped Boundary = iota
	// Toroidal grids wrap both axes.
	Toroidal
	// Unbounded grids ignore width and height entirely.
	Unbounded
)

// ErrInvalidDimensions is returned when a bounded topology has a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("lifelike: width and height must be positive")

func (b Boundary) String() string {
	switch b {
	case Clamped:
		return "clamped"
	case Toroidal:
		return "toroidal"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// ParseBoundary maps a boundary name (case-insensitive) to its value.
// "wrap" and "torus" are accepted as aliases for toroidal.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamped", "bounded":
		return Clamped, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "unbounded", "infinite":
		return Unbounded, nil
	}
	return Clamped, errors.Errorf("lifelike: unknown boundary %q", s)
}

// Topology bundles a boundary mode with the grid dimensions it applies to.
type Topology struct {
	Boundary Boundary
	Width    int
	Height   int
}

// Validate reports ErrInvalidDimensions for bounded modes without a
// positive area.
func (t Topology) Validate() error {
	if t.Boundary == Unbounded {
		return nil
	}
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%s %dx%d", t.Boundary, t.Width, t.Height)
	}
	return nil
}

// Normalize maps c onto the topology. ok is false when c lies outside a
// clamped grid.
func (t Topology) Normalize(c Cell) (Cell, bool) {
	switch t.Boundary {
	case Toroidal:
		return Cell{X: wrap(c.X, t.Width), Y: wrap(c.Y, t.Height)}, true
	case Clamped:
		return c, c.X >= 0 && c.X < t.Width && c.Y >= 0 && c.Y < t.Height
	default:
		return c, true
	}
}

func wrap(v, d int) int {
	return ((v % d) + d) % d
}

// mooreOffsets lists the eight neighbor offsets.
var mooreOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountLiveNeighbors returns how many of the eight Moore neighbors of c are
// alive in g. Live cells of g are fitted to t first, so on a torus a cell
// stored at (W, H) counts as (0, 0). The topology must be valid.
func CountLiveNeighbors(g *Grid, c Cell, t Topology) int {
	return countNeighbors(fit(g, t), c, t)
}

// Fit returns a copy of g mapped onto t. Toroidal boundaries wrap every cell,
// keeping the oldest age where wrapped cells coincide. Clamped boundaries
// drop cells outside the grid. The topology must be valid.
func Fit(g *Grid, t Topology) *Grid {
	fitted := fit(g, t)
	if fitted == g {
		return g.Clone()
	}
	return fitted
}

// fit is Fit without the copy: g itself is returned when every cell
// already lies on t.
func fit(g *Grid, t Topology) *Grid {
	if t.Boundary == Unbounded {
		return g
	}
	inside := true
	for c := range g.cells {
		if nc, ok := t.Normalize(c); !ok || nc != c {
			inside = false
			break
		}
	}
	if inside {
		return g
	}
	out := NewGrid()
	for c, age := range g.cells {
		nc, ok := t.Normalize(c)
		if !ok {
			continue
		}
		out.cells[nc] = max(out.cells[nc], age)
	}
	return out
}

// countNeighbors expects g to be fitted to t already.
func countNeighbors(g *Grid, c Cell, t Topology) int {
	n := 0
	for _, d := range mooreOffsets {
		nb, ok := t.Normalize(c.Add(d))
		if !ok {
			continue
		}
		if g.Contains(nb) {
			n++
		}
	}
	return n
}
