package lifelike

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// Cell is an integer coordinate on the plane.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Y: c.Y + d.Y} }

// Grid is a sparse set of live cells, each mapped to its age in generations.
// Absence from the map means the cell is dead.
type Grid struct {
	cells map[Cell]int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Cell]int)}
}

// FromCells builds a grid with every listed cell alive at age 1. Duplicates
// collapse into a single entry.
func FromCells(cells []Cell) *Grid {
	g := &Grid{cells: make(map[Cell]int, len(cells))}
	for _, c := range cells {
		g.cells[c] = 1
	}
	return g
}

// Contains reports whether c is alive.
func (g *Grid) Contains(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Age returns the age of c, or 0 when c is dead.
func (g *Grid) Age(c Cell) int { return g.cells[c] }

// Toggle kills a live cell or brings a dead one to life at age 1.
func (g *Grid) Toggle(c Cell) {
	if _, ok := g.cells[c]; ok {
		delete(g.cells, c)
		return
	}
	g.cells[c] = 1
}

// Set forces c alive (keeping its age if already alive) or dead.
func (g *Grid) Set(c Cell, alive bool) {
	if !alive {
		delete(g.cells, c)
		return
	}
	if _, ok := g.cells[c]; !ok {
		g.cells[c] = 1
	}
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.cells) }

// Clear kills every cell.
func (g *Grid) Clear() { clear(g.cells) }

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{cells: make(map[Cell]int, len(g.cells))}
	for c, age := range g.cells {
		out.cells[c] = age
	}
	return out
}

// Each calls fn for every live cell until fn returns false. Order is
// unspecified.
func (g *Grid) Each(fn func(c Cell, age int) bool) {
	for c, age := range g.cells {
		if !fn(c, age) {
			return
		}
	}
}

// Equal reports whether both grids hold the same live cells. Ages are
// ignored.
func (g *Grid) Equal(o *Grid) bool {
	if g.Len() != o.Len() {
		return false
	}
	for c := range g.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Cells returns the live cells in row-major order (by Y, then X).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Bounds returns the inclusive bounding box of the live cells. ok is false
// for an empty grid.
func (g *Grid) Bounds() (lo, hi Cell, ok bool) {
	for c := range g.cells {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Hash returns a digest of the live set, independent of ages and iteration
// order.
func (g *Grid) Hash() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range g.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
