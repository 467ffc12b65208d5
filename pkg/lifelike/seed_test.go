package lifelike

import (
	"math/rand/v2"
	"testing"
)

func TestRandomDeterministic(t *testing.T) {
	topo := Topology{Boundary: Toroidal, Width: 24, Height: 16}
	a, err := Random(topo, 0.4, rand.New(rand.NewPCG(11, 0)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Random(topo, 0.4, rand.New(rand.NewPCG(11, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same grid")
	}
	c, _ := Random(topo, 0.4, rand.New(rand.NewPCG(12, 0)))
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
	a.Each(func(cell Cell, age int) bool {
		if _, ok := (Topology{Boundary: Clamped, Width: topo.Width, Height: topo.Height}).Normalize(cell); !ok {
			t.Fatalf("seeded cell %v outside %dx%d", cell, topo.Width, topo.Height)
		}
		if age != 1 {
			t.Fatalf("seeded cell %v has age %d", cell, age)
		}
		return true
	})
}

func TestRandomDensityExtremes(t *testing.T) {
	topo := Topology{Boundary: Clamped, Width: 10, Height: 7}
	rng := rand.New(rand.NewPCG(1, 2))

	empty, err := Random(topo, -0.5, rng)
	if err != nil || empty.Len() != 0 {
		t.Fatalf("density <= 0 should seed nothing, got %d (%v)", empty.Len(), err)
	}
	full, err := Random(topo, 3, rng)
	if err != nil || full.Len() != 70 {
		t.Fatalf("density >= 1 should fill the grid, got %d (%v)", full.Len(), err)
	}
}

func TestRandomRejectsBadTopology(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if _, err := Random(Topology{Boundary: Unbounded}, 0.5, rng); err == nil {
		t.Fatal("expected error for unbounded topology")
	}
	if _, err := Random(Topology{Boundary: Toroidal}, 0.5, rng); err == nil {
		t.Fatal("expected error for zero dimensions")
	}
}

func TestStamp(t *testing.T) {
	g := NewGrid()
	Stamp(g, Glider, Cell{10, -2})
	if g.Len() != len(Glider) {
		t.Fatalf("expected %d cells, got %d", len(Glider), g.Len())
	}
	for _, c := range Glider {
		if !g.Contains(c.Add(Cell{10, -2})) {
			t.Fatalf("missing stamped cell %v", c)
		}
	}
}
