package life

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"gol/internal/core"
	"gol/internal/patternio"
	"gol/pkg/lifelike"
)

func newTestWorld(t *testing.T, w, h int, boundary lifelike.Boundary) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Boundary = boundary
	return NewWithConfig(cfg)
}

func TestResetDeterministic(t *testing.T) {
	world := newTestWorld(t, 32, 24, lifelike.Toroidal)
	world.Reset(0)
	initial := append([]uint8(nil), world.Cells()...)
	if world.Population() == 0 {
		t.Fatal("default density should seed live cells")
	}

	world.Step()
	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Generation() != 0 {
		t.Fatalf("Reset must zero the generation counter, got %d", world.Generation())
	}

	world.Reset(777)
	if world.Seed() != 777 {
		t.Fatalf("expected seed 777, got %d", world.Seed())
	}
	if slices.Equal(initial, world.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestToggleUpdatesDisplay(t *testing.T) {
	world := newTestWorld(t, 5, 5, lifelike.Clamped)
	if !world.Toggle(2, 3) {
		t.Fatal("in-bounds toggle should succeed")
	}
	idx := 3*5 + 2
	if world.Cells()[idx] != 1 {
		t.Fatalf("display value = %d, want 1", world.Cells()[idx])
	}
	world.Toggle(2, 3)
	if world.Cells()[idx] != 0 || world.Population() != 0 {
		t.Fatal("second toggle should kill the cell")
	}
	if world.Toggle(5, 0) || world.Toggle(-1, 2) {
		t.Fatal("out-of-bounds toggle must be rejected")
	}
}

func TestStepBlinkerDisplayAges(t *testing.T) {
	world := newTestWorld(t, 5, 5, lifelike.Clamped)
	for _, x := range []int{1, 2, 3} {
		world.Toggle(x, 2)
	}
	world.Step()
	cells := world.Cells()
	expects := map[[2]int]uint8{
		{2, 1}: 1,
		{2, 2}: 2,
		{2, 3}: 1,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := expects[[2]int{x, y}]
			if got := cells[y*5+x]; got != want {
				t.Fatalf("cell (%d,%d) display=%d, expected %d", x, y, got, want)
			}
		}
	}
	if world.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", world.Generation())
	}
	world.Step()
	if got := world.Status(); got != "Oscillating (period 2)" {
		t.Fatalf("status = %q", got)
	}
}

func TestStatus(t *testing.T) {
	world := newTestWorld(t, 6, 6, lifelike.Toroidal)
	if world.Status() != "Extinct" {
		t.Fatalf("empty world status = %q", world.Status())
	}
	for _, c := range lifelike.Block {
		world.Toggle(c.X+1, c.Y+1)
	}
	if world.Status() != "Active" {
		t.Fatalf("fresh world status = %q", world.Status())
	}
	world.Step()
	if world.Status() != "Still" {
		t.Fatalf("block status = %q", world.Status())
	}
}

func TestSetRuleKeepsPreviousOnError(t *testing.T) {
	world := newTestWorld(t, 8, 8, lifelike.Toroidal)
	if err := world.SetRule("B36/S23"); err != nil {
		t.Fatal(err)
	}
	err := world.SetRule("B3/S2x")
	var pe *lifelike.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *lifelike.ParseError, got %v", err)
	}
	if world.Rule() != "B36/S23" {
		t.Fatalf("rule changed after failed update: %s", world.Rule())
	}
}

func TestSetRuleAffectsStep(t *testing.T) {
	world := newTestWorld(t, 8, 8, lifelike.Toroidal)
	for _, c := range lifelike.Block {
		world.Toggle(c.X+2, c.Y+2)
	}
	if err := world.SetRule("B3/S"); err != nil {
		t.Fatal(err)
	}
	world.Step()
	if world.Population() != 0 {
		t.Fatalf("B3/S should kill the block, %d cells left", world.Population())
	}
}

func TestSetBoundary(t *testing.T) {
	world := newTestWorld(t, 5, 5, lifelike.Clamped)
	for _, x := range []int{0, 1, 2} {
		world.Toggle(x, 0)
	}
	world.SetBoundary(lifelike.Toroidal)
	if world.Boundary() != lifelike.Toroidal || world.Topology().Boundary != lifelike.Toroidal {
		t.Fatal("boundary not switched")
	}
	world.Step()
	if world.Population() != 3 {
		t.Fatalf("toroidal edge blinker should keep 3 cells, got %d", world.Population())
	}
}

func TestClear(t *testing.T) {
	world := newTestWorld(t, 10, 10, lifelike.Toroidal)
	world.Reset(3)
	world.Step()
	world.Clear()
	if world.Population() != 0 || world.Generation() != 0 {
		t.Fatal("Clear must empty the board and reset the generation")
	}
	for i, v := range world.Cells() {
		if v != 0 {
			t.Fatalf("display index %d still %d", i, v)
		}
	}
}

func TestGridReturnsCopy(t *testing.T) {
	world := newTestWorld(t, 4, 4, lifelike.Clamped)
	world.Toggle(1, 1)
	g := world.Grid()
	g.Toggle(lifelike.Cell{X: 1, Y: 1})
	if world.Population() != 1 {
		t.Fatal("mutating Grid() result leaked into the world")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.lif")
	world := newTestWorld(t, 16, 16, lifelike.Toroidal)
	world.Reset(5)
	world.Step()
	want := world.Grid()
	if err := world.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), patternio.Header+"\n#D rule B3/S23\n") {
		t.Fatalf("unexpected file header:\n%s", data)
	}

	other := newTestWorld(t, 16, 16, lifelike.Toroidal)
	if err := other.Load(path); err != nil {
		t.Fatal(err)
	}
	if !other.Grid().Equal(want) {
		t.Fatal("loaded grid differs from saved grid")
	}
	if !slices.Equal(other.Cells(), binaryDisplay(world.Cells())) {
		t.Fatal("loaded display should show every cell as newborn")
	}
}

func binaryDisplay(cells []uint8) []uint8 {
	out := make([]uint8, len(cells))
	for i, v := range cells {
		if v > 0 {
			out[i] = 1
		}
	}
	return out
}

func TestLoadWrapsOnTorus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrap.lif")
	if err := os.WriteFile(path, []byte("#Life 1.06\n-1 -1\n5 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	world := newTestWorld(t, 5, 5, lifelike.Toroidal)
	if err := world.Load(path); err != nil {
		t.Fatal(err)
	}
	g := world.Grid()
	if !g.Contains(lifelike.Cell{X: 4, Y: 4}) || !g.Contains(lifelike.Cell{X: 0, Y: 0}) {
		t.Fatalf("expected wrapped cells, got %v", g.Cells())
	}
}

func TestLoadFailureKeepsBoard(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "outside.lif")
	corrupt := filepath.Join(dir, "corrupt.lif")
	if err := os.WriteFile(outside, []byte("#Life 1.06\n1 1\n9 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(corrupt, []byte("#Life 1.06\n1 x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	world := newTestWorld(t, 5, 5, lifelike.Clamped)
	world.Toggle(2, 2)
	for _, path := range []string{outside, corrupt, filepath.Join(dir, "missing.lif")} {
		if err := world.Load(path); err == nil {
			t.Fatalf("Load(%s) should fail", path)
		}
		if world.Population() != 1 || !world.Grid().Contains(lifelike.Cell{X: 2, Y: 2}) {
			t.Fatalf("failed Load(%s) modified the board", path)
		}
	}
	var le *patternio.LoadError
	if err := world.Load(outside); !errors.As(err, &le) {
		t.Fatalf("out-of-bounds load should be a *patternio.LoadError, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "40",
		"h":        "-3",
		"seed":     "9",
		"density":  "0.25",
		"rule":     "B36/S23",
		"boundary": "clamped",
	})
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("unexpected dimensions %dx%d", c.Width, c.Height)
	}
	if c.Seed != 9 || c.Density != 0.25 {
		t.Fatalf("unexpected seeding %d %f", c.Seed, c.Density)
	}
	if c.Rule.String() != "B36/S23" || c.Boundary != lifelike.Clamped {
		t.Fatalf("unexpected rule/boundary %s %s", c.Rule, c.Boundary)
	}

	bad := FromMap(map[string]string{"rule": "nonsense", "density": "2", "boundary": "klein"})
	if bad.Rule != lifelike.Conway || bad.Density != 0.5 || bad.Boundary != lifelike.Toroidal {
		t.Fatalf("invalid values should keep defaults: %+v", bad)
	}
}

func TestPresetsRegistered(t *testing.T) {
	for _, preset := range lifelike.Presets() {
		factory, ok := core.Sims()[preset.Name]
		if !ok {
			t.Fatalf("preset %q not registered", preset.Name)
		}
		sim := factory(map[string]string{"w": "12", "h": "10"})
		world, ok := sim.(*World)
		if !ok {
			t.Fatalf("factory for %q returned %T", preset.Name, sim)
		}
		if world.Name() != preset.Name || world.RuleSet() != preset.Rule {
			t.Fatalf("preset %q built %s with rule %s", preset.Name, world.Name(), world.Rule())
		}
		if world.Size() != (core.Size{W: 12, H: 10}) {
			t.Fatalf("unexpected size %+v", world.Size())
		}
	}
	sim := core.Sims()["highlife"](map[string]string{"rule": "B2/S"})
	if sim.(core.RuleSetter).Rule() != "B2/S" {
		t.Fatal("explicit rule should override the preset")
	}
}

func TestDensityParameter(t *testing.T) {
	world := newTestWorld(t, 20, 20, lifelike.Toroidal)
	if !world.SetFloatParameter("density", 1.5) {
		t.Fatal("density should be adjustable")
	}
	world.Reset(1)
	if world.Population() != 400 {
		t.Fatalf("density clamped to 1 should fill the board, got %d", world.Population())
	}
	if world.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	p, ok := world.Parameters().Lookup("density")
	if !ok || p.Value != "1" {
		t.Fatalf("density parameter = %+v", p)
	}
	if p, _ := world.Parameters().Lookup("live"); p.Value != "400" {
		t.Fatalf("live parameter = %+v", p)
	}
}

func TestPalette(t *testing.T) {
	world := New(4, 4)
	palette := world.Palette()
	if palette[0] != colorBackground || palette[1] != colorNewborn {
		t.Fatal("unexpected background/newborn colors")
	}
	for age := 2; age < ageOld; age++ {
		if palette[age] != colorYoung {
			t.Fatalf("age %d should use the young color", age)
		}
	}
	if palette[len(palette)-1] != colorOld {
		t.Fatal("last palette entry must be the old color")
	}
}

func TestSimInterfaces(t *testing.T) {
	var sim core.Sim = New(3, 3)
	if _, ok := sim.(core.CellEditor); !ok {
		t.Fatal("World must be a CellEditor")
	}
	if _, ok := sim.(core.Persister); !ok {
		t.Fatal("World must be a Persister")
	}
	if _, ok := sim.(core.Clearer); !ok {
		t.Fatal("World must be a Clearer")
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		t.Fatal("World must expose parameters")
	}
}

func TestSetBoundaryFitsCells(t *testing.T) {
	lc := DefaultConfig()
	lc.Width, lc.Height = 10, 10
	lc.Boundary = lifelike.Unbounded
	world := NewWithConfig(lc)
	// A vertical blinker hanging off the top edge of an unbounded board.
	world.grid = lifelike.FromCells([]lifelike.Cell{{X: 5, Y: -1}, {X: 5, Y: 0}, {X: 5, Y: 1}})

	world.SetBoundary(lifelike.Toroidal)
	want := lifelike.FromCells([]lifelike.Cell{{X: 5, Y: 9}, {X: 5, Y: 0}, {X: 5, Y: 1}})
	if !world.Grid().Equal(want) {
		t.Fatalf("cells not wrapped: %v", world.Grid().Cells())
	}
	if world.Cells()[9*10+5] == 0 {
		t.Fatal("wrapped cell missing from the display")
	}
	world.Step()
	if world.Population() != 3 {
		t.Fatalf("wrapped blinker should keep 3 cells, got %d", world.Population())
	}

	world.SetBoundary(lifelike.Unbounded)
	world.grid = lifelike.FromCells([]lifelike.Cell{{X: -3, Y: 4}, {X: 2, Y: 2}})
	world.SetBoundary(lifelike.Clamped)
	if !world.Grid().Equal(lifelike.FromCells([]lifelike.Cell{{X: 2, Y: 2}})) {
		t.Fatalf("clamping should drop off-board cells, got %v", world.Grid().Cells())
	}
}
