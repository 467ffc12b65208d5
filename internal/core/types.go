package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells returns one display value per cell in row-major order; zero means
// empty.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// CellEditor is implemented by sims whose cells can be flipped by the user.
// Toggle reports whether (x, y) was inside the grid.
type CellEditor interface {
	Toggle(x, y int) bool
}

// Clearer is implemented by sims that can be emptied without reseeding.
type Clearer interface {
	Clear()
}

// RuleSetter is implemented by sims with a user-replaceable rule. SetRule
// must leave the current rule untouched when it returns an error.
type RuleSetter interface {
	Rule() string
	SetRule(rule string) error
}

// Persister is implemented by sims that can save and restore their state.
// Load must leave the current state untouched when it returns an error.
type Persister interface {
	Save(path string) error
	Load(path string) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
