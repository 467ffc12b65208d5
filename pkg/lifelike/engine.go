package lifelike

// Step computes the next generation of g under rule r. g is never modified;
// the result is a fresh grid. Survivors carry age+1, births start at age 1.
//
// Only live cells and their neighbors are evaluated, since a dead cell with
// no live neighbor can never be born. The live cells are first fitted to t:
// under Clamped boundaries cells outside the grid are dropped, and under
// Toroidal boundaries every coordinate is wrapped before evaluation.
func Step(g *Grid, r RuleSet, t Topology) (*Grid, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	next := NewGrid()
	if g.Len() == 0 {
		return next, nil
	}
	g = fit(g, t)

	candidates := make(map[Cell]struct{}, g.Len()*9)
	for c := range g.cells {
		candidates[c] = struct{}{}
		for _, d := range mooreOffsets {
			if nb, ok := t.Normalize(c.Add(d)); ok {
				candidates[nb] = struct{}{}
			}
		}
	}

	for c := range candidates {
		n := countNeighbors(g, c, t)
		if age, alive := g.cells[c]; alive {
			if r.IsSurvival(n) {
				next.cells[c] = age + 1
			}
			continue
		}
		if r.IsBirth(n) {
			next.cells[c] = 1
		}
	}
	return next, nil
}

// Run applies Step n times and returns the final grid.
func Run(g *Grid, r RuleSet, t Topology, n int) (*Grid, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cur := g
	for range n {
		next, err := Step(cur, r, t)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if cur == g {
		return g.Clone(), nil
	}
	return cur, nil
}
