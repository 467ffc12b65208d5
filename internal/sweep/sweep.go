// Package sweep runs many headless Life scenarios in parallel and
// summarizes how each one ends.
package sweep

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	pcore "gol/pkg/core"
	"gol/pkg/lifelike"
)

// Scenario is a single board to simulate.
type Scenario struct {
	Rule     lifelike.RuleSet
	Boundary lifelike.Boundary
	Width    int
	Height   int
	Density  float64
	Seed     int64
	Steps    int
}

// Result describes how a scenario evolved. Period is non-zero when the run
// stopped on a repeating board, 1 meaning a still life.
type Result struct {
	Scenario
	Generations int
	Population  int
	Peak        int
	Extinct     bool
	Period      int
}

// Outcome is a short label for the result.
func (r Result) Outcome() string {
	switch {
	case r.Extinct:
		return "extinct"
	case r.Period == 1:
		return "still"
	case r.Period > 1:
		return fmt.Sprintf("period %d", r.Period)
	default:
		return "active"
	}
}

const cancelCheckInterval = 64

// RunScenario seeds the board and steps it until it dies out, repeats or
// reaches the step limit.
func RunScenario(ctx context.Context, s Scenario) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	area := lifelike.Topology{Boundary: lifelike.Clamped, Width: s.Width, Height: s.Height}
	g, err := lifelike.Random(area, s.Density, pcore.NewRNG(s.Seed).Source())
	if err != nil {
		return Result{}, errors.Wrapf(err, "[RunScenario] failed to seed %s", s.Rule)
	}
	topo := lifelike.Topology{Boundary: s.Boundary, Width: s.Width, Height: s.Height}
	history := lifelike.NewHistory(lifelike.DefaultHistoryDepth)

	res := Result{Scenario: s, Population: g.Len(), Peak: g.Len()}
	for gen := 1; gen <= s.Steps && g.Len() > 0; gen++ {
		if gen%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		history.Record(g)
		if g, err = lifelike.Step(g, s.Rule, topo); err != nil {
			return Result{}, errors.Wrapf(err, "[RunScenario] failed to step %s", s.Rule)
		}
		res.Generations = gen
		res.Population = g.Len()
		res.Peak = max(res.Peak, g.Len())
		if p := history.Period(g); p > 0 {
			res.Period = p
			break
		}
	}
	res.Extinct = g.Len() == 0
	if res.Extinct {
		res.Period = 0
	}
	return res, nil
}

// Run executes the scenarios on at most workers goroutines. Results keep
// the order of scenarios. The first error cancels the remaining work.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, s := range scenarios {
		g.Go(func() error {
			res, err := RunScenario(ctx, s)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Seeds derives n distinct reproducible seeds from base.
func Seeds(base int64, n int) []int64 {
	rng := pcore.NewRNG(base).Derive(1)
	seen := make(map[int64]bool, n)
	seeds := make([]int64, 0, n)
	for len(seeds) < n {
		s := rng.Int64()
		if s == 0 || seen[s] {
			continue
		}
		seen[s] = true
		seeds = append(seeds, s)
	}
	return seeds
}

// Matrix crosses every rule with every seed using base for the remaining
// fields.
func Matrix(base Scenario, rules []lifelike.RuleSet, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(rules)*len(seeds))
	for _, r := range rules {
		for _, seed := range seeds {
			s := base
			s.Rule = r
			s.Seed = seed
			out = append(out, s)
		}
	}
	return out
}

// Summary aggregates the results of a single rule.
type Summary struct {
	Rule          lifelike.RuleSet
	Runs          int
	Extinct       int
	Settled       int
	MeanPop       float64
	MeanFinalStep float64
}

// Summarize groups results by rule, in the order rules first appear.
func Summarize(results []Result) []Summary {
	index := map[lifelike.RuleSet]int{}
	var out []Summary
	for _, r := range results {
		i, ok := index[r.Rule]
		if !ok {
			i = len(out)
			index[r.Rule] = i
			out = append(out, Summary{Rule: r.Rule})
		}
		s := &out[i]
		s.Runs++
		if r.Extinct {
			s.Extinct++
		} else if r.Period > 0 {
			s.Settled++
		}
		s.MeanPop += float64(r.Population)
		s.MeanFinalStep += float64(r.Generations)
	}
	for i := range out {
		out[i].MeanPop /= float64(out[i].Runs)
		out[i].MeanFinalStep /= float64(out[i].Runs)
	}
	return out
}

// WriteTable prints one row per result, most populated first.
func WriteTable(w io.Writer, results []Result) error {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Population > sorted[j].Population })

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tSEED\tGEN\tPOP\tPEAK\tOUTCOME")
	for _, r := range sorted {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", r.Rule, r.Seed, r.Generations, r.Population, r.Peak, r.Outcome())
	}
	return tw.Flush()
}

// WriteSummary prints one row per rule.
func WriteSummary(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tRUNS\tEXTINCT\tSETTLED\tMEAN POP\tMEAN GEN")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\t%.1f\n", s.Rule, s.Runs, s.Extinct, s.Settled, s.MeanPop, s.MeanFinalStep)
	}
	return tw.Flush()
}
