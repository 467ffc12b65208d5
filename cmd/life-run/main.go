package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"gol/internal/patternio"
	pcore "gol/pkg/core"
	"gol/pkg/lifelike"
)

type options struct {
	in       string
	out      string
	rule     string
	boundary string
	width    int
	height   int
	seed     int64
	density  float64
	steps    int
	every    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-run: ")

	var opts options
	flag.StringVar(&opts.in, "in", "", "Life 1.06 file to start from (default: random board)")
	flag.StringVar(&opts.out, "out", "", "file to write the final generation to (default: stdout)")
	flag.StringVar(&opts.rule, "rule", lifelike.DefaultRule, "rule in B/S notation")
	flag.StringVar(&opts.boundary, "boundary", "toroidal", "clamped, toroidal or unbounded")
	flag.IntVar(&opts.width, "w", 64, "board width")
	flag.IntVar(&opts.height, "h", 64, "board height")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for the random board")
	flag.Float64Var(&opts.density, "density", 0.5, "initial live fraction of the random board")
	flag.IntVar(&opts.steps, "steps", 100, "generations to run")
	flag.IntVar(&opts.every, "every", 0, "log the population every N generations (0 disables)")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, stdout io.Writer) error {
	rule, err := lifelike.ParseRule(opts.rule)
	if err != nil {
		return err
	}
	boundary, err := lifelike.ParseBoundary(opts.boundary)
	if err != nil {
		return err
	}
	topo := lifelike.Topology{Boundary: boundary, Width: opts.width, Height: opts.height}
	if err := topo.Validate(); err != nil {
		return err
	}
	if opts.steps < 0 {
		return errors.Errorf("[run] steps must not be negative, got %d", opts.steps)
	}

	g, err := initialBoard(opts, topo)
	if err != nil {
		return err
	}
	history := lifelike.NewHistory(lifelike.DefaultHistoryDepth)
	gen := 0
	for ; gen < opts.steps; gen++ {
		history.Record(g)
		if g, err = lifelike.Step(g, rule, topo); err != nil {
			return err
		}
		if opts.every > 0 && (gen+1)%opts.every == 0 {
			log.Printf("generation %d: %d live", gen+1, g.Len())
		}
		if g.Len() == 0 {
			gen++
			log.Printf("extinct at generation %d", gen)
			break
		}
		if p := history.Period(g); p > 0 {
			gen++
			log.Printf("repeats with period %d at generation %d", p, gen)
			break
		}
	}

	comments := []string{"rule " + rule.String(), fmt.Sprintf("generation %d", gen)}
	if opts.out == "" {
		return patternio.Write(stdout, g.Cells(), comments...)
	}
	if err := patternio.SaveFile(opts.out, g.Cells(), comments...); err != nil {
		return err
	}
	log.Printf("wrote %d cells to %s", g.Len(), opts.out)
	return nil
}

func initialBoard(opts options, topo lifelike.Topology) (*lifelike.Grid, error) {
	if opts.in == "" {
		area := lifelike.Topology{Boundary: lifelike.Clamped, Width: opts.width, Height: opts.height}
		return lifelike.Random(area, opts.density, pcore.NewRNG(opts.seed).Source())
	}
	cells, err := patternio.LoadFile(opts.in)
	if err != nil {
		return nil, err
	}
	g := lifelike.NewGrid()
	for _, c := range cells {
		nc, ok := topo.Normalize(c)
		if !ok {
			return nil, &patternio.LoadError{
				Path: opts.in,
				Err:  errors.Errorf("cell (%d, %d) lies outside the %dx%d board", c.X, c.Y, topo.Width, topo.Height),
			}
		}
		g.Set(nc, true)
	}
	return g, nil
}
