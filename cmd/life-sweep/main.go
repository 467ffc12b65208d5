package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"gol/internal/sweep"
	"gol/pkg/lifelike"
)

func main() {
	rulesFlag := flag.String("rules", "", "comma separated rules to sweep (default: every preset)")
	runs := flag.Int("runs", 8, "random boards per rule")
	seed := flag.Int64("seed", 1, "base seed the per-run seeds derive from")
	steps := flag.Int("steps", 500, "generation limit per run")
	width := flag.Int("w", 64, "board width")
	height := flag.Int("h", 64, "board height")
	density := flag.Float64("density", 0.35, "initial live fraction")
	boundaryFlag := flag.String("boundary", "toroidal", "clamped, toroidal or unbounded")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	detail := flag.Bool("detail", false, "print every run, not just the per-rule summary")
	flag.Parse()

	rules, err := parseRules(*rulesFlag)
	if err != nil {
		log.Fatal(err)
	}
	boundary, err := lifelike.ParseBoundary(*boundaryFlag)
	if err != nil {
		log.Fatal(err)
	}

	base := sweep.Scenario{
		Boundary: boundary,
		Width:    *width,
		Height:   *height,
		Density:  *density,
		Steps:    *steps,
	}
	scenarios := sweep.Matrix(base, rules, sweep.Seeds(*seed, *runs))
	fmt.Printf("Sweeping %d rules x %d boards (%d workers, %d steps)\n", len(rules), *runs, *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Finished in %s\n\n", time.Since(start).Round(time.Millisecond))

	if *detail {
		if err := sweep.WriteTable(os.Stdout, results); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
	if err := sweep.WriteSummary(os.Stdout, sweep.Summarize(results)); err != nil {
		log.Fatal(err)
	}
}

func parseRules(list string) ([]lifelike.RuleSet, error) {
	if strings.TrimSpace(list) == "" {
		var rules []lifelike.RuleSet
		for _, p := range lifelike.Presets() {
			rules = append(rules, p.Rule)
		}
		return rules, nil
	}
	var rules []lifelike.RuleSet
	for _, field := range strings.Split(list, ",") {
		r, err := lifelike.ParseRule(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
