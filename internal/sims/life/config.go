package life

import (
	"strconv"

	"gol/pkg/lifelike"
)

// Config controls the dimensions, seeding and rule of a Life world.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64

	Rule     lifelike.RuleSet
	Boundary lifelike.Boundary
}

// DefaultConfig returns the standard configuration: Conway's rule on a
// wrapping board, half of the cells alive at start.
func DefaultConfig() Config {
	return Config{
		Width:    96,
		Height:   64,
		Seed:     42,
		Density:  0.5,
		Rule:     lifelike.Conway,
		Boundary: lifelike.Toroidal,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Invalid values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	return fromMap(DefaultConfig(), cfg)
}

func fromMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		if parsed, err := lifelike.ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		if parsed, err := lifelike.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	return c
}
