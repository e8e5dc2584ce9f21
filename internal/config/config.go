package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type Config struct {
	Levels       []int
	Lower        []float64
	Upper        []float64
	Trajectories int
	Seed         uint64
	PoolSize     int
	OutputFile   string
}

// Parse reads the design-generator flags from the command line.
func Parse() (*Config, error) {
	cfg := &Config{}
	var levels, lower, upper string

	// define flags
	flag.StringVar(&levels, "levels", "5,5", "comma-separated level count per input dimension")
	flag.StringVar(&lower, "lower", "", "comma-separated lower bounds (default: unit cube)")
	flag.StringVar(&upper, "upper", "", "comma-separated upper bounds (default: unit cube)")
	flag.IntVar(&cfg.Trajectories, "trajectories", 10, "number of trajectories to generate")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.IntVar(&cfg.PoolSize, "lhs", 0, "anchor trajectories on a latin hypercube pool of this size instead of the grid")
	flag.StringVar(&cfg.OutputFile, "output", "design.csv", "output CSV file for the design")
	flag.Parse()

	var err error
	if cfg.Levels, err = ParseInts(levels); err != nil {
		return nil, fmt.Errorf("-levels: %w", err)
	}
	if lower != "" {
		if cfg.Lower, err = ParseFloats(lower); err != nil {
			return nil, fmt.Errorf("-lower: %w", err)
		}
	}
	if upper != "" {
		if cfg.Upper, err = ParseFloats(upper); err != nil {
			return nil, fmt.Errorf("-upper: %w", err)
		}
	}
	if len(cfg.Lower) != len(cfg.Upper) {
		return nil, fmt.Errorf("-lower has %d values, -upper has %d", len(cfg.Lower), len(cfg.Upper))
	}

	return cfg, nil
}

// ParseInts splits a comma-separated list of integers.
func ParseInts(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad integer %q: %w", part, err)
		}
		values[i] = v
	}
	return values, nil
}

// ParseFloats splits a comma-separated list of floats.
func ParseFloats(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad float %q: %w", part, err)
		}
		values[i] = v
	}
	return values, nil
}
