package main

import (
	"log"
	"time"

	"github.com/YomGarcia/otmorris/internal/config"
	"github.com/YomGarcia/otmorris/internal/presenter"
	"github.com/YomGarcia/otmorris/pkg/lhs"
	"github.com/YomGarcia/otmorris/pkg/morris"
)

func main() {
	// Load configuration
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal("Error parsing configuration: ", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	experiment, err := buildExperiment(cfg, seed)
	if err != nil {
		log.Fatal("Error building experiment: ", err)
	}
	experiment.Seed(seed)

	log.Printf("Generating %d trajectories in dimension %d (seed %d)...",
		cfg.Trajectories, experiment.Dimension(), seed)
	design := experiment.Generate()

	if err := presenter.SaveDenseToCSV(design, cfg.OutputFile, nil); err != nil {
		log.Fatal("Error saving design: ", err)
	}
	rows, _ := design.Dims()
	log.Printf("Saved %d design points to %s", rows, cfg.OutputFile)
}

func buildExperiment(cfg *config.Config, seed uint64) (*morris.Experiment, error) {
	withDomain := len(cfg.Lower) > 0

	if cfg.PoolSize > 0 {
		dimension := len(cfg.Levels)
		if withDomain {
			dimension = len(cfg.Lower)
		}
		pool := lhs.NewSampler(dimension, seed).Sample(cfg.PoolSize)
		if !withDomain {
			return morris.NewSampleExperiment(pool, cfg.Trajectories)
		}
		// Scale the unit-cube pool into the domain; the constructor
		// renormalizes it back internally.
		for i := 0; i < cfg.PoolSize; i++ {
			for k := 0; k < dimension; k++ {
				pool.Set(i, k, cfg.Lower[k]+pool.At(i, k)*(cfg.Upper[k]-cfg.Lower[k]))
			}
		}
		domain := morris.Domain{Lower: cfg.Lower, Upper: cfg.Upper}
		return morris.NewSampleExperimentInDomain(pool, domain, cfg.Trajectories)
	}

	if withDomain {
		domain := morris.Domain{Lower: cfg.Lower, Upper: cfg.Upper}
		return morris.NewGridExperimentInDomain(cfg.Levels, domain, cfg.Trajectories)
	}
	return morris.NewGridExperiment(cfg.Levels, cfg.Trajectories)
}
