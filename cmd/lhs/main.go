package main

import (
	"flag"
	"log"
	"time"

	"github.com/YomGarcia/otmorris/internal/presenter"
	"github.com/YomGarcia/otmorris/pkg/lhs"
)

func main() {
	dimension := flag.Int("dim", 2, "sample dimension")
	size := flag.Int("size", 20, "number of sample points")
	seed := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	outputFile := flag.String("output", "lhs.csv", "output CSV file")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	sample := lhs.NewSampler(*dimension, *seed).Sample(*size)
	if err := presenter.SaveDenseToCSV(sample, *outputFile, nil); err != nil {
		log.Fatal("Error saving sample: ", err)
	}
	log.Printf("Saved a %dx%d latin hypercube sample to %s (seed %d)",
		*size, *dimension, *outputFile, *seed)
}
