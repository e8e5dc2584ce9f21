package lhs

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// Sampler draws Latin hypercube designs on the unit cube: every dimension is
// split into size equal strata and each stratum receives exactly one point.
// The output is suitable as a base-point pool for Morris experiments.
type Sampler struct {
	dimension int
	rnd       *rand.Rand
}

// NewSampler creates a seeded sampler of the given dimension.
func NewSampler(dimension int, seed uint64) *Sampler {
	return &Sampler{
		dimension: dimension,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// Sample returns a size x dimension design in [0,1]^dimension.
func (s *Sampler) Sample(size int) *mat.Dense {
	batch := mat.NewDense(size, s.dimension, nil)
	cube := samplemv.LatinHypercube{
		Q:   distmv.NewUnitUniform(s.dimension, s.rnd),
		Src: s.rnd,
	}
	cube.Sample(batch)
	return batch
}
