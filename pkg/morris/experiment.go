package morris

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Experiment generates designs for the Morris one-at-a-time screening
// method: n randomized trajectories of dimension+1 points each, where every
// step of a trajectory perturbs a single coordinate by one discretization
// step. The resulting sample is later paired with model evaluations to
// estimate elementary effects.
//
// Domain, step vector, pool and trajectory count are fixed at construction;
// only the random stream advances between Generate calls.
type Experiment struct {
	domain Domain
	pool   *mat.Dense // base-point pool in unit-cube coordinates, nil in grid mode
	step   []float64
	n      int

	rnd       *rand.Rand
	direction distuv.Bernoulli
	seed      uint64
}

func newExperiment(domain Domain, pool *mat.Dense, step []float64, n int) *Experiment {
	e := &Experiment{domain: domain, pool: pool, step: step, n: n}
	e.Seed(uint64(time.Now().UnixNano()))
	return e
}

// NewGridExperiment builds an experiment over a regular grid with the given
// number of levels per dimension, on the unit cube.
func NewGridExperiment(levels []int, n int) (*Experiment, error) {
	step, err := stepFromLevels(levels)
	if err != nil {
		return nil, err
	}
	return newExperiment(UnitDomain(len(levels)), nil, step, n), nil
}

// NewGridExperimentInDomain builds a grid experiment rescaled into explicit
// bounds.
func NewGridExperimentInDomain(levels []int, domain Domain, n int) (*Experiment, error) {
	if len(levels) != domain.Dimension() {
		return nil, fmt.Errorf("%w: %d levels for a domain of dimension %d",
			ErrDimensionMismatch, len(levels), domain.Dimension())
	}
	step, err := stepFromLevels(levels)
	if err != nil {
		return nil, err
	}
	return newExperiment(domain, nil, step, n), nil
}

// NewSampleExperiment anchors trajectories on a pre-computed space-filling
// sample (typically a Latin hypercube design), already normalized to the
// unit cube. The perturbation step is the half-density heuristic
// 0.5/poolSize for every dimension.
func NewSampleExperiment(pool *mat.Dense, n int) (*Experiment, error) {
	size, dimension := pool.Dims()
	for i := 0; i < size; i++ {
		for k := 0; k < dimension; k++ {
			if v := pool.At(i, k); v < 0.0 || v > 1.0 {
				return nil, fmt.Errorf("%w: pool[%d][%d]=%v is not in [0,1]",
					ErrOutOfRangeInput, i, k, v)
			}
		}
	}
	return newExperiment(UnitDomain(dimension), mat.DenseCopyOf(pool), poolStep(size, dimension), n), nil
}

// NewSampleExperimentInDomain accepts a pool expressed in domain coordinates
// and renormalizes it into the unit cube before use.
func NewSampleExperimentInDomain(pool *mat.Dense, domain Domain, n int) (*Experiment, error) {
	size, dimension := pool.Dims()
	if dimension != domain.Dimension() {
		return nil, fmt.Errorf("%w: pool of dimension %d for a domain of dimension %d",
			ErrDimensionMismatch, dimension, domain.Dimension())
	}
	delta := domain.Delta()
	normalized := mat.NewDense(size, dimension, nil)
	for i := 0; i < size; i++ {
		for k := 0; k < dimension; k++ {
			normalized.Set(i, k, (pool.At(i, k)-domain.Lower[k])/delta[k])
		}
	}
	return newExperiment(domain, normalized, poolStep(size, dimension), n), nil
}

func stepFromLevels(levels []int) ([]float64, error) {
	step := make([]float64, len(levels))
	for k, level := range levels {
		if level <= 1 {
			return nil, fmt.Errorf("%w: levels should be at least 2, levels[%d]=%d",
				ErrInvalidConfiguration, k, level)
		}
		step[k] = 1.0 / float64(level-1)
	}
	return step, nil
}

// poolStep is the fixed half-density heuristic, independent of the actual
// pool geometry.
func poolStep(size, dimension int) []float64 {
	step := make([]float64, dimension)
	for k := range step {
		step[k] = 0.5 / float64(size)
	}
	return step
}

// Seed resets the random stream. Two identically configured experiments
// seeded with the same value generate identical designs.
func (e *Experiment) Seed(seed uint64) {
	e.seed = seed
	e.rnd = rand.New(rand.NewSource(seed))
	e.direction = distuv.Bernoulli{P: 0.5, Src: e.rnd}
}

// Dimension returns the number of input coordinates.
func (e *Experiment) Dimension() int {
	return len(e.step)
}

// TrajectoryCount returns the number of trajectories per design.
func (e *Experiment) TrajectoryCount() int {
	return e.n
}

// Step returns a copy of the unit-cube discretization step per dimension.
func (e *Experiment) Step() []float64 {
	return append([]float64(nil), e.step...)
}

// Domain returns the bounds the design is rescaled into.
func (e *Experiment) Domain() Domain {
	return Domain{
		Lower: append([]float64(nil), e.domain.Lower...),
		Upper: append([]float64(nil), e.domain.Upper...),
	}
}

// OrientationColumn returns the p-th column of the canonical orientation
// matrix: -1 for the trajectory rows that have already crossed step p, +1
// for the rest. The column has dimension+1 entries.
func (e *Experiment) OrientationColumn(p int) ([]float64, error) {
	if p < 0 || p >= len(e.step) {
		return nil, fmt.Errorf("%w: column %d of an orientation matrix with %d columns",
			ErrIndexOutOfRange, p, len(e.step))
	}
	return orientationColumn(p, len(e.step)), nil
}

func orientationColumn(p, dimension int) []float64 {
	column := make([]float64, dimension+1)
	for i := range column {
		if i <= p {
			column[i] = -1.0
		} else {
			column[i] = 1.0
		}
	}
	return column
}

// Generate builds the full design: n trajectories of dimension+1 points
// each, concatenated in generation order. Consecutive rows of a trajectory
// differ in exactly one coordinate, by exactly one step in domain units.
// The output is deterministic for a fixed Seed; Generate never fails once
// the experiment is constructed.
func (e *Experiment) Generate() *mat.Dense {
	dimension := len(e.step)
	if e.n <= 0 || dimension == 0 {
		return &mat.Dense{}
	}
	lower := e.domain.Lower
	delta := e.domain.Delta()
	design := mat.NewDense(e.n*(dimension+1), dimension, nil)

	for k := 0; k < e.n; k++ {
		xBase := e.basePoint()
		permutation := e.rnd.Perm(dimension)
		directions := e.drawDirections(dimension)

		// Walk the coordinates in permuted order. Column p of the
		// orientation matrix always serves dimension p, so the permutation
		// fixes the walk order without any matrix multiplication.
		for _, p := range permutation {
			column := orientationColumn(p, dimension)
			for i := 0; i <= dimension; i++ {
				value := delta[p]*((column[i]*directions[p]+1.0)*0.5*e.step[p]+xBase[p]) + lower[p]
				design.Set(k*(dimension+1)+i, p, value)
			}
		}
	}
	return design
}

// drawDirections draws one uniform {-1,+1} perturbation sign per dimension.
func (e *Experiment) drawDirections(dimension int) []float64 {
	directions := make([]float64, dimension)
	for p := range directions {
		directions[p] = 2.0*e.direction.Rand() - 1.0
	}
	return directions
}

func (e *Experiment) basePoint() []float64 {
	if e.pool != nil {
		return e.basePointFromPool()
	}
	return e.basePointFromGrid()
}

// basePointFromPool draws one pool row uniformly, with replacement across
// trajectories.
func (e *Experiment) basePointFromPool() []float64 {
	size, _ := e.pool.Dims()
	return mat.Row(nil, e.rnd.Intn(size), e.pool)
}

// basePointFromGrid draws every coordinate independently on its own level
// grid. Repeats across trajectories are expected for small level counts.
func (e *Experiment) basePointFromGrid() []float64 {
	xBase := make([]float64, len(e.step))
	for p, step := range e.step {
		level := int(1.0 + 1.0/step)
		xBase[p] = step * float64(e.rnd.Intn(level-1))
	}
	return xBase
}
