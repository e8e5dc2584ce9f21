package morris

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Effects estimates elementary-effect statistics from a generated design and
// the model outputs evaluated on its rows. Each trajectory contributes one
// elementary effect per input dimension: the finite difference of the output
// over the single perturbed coordinate.
type Effects struct {
	elementary *mat.Dense // one row per trajectory, one column per dimension
}

// NewEffects pairs a Morris design of n*(dimension+1) rows with the model
// output for each row and computes the per-trajectory elementary effects.
func NewEffects(input *mat.Dense, output []float64) (*Effects, error) {
	rows, dimension := input.Dims()
	if len(output) != rows {
		return nil, fmt.Errorf("%w: %d design rows, %d output values",
			ErrDimensionMismatch, rows, len(output))
	}
	if dimension == 0 || rows%(dimension+1) != 0 {
		return nil, fmt.Errorf("%w: %d rows is not a whole number of trajectories of %d points",
			ErrInvalidConfiguration, rows, dimension+1)
	}

	n := rows / (dimension + 1)
	elementary := mat.NewDense(n, dimension, nil)
	for k := 0; k < n; k++ {
		for i := 0; i < dimension; i++ {
			row := k*(dimension+1) + i
			p, dx := perturbedCoordinate(input, row)
			if p < 0 {
				return nil, fmt.Errorf("%w: design rows %d and %d are identical",
					ErrInvalidConfiguration, row, row+1)
			}
			elementary.Set(k, p, (output[row+1]-output[row])/dx)
		}
	}
	return &Effects{elementary: elementary}, nil
}

// perturbedCoordinate locates the coordinate changed between row and row+1
// and returns its index with the signed difference.
func perturbedCoordinate(input *mat.Dense, row int) (int, float64) {
	_, dimension := input.Dims()
	p, dx := -1, 0.0
	for j := 0; j < dimension; j++ {
		if d := input.At(row+1, j) - input.At(row, j); math.Abs(d) > math.Abs(dx) {
			p, dx = j, d
		}
	}
	return p, dx
}

// MeanEffects returns the mean elementary effect per dimension.
func (e *Effects) MeanEffects() []float64 {
	return e.columnStat(func(column []float64) float64 {
		return stat.Mean(column, nil)
	})
}

// MeanAbsoluteEffects returns mu*, the mean of absolute elementary effects,
// the usual screening ranking statistic.
func (e *Effects) MeanAbsoluteEffects() []float64 {
	return e.columnStat(func(column []float64) float64 {
		for i, v := range column {
			column[i] = math.Abs(v)
		}
		return stat.Mean(column, nil)
	})
}

// StandardDeviationEffects returns the standard deviation of elementary
// effects per dimension, a proxy for nonlinearity and interactions.
func (e *Effects) StandardDeviationEffects() []float64 {
	return e.columnStat(func(column []float64) float64 {
		_, std := stat.MeanStdDev(column, nil)
		if math.IsNaN(std) { // single trajectory
			return 0.0
		}
		return std
	})
}

func (e *Effects) columnStat(f func(column []float64) float64) []float64 {
	_, dimension := e.elementary.Dims()
	result := make([]float64, dimension)
	for j := 0; j < dimension; j++ {
		result[j] = f(mat.Col(nil, j, e.elementary))
	}
	return result
}
