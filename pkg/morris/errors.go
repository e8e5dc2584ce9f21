package morris

import "errors"

// Errors reported while configuring an experiment. Returned values wrap one
// of these sentinels with the failing index or size; match with errors.Is.
var (
	// ErrInvalidConfiguration indicates a per-dimension level count below 2,
	// or a design sample that is not a whole number of trajectories.
	ErrInvalidConfiguration = errors.New("morris: invalid configuration")

	// ErrDimensionMismatch indicates levels, pool and domain of disagreeing sizes.
	ErrDimensionMismatch = errors.New("morris: dimension mismatch")

	// ErrOutOfRangeInput indicates a base-point pool with coordinates outside
	// the unit cube.
	ErrOutOfRangeInput = errors.New("morris: input out of range")

	// ErrIndexOutOfRange indicates an orientation-matrix column index beyond
	// the experiment dimension.
	ErrIndexOutOfRange = errors.New("morris: index out of range")
)
