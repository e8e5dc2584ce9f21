package morris

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const Tolerance = 1e-9

func Equals(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// checkTrajectorySteps verifies that every pair of consecutive rows within a
// trajectory block differs in exactly one coordinate, by one step in domain
// units.
func checkTrajectorySteps(t *testing.T, design *mat.Dense, n int, delta, step []float64) {
	t.Helper()
	dimension := len(step)
	for k := 0; k < n; k++ {
		for i := 0; i < dimension; i++ {
			row := k*(dimension+1) + i
			changed := 0
			for j := 0; j < dimension; j++ {
				diff := math.Abs(design.At(row+1, j) - design.At(row, j))
				if diff < Tolerance {
					continue
				}
				changed++
				if !Equals(diff, delta[j]*step[j]) {
					t.Errorf("rows %d-%d: coordinate %d moved by %v, want %v",
						row, row+1, j, diff, delta[j]*step[j])
				}
			}
			if changed != 1 {
				t.Errorf("rows %d-%d: %d coordinates changed, want exactly 1", row, row+1, changed)
			}
		}
	}
}

// TestGridExperimentSmall checks the 3x3-level unit-square example: one
// trajectory of three points, each step moving one coordinate by 0.5.
func TestGridExperimentSmall(t *testing.T) {
	e, err := NewGridExperiment([]int{3, 3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	e.Seed(42)

	step := e.Step()
	if !Equals(step[0], 0.5) || !Equals(step[1], 0.5) {
		t.Errorf("Expected step [0.5 0.5], got %v", step)
	}

	design := e.Generate()
	rows, cols := design.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("Expected a 3x2 design, got %dx%d", rows, cols)
	}
	checkTrajectorySteps(t, design, 1, []float64{1, 1}, step)
}

// TestGenerateShape checks the N*(dimension+1) row contract.
func TestGenerateShape(t *testing.T) {
	e, err := NewGridExperiment([]int{4, 4, 4}, 5)
	if err != nil {
		t.Fatal(err)
	}
	e.Seed(1)

	design := e.Generate()
	rows, cols := design.Dims()
	if rows != 5*4 || cols != 3 {
		t.Errorf("Expected a 20x3 design, got %dx%d", rows, cols)
	}
}

// TestGenerateStaysInDomain checks that every coordinate of every generated
// point lies within the declared bounds.
func TestGenerateStaysInDomain(t *testing.T) {
	domain := Domain{
		Lower: []float64{-1, 0, 2},
		Upper: []float64{3, 1, 4},
	}
	e, err := NewGridExperimentInDomain([]int{5, 6, 7}, domain, 20)
	if err != nil {
		t.Fatal(err)
	}
	e.Seed(7)

	design := e.Generate()
	rows, _ := design.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < 3; j++ {
			v := design.At(i, j)
			if v < domain.Lower[j]-Tolerance || v > domain.Upper[j]+Tolerance {
				t.Errorf("design[%d][%d]=%v outside [%v, %v]", i, j, v, domain.Lower[j], domain.Upper[j])
			}
		}
	}
	checkTrajectorySteps(t, design, 20, domain.Delta(), e.Step())
}

// TestInvalidLevels checks that a level count below 2 is rejected.
func TestInvalidLevels(t *testing.T) {
	_, err := NewGridExperiment([]int{1, 3}, 4)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

// TestLevelsDomainMismatch checks the grid constructor dimension check.
func TestLevelsDomainMismatch(t *testing.T) {
	domain := UnitDomain(3)
	_, err := NewGridExperimentInDomain([]int{3, 3}, domain, 4)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

// TestPoolOutOfRange checks that a pool outside the unit cube is rejected
// when no domain is given.
func TestPoolOutOfRange(t *testing.T) {
	pool := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.25, 1.5})
	_, err := NewSampleExperiment(pool, 4)
	if !errors.Is(err, ErrOutOfRangeInput) {
		t.Errorf("Expected ErrOutOfRangeInput, got %v", err)
	}
}

// TestPoolDomainMismatch checks the pool constructor dimension check.
func TestPoolDomainMismatch(t *testing.T) {
	pool := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.25, 0.75})
	_, err := NewSampleExperimentInDomain(pool, UnitDomain(3), 4)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

// TestOrientationColumn checks the public column builder and its index
// precondition.
func TestOrientationColumn(t *testing.T) {
	e, err := NewGridExperiment([]int{2, 2, 2}, 1)
	if err != nil {
		t.Fatal(err)
	}

	column, err := e.OrientationColumn(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-1, -1, 1, 1}
	for i := range want {
		if !Equals(column[i], want[i]) {
			t.Errorf("column[%d]=%v, want %v", i, column[i], want[i])
		}
	}

	if _, err := e.OrientationColumn(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for p=3, got %v", err)
	}
	if _, err := e.OrientationColumn(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for p=-1, got %v", err)
	}
}

// TestSeedDeterminism checks that two identically configured experiments
// with the same seed generate identical designs.
func TestSeedDeterminism(t *testing.T) {
	build := func() *Experiment {
		e, err := NewGridExperiment([]int{5, 5, 5, 5}, 10)
		if err != nil {
			t.Fatal(err)
		}
		e.Seed(99)
		return e
	}
	first := build().Generate()
	second := build().Generate()
	if !mat.Equal(first, second) {
		t.Error("Identically seeded experiments produced different designs")
	}
}

// TestSinglePointPool checks the deterministic single-anchor case: the only
// pool point anchors every trajectory and the design stays in the unit cube.
func TestSinglePointPool(t *testing.T) {
	pool := mat.NewDense(1, 2, []float64{0.5, 0.5})
	e, err := NewSampleExperiment(pool, 1)
	if err != nil {
		t.Fatal(err)
	}
	e.Seed(3)

	step := e.Step()
	if !Equals(step[0], 0.5) || !Equals(step[1], 0.5) {
		t.Errorf("Expected step [0.5 0.5], got %v", step)
	}

	design := e.Generate()
	rows, cols := design.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("Expected a 3x2 design, got %dx%d", rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := design.At(i, j); v < -Tolerance || v > 1+Tolerance {
				t.Errorf("design[%d][%d]=%v outside the unit cube", i, j, v)
			}
		}
	}
	checkTrajectorySteps(t, design, 1, []float64{1, 1}, step)
}

// TestPoolRenormalization checks that a pool supplied in domain coordinates
// yields designs within the same domain.
func TestPoolRenormalization(t *testing.T) {
	domain := Domain{Lower: []float64{10, -2}, Upper: []float64{20, 2}}
	pool := mat.NewDense(3, 2, []float64{
		12, -1,
		15, 0,
		18, 1,
	})
	e, err := NewSampleExperimentInDomain(pool, domain, 6)
	if err != nil {
		t.Fatal(err)
	}
	e.Seed(11)

	design := e.Generate()
	rows, _ := design.Dims()
	if rows != 6*3 {
		t.Fatalf("Expected 18 rows, got %d", rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < 2; j++ {
			v := design.At(i, j)
			if v < domain.Lower[j]-Tolerance || v > domain.Upper[j]+Tolerance {
				t.Errorf("design[%d][%d]=%v outside [%v, %v]", i, j, v, domain.Lower[j], domain.Upper[j])
			}
		}
	}
	checkTrajectorySteps(t, design, 6, domain.Delta(), e.Step())
}

// TestJSONRoundTrip checks that a saved and reloaded experiment reproduces
// the design of the original bit for bit.
func TestJSONRoundTrip(t *testing.T) {
	domain := Domain{Lower: []float64{-1, -1}, Upper: []float64{1, 1}}
	pool := mat.NewDense(4, 2, []float64{
		-0.5, -0.5,
		0.5, -0.5,
		-0.5, 0.5,
		0.5, 0.5,
	})
	original, err := NewSampleExperimentInDomain(pool, domain, 5)
	if err != nil {
		t.Fatal(err)
	}
	original.Seed(7)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	restored := &Experiment{}
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatal(err)
	}

	if restored.Dimension() != 2 || restored.TrajectoryCount() != 5 {
		t.Fatalf("Restored experiment has dimension %d and %d trajectories",
			restored.Dimension(), restored.TrajectoryCount())
	}
	if !mat.Equal(original.Generate(), restored.Generate()) {
		t.Error("Round-tripped experiment produced a different design")
	}
}

// TestEmptyDesign checks the degenerate sizes: zero trajectories and zero
// dimension both yield an empty design without panicking.
func TestEmptyDesign(t *testing.T) {
	e, err := NewGridExperiment([]int{3, 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rows, _ := e.Generate().Dims(); rows != 0 {
		t.Errorf("Expected an empty design for N=0, got %d rows", rows)
	}

	e, err = NewGridExperiment(nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	if rows, _ := e.Generate().Dims(); rows != 0 {
		t.Errorf("Expected an empty design for dimension 0, got %d rows", rows)
	}
}
