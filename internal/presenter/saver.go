package presenter

import (
	"encoding/csv"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// SaveDenseToCSV writes a matrix to a CSV file, one matrix row per record,
// with an optional header written first.
func SaveDenseToCSV(m *mat.Dense, filename string, header []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// SaveEffectsToCSV writes the screening summary, one record per input
// dimension: name, mean, mean absolute and standard deviation of the
// elementary effects.
func SaveEffectsToCSV(filename string, names []string, mean, meanAbs, stddev []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"input", "mu", "mu_star", "sigma"}); err != nil {
		return err
	}
	for j := range mean {
		record := []string{
			names[j],
			strconv.FormatFloat(mean[j], 'f', -1, 64),
			strconv.FormatFloat(meanAbs[j], 'f', -1, 64),
			strconv.FormatFloat(stddev[j], 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
