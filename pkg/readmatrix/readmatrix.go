package readmatrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrix loads a numeric table from a file into a dense matrix. Values
// are separated by whitespace or commas; blank lines and lines starting with
// # are skipped, and a single leading non-numeric header line is tolerated.
func ReadMatrix(filename string) (*mat.Dense, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// ReadFrom parses the numeric table from an arbitrary reader.
func ReadFrom(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	sawHeader := false

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))

		// The first content line may be a column header.
		if len(rows) == 0 && !sawHeader && !allNumeric(fields) {
			sawHeader = true
			continue
		}

		row := make([]float64, len(fields))
		for j, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at line %d, column %d: %w", line, j+1, err)
			}
			row[j] = val
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("inconsistent number of columns at line %d: expected %d, got %d",
				line, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if len(rows) == 0 {
		return &mat.Dense{}, nil
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

func allNumeric(fields []string) bool {
	for _, field := range fields {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}
	return true
}

// ReadColumn loads a table and extracts one column as a slice, a convenience
// for model-output files.
func ReadColumn(filename string, col int) ([]float64, error) {
	m, err := ReadMatrix(filename)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("%s: no column %d in a table with %d columns", filename, col, cols)
	}
	column := make([]float64, rows)
	for i := range column {
		column[i] = m.At(i, col)
	}
	return column, nil
}
