package readmatrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFromWhitespaceTable(t *testing.T) {
	input := `# generated design
1.0 2.0
3.0	4.0

5.0 6.0
`
	m, err := ReadFrom(strings.NewReader(input))
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, 5.0, m.At(2, 0))
}

func TestReadFromCSVWithHeader(t *testing.T) {
	input := "x0,x1,x2\n0.5,0.25,0.75\n1,0,0.5\n"
	m, err := ReadFrom(strings.NewReader(input))
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	assert.Equal(t, 0.25, m.At(0, 1))
}

func TestReadFromRaggedTable(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("1 2 3\n4 5\n"))
	assert.ErrorContains(t, err, "inconsistent number of columns")
}

func TestReadFromBadValue(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("1 2\n3 oops\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestReadFromEmpty(t *testing.T) {
	m, err := ReadFrom(strings.NewReader("# only comments\n\n"))
	require.NoError(t, err)
	rows, cols := m.Dims()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
}
