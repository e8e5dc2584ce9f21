package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	values, err := ParseInts("3, 4,5")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, values)

	_, err = ParseInts("3,x")
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	values, err := ParseFloats("-1.5, 0,2.25")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 0, 2.25}, values)

	_, err = ParseFloats("")
	assert.Error(t, err)
}
