package day17

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []string{".#.", "..#", "###"}

func TestOffsets(t *testing.T) {
	assert.Len(t, offsets(2), 8)
	assert.Len(t, offsets(3), 26)
	assert.Len(t, offsets(4), 80)
	assert.NotContains(t, offsets(4), Cube{})
}

func TestStep(t *testing.T) {
	grid, err := Parse(example)
	require.NoError(t, err)
	assert.Len(t, grid, 5)
	assert.Len(t, grid.Step(3), 11)
	assert.Len(t, grid.Step(4), 29)
}

func TestParseError(t *testing.T) {
	_, err := Parse([]string{".#", "#?"})
	assert.EqualError(t, err, `line 2: invalid cube '?' at column 2`)
}

func TestSolve(t *testing.T) {
	solution, err := Solve(strings.NewReader(strings.Join(example, "\n")))
	require.NoError(t, err)
	assert.Equal(t, int64(112), solution.Part1)
	assert.Equal(t, int64(848), solution.Part2)
}
