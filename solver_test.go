package aoc

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyRegistry swaps in an empty registry for the duration of the test.
func emptyRegistry(t *testing.T) {
	registryLock.Lock()
	saved := registry
	registry = map[int]Solver{}
	registryLock.Unlock()
	t.Cleanup(func() {
		registryLock.Lock()
		registry = saved
		registryLock.Unlock()
	})
}

func TestRegister(t *testing.T) {
	emptyRegistry(t)
	Register(24, func(r io.Reader) (Solution, error) {
		return Solution{Part1: 1, Part2: 2}, nil
	})
	Register(23, func(r io.Reader) (Solution, error) {
		return Solution{}, ErrNoSolution
	})

	solver, ok := Lookup(24)
	require.True(t, ok)
	solution, err := solver(nil)
	require.NoError(t, err)
	assert.Equal(t, Solution{Day: 24, Part1: 1, Part2: 2}, solution)
	assert.Equal(t, "day 24: part 1 = 1, part 2 = 2", solution.String())

	solver, ok = Lookup(23)
	require.True(t, ok)
	_, err = solver(nil)
	assert.ErrorIs(t, err, ErrNoSolution)

	_, ok = Lookup(22)
	assert.False(t, ok)

	assert.Equal(t, []int{23, 24}, Days())
}

func TestRegisterPanics(t *testing.T) {
	emptyRegistry(t)
	noop := func(r io.Reader) (Solution, error) { return Solution{}, nil }
	assert.Panics(t, func() { Register(0, noop) })
	assert.Panics(t, func() { Register(26, noop) })
	Register(25, noop)
	assert.PanicsWithValue(t, "aoc: day 25 registered twice", func() { Register(25, noop) })
}
