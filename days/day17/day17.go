// Package day17 solves "Conway Cubes": a game of life in three and four dimensions.
package day17

import (
	"fmt"
	"io"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Cycles of the boot process.
const Cycles = 6

// Cube coordinates. Unused dimensions are zero.
type Cube [4]int

// Grid of active cubes.
type Grid map[Cube]bool

func init() { aoc.Register(17, Solve) }

// Parse the initial slice, where '#' is active and '.' inactive.
func Parse(lines []string) (Grid, error) {
	grid := Grid{}
	for y, line := range lines {
		for x, c := range line {
			switch c {
			case '#':
				grid[Cube{x, y}] = true
			case '.':
			default:
				return nil, fmt.Errorf("line %d: invalid cube %q at column %d", y+1, c, x+1)
			}
		}
	}
	return grid, nil
}

// offsets returns the neighbouring offsets in the first dims dimensions.
func offsets(dims int) []Cube {
	n := 1
	for i := 0; i < dims; i++ {
		n *= 3
	}
	out := make([]Cube, 0, n-1)
	for i := 0; i < n; i++ {
		var c Cube
		zero := true
		for d, v := 0, i; d < dims; d, v = d+1, v/3 {
			c[d] = v%3 - 1
			zero = zero && c[d] == 0
		}
		if !zero {
			out = append(out, c)
		}
	}
	return out
}

// Step runs one cycle in the given number of dimensions.
func (g Grid) Step(dims int) Grid {
	neighbours := map[Cube]int{}
	for cube := range g {
		for _, off := range offsets(dims) {
			n := cube
			for d := range n {
				n[d] += off[d]
			}
			neighbours[n]++
		}
	}
	next := Grid{}
	for cube, count := range neighbours {
		if count == 3 || (count == 2 && g[cube]) {
			next[cube] = true
		}
	}
	return next
}

// Simulate runs cycles and returns the number of active cubes left.
func (g Grid) Simulate(dims, cycles int) int {
	for i := 0; i < cycles; i++ {
		g = g.Step(dims)
	}
	return len(g)
}

// Solve counts active cubes after booting in three and four dimensions.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	grid, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{
		Part1: int64(grid.Simulate(3, Cycles)),
		Part2: int64(grid.Simulate(4, Cycles)),
	}, nil
}
