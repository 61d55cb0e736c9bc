// Package day03 solves "Toboggan Trajectory": count trees along a slope through a repeating map.
package day03

import (
	"fmt"
	"io"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Tree marks a tree on the map.
const Tree = '#'

// Slope of a descent, in columns right and rows down per step.
type Slope = input.Point[int]

// Slopes checked by part 2.
var Slopes = []Slope{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}}

func init() { aoc.Register(3, Solve) }

// Map of open squares and trees that repeats infinitely to the right.
type Map []string

// Parse a map, rejecting ragged rows.
func Parse(lines []string) (Map, error) {
	for i, line := range lines {
		if len(line) != len(lines[0]) || len(line) == 0 {
			return nil, fmt.Errorf("line %d: expected %d columns but got %d", i+1, len(lines[0]), len(line))
		}
	}
	return Map(lines), nil
}

// Trees encountered descending from the top left corner.
func (m Map) Trees(slope Slope) int {
	count := 0
	width := len(m[0])
	for p := slope; p.Y < len(m); p = p.Add(slope) {
		if m[p.Y][p.X%width] == Tree {
			count++
		}
	}
	return count
}

// Solve counts trees on the 3/1 slope and multiplies the counts of all Slopes.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	m, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	product := int64(1)
	for _, slope := range Slopes {
		product *= int64(m.Trees(slope))
	}
	return aoc.Solution{Part1: int64(m.Trees(Slope{X: 3, Y: 1})), Part2: product}, nil
}
