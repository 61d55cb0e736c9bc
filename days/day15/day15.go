// Package day15 solves "Rambunctious Recitation": the elves' memory game.
package day15

import (
	"fmt"
	"io"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Turns after which each part reads the spoken number.
const (
	Turns1 = 2020
	Turns2 = 30000000
)

func init() { aoc.Register(15, Solve) }

// Play the game from the starting numbers and return the number spoken on the given turn.
func Play(start []int, turns int) (int, error) {
	if len(start) == 0 {
		return 0, fmt.Errorf("no starting numbers")
	}
	if turns < 1 {
		return 0, fmt.Errorf("invalid turn %d", turns)
	}
	if turns <= len(start) {
		return start[turns-1], nil
	}
	size := turns
	for _, n := range start {
		if n < 0 {
			return 0, fmt.Errorf("invalid starting number %d", n)
		}
		if n >= size {
			size = n + 1
		}
	}
	// Turn on which each number was last spoken, 0 if never.
	seen := make([]uint32, size)
	for i, n := range start[:len(start)-1] {
		seen[n] = uint32(i + 1)
	}
	current := start[len(start)-1]
	for turn := len(start); turn < turns; turn++ {
		prev := seen[current]
		seen[current] = uint32(turn)
		if prev == 0 {
			current = 0
		} else {
			current = turn - int(prev)
		}
	}
	return current, nil
}

// Solve reads the comma separated starting numbers.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	start, err := input.IntList(lines[0], ",")
	if err != nil {
		return aoc.Solution{}, err
	}
	part1, err := Play(start, Turns1)
	if err != nil {
		return aoc.Solution{}, err
	}
	part2, err := Play(start, Turns2)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(part1), Part2: int64(part2)}, nil
}
