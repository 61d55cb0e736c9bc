// Package day01 solves "Report Repair": find expense entries that sum to 2020.
package day01

import (
	"fmt"
	"io"
	"sort"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Target sum of the entries.
const Target = 2020

func init() { aoc.Register(1, Solve) }

// Solve reads one entry per line.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	entries, err := input.Ints(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	part1, err := Part1(entries, Target)
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 1: %w", err)
	}
	part2, err := Part2(entries, Target)
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
	}
	return aoc.Solution{Part1: int64(part1), Part2: int64(part2)}, nil
}

// Part1 returns the product of the two entries that sum to target.
func Part1(entries []int, target int) (int, error) {
	sorted := sortedCopy(entries)
	if a, b, ok := pairSum(sorted, target); ok {
		return a * b, nil
	}
	return 0, aoc.ErrNoSolution
}

// Part2 returns the product of the three entries that sum to target.
func Part2(entries []int, target int) (int, error) {
	sorted := sortedCopy(entries)
	for i, first := range sorted {
		if a, b, ok := pairSum(sorted[i+1:], target-first); ok {
			return first * a * b, nil
		}
	}
	return 0, aoc.ErrNoSolution
}

// Two-pointer search over sorted values.
func pairSum(sorted []int, target int) (int, int, bool) {
	left, right := 0, len(sorted)-1
	for left < right {
		switch sum := sorted[left] + sorted[right]; {
		case sum == target:
			return sorted[left], sorted[right], true
		case sum > target:
			right--
		default:
			left++
		}
	}
	return 0, 0, false
}

func sortedCopy(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)
	return out
}
