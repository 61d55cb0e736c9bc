// Package day09 solves "Encoding Error": find the XMAS number that breaks the sum rule and the weakness it exposes.
package day09

import (
	"fmt"
	"io"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Preamble length used by real inputs.
const Preamble = 25

func init() { aoc.Register(9, Solve) }

// FirstInvalid returns the first number after the preamble that isn't the sum of two
// distinct numbers among the preceding preamble numbers.
func FirstInvalid(numbers []int, preamble int) (int, error) {
	if len(numbers) <= preamble {
		return 0, fmt.Errorf("need more than %d numbers, got %d", preamble, len(numbers))
	}
	for i := preamble; i < len(numbers); i++ {
		if !sumOfTwo(numbers[i-preamble:i], numbers[i]) {
			return numbers[i], nil
		}
	}
	return 0, aoc.ErrNoSolution
}

func sumOfTwo(window []int, target int) bool {
	seen := make(map[int]bool, len(window))
	for _, n := range window {
		if seen[target-n] && target-n != n {
			return true
		}
		seen[n] = true
	}
	return false
}

// Weakness finds a contiguous run of at least two numbers summing to target and returns
// the sum of its smallest and largest numbers.
func Weakness(numbers []int, target int) (int, error) {
	for start := range numbers {
		sum := numbers[start]
		low, high := sum, sum
		for end := start + 1; end < len(numbers) && sum < target; end++ {
			n := numbers[end]
			sum += n
			low, high = min(low, n), max(high, n)
			if sum == target {
				return low + high, nil
			}
		}
	}
	return 0, aoc.ErrNoSolution
}

// Solve finds the invalid number and the encryption weakness.
func Solve(r io.Reader) (aoc.Solution, error) {
	return solve(r, Preamble)
}

func solve(r io.Reader, preamble int) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	numbers, err := input.Ints(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	invalid, err := FirstInvalid(numbers, preamble)
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 1: %w", err)
	}
	weakness, err := Weakness(numbers, invalid)
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
	}
	return aoc.Solution{Part1: int64(invalid), Part2: int64(weakness)}, nil
}
